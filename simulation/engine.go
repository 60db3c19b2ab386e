// Package simulation implements the cellular-automaton engine behind the
// gateway: session state, vehicle generation and movement, traffic-light
// phase advancement and conflict-zone arbitration. The gateway itself only
// talks to contract.Session / contract.IEngine.
package simulation

import (
	"log/slog"

	"github.com/LdDl/micro-traffic-sim-grpc/contract"
	"github.com/LdDl/micro-traffic-sim-grpc/domain"
)

type Engine struct {
	log     *slog.Logger
	verbose domain.VerboseLevel
}

func NewEngine(log *slog.Logger, verbose domain.VerboseLevel) *Engine {
	return &Engine{log: log, verbose: verbose}
}

// NewSession builds a fresh session with its own random identifier and
// tick clock. Unknown SRIDs fall back to Euclidean.
func (e *Engine) NewSession(srid domain.SRID) contract.Session {
	if srid != domain.SRIDWGS84 && srid != domain.SRIDEuclidean {
		srid = domain.SRIDEuclidean
	}
	return newSession(srid, e.log, e.verbose)
}
