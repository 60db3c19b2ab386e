package simulation

import (
	"log/slog"
	"math/rand"

	"github.com/LdDl/micro-traffic-sim-grpc/domain"
	"github.com/google/uuid"
)

// lightState tracks the current phase of one traffic light.
type lightState struct {
	light   domain.TrafficLight
	phase   int
	elapsed int
}

// currentSignals returns the signal of every group for the active phase.
// Groups with fewer signals than phases stay red for the missing phases.
func (ls *lightState) currentSignals() []domain.TLGroupState {
	out := make([]domain.TLGroupState, 0, len(ls.light.Groups))
	for _, g := range ls.light.Groups {
		sig := domain.SignalRed
		if ls.phase < len(g.Signals) {
			sig = g.Signals[ls.phase]
		}
		out = append(out, domain.TLGroupState{GroupID: g.ID, Signal: sig})
	}
	return out
}

func (ls *lightState) advance() {
	if len(ls.light.PhaseTimes) == 0 {
		return
	}
	ls.elapsed++
	if ls.elapsed >= ls.light.PhaseTimes[ls.phase] {
		ls.elapsed = 0
		ls.phase = (ls.phase + 1) % len(ls.light.PhaseTimes)
	}
}

type vehicle struct {
	id         int64
	tripID     int64
	agentType  domain.AgentType
	behaviour  domain.BehaviourType
	speed      int
	cell       int64
	transits   []int64
	relaxTime  int
	relaxLeft  int
	target     int64
	travelTime float64
	bearing    float64
	// lastCrossed are the cells the vehicle passed through on the most
	// recent tick, excluding the one it ended up in.
	lastCrossed []int64
	tail        []int64
}

// Session is one isolated simulation instance: its own grid, generators,
// lights, conflict rules, vehicle roster and tick clock.
type Session struct {
	id      uuid.UUID
	srid    domain.SRID
	log     *slog.Logger
	verbose domain.VerboseLevel

	cells    map[int64]domain.Cell
	trips    []domain.Trip
	lights   []*lightState
	zones    []domain.ConflictZone
	vehicles map[int64]*vehicle
	occupied map[int64]int64

	tick      int64
	nextVehID int64
	rng       *rand.Rand
}

func newSession(srid domain.SRID, log *slog.Logger, verbose domain.VerboseLevel) *Session {
	id := uuid.New()
	return &Session{
		id:       id,
		srid:     srid,
		log:      log,
		verbose:  verbose,
		cells:    make(map[int64]domain.Cell),
		vehicles: make(map[int64]*vehicle),
		occupied: make(map[int64]int64),
		rng:      rand.New(rand.NewSource(int64(id.ID()))),
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) WorldSRID() domain.SRID {
	return s.srid
}

// AddCells inserts or replaces grid cells.
func (s *Session) AddCells(cells []domain.Cell) {
	for _, c := range cells {
		s.cells[c.ID] = c
	}
	if s.verbose >= domain.VerboseDebug {
		s.log.Debug("Cells added to session", "session_id", s.id, "count", len(cells), "total", len(s.cells))
	}
}

func (s *Session) AddTrip(t domain.Trip) {
	s.trips = append(s.trips, t)
	if s.verbose >= domain.VerboseDebug {
		s.log.Debug("Trip added to session", "session_id", s.id, "trip_id", t.ID)
	}
}

func (s *Session) AddTrafficLight(tl domain.TrafficLight) {
	s.lights = append(s.lights, &lightState{light: tl})
	if s.verbose >= domain.VerboseDebug {
		s.log.Debug("Traffic light added to session", "session_id", s.id, "tl_id", tl.ID)
	}
}

func (s *Session) AddConflictZone(z domain.ConflictZone) {
	s.zones = append(s.zones, z)
	if s.verbose >= domain.VerboseDebug {
		s.log.Debug("Conflict zone added to session", "session_id", s.id, "zone_id", z.ID)
	}
}

// TrafficLightCount reports how many lights the session carries.
func (s *Session) TrafficLightCount() int {
	return len(s.lights)
}

// VehicleCount reports the current roster size.
func (s *Session) VehicleCount() int {
	return len(s.vehicles)
}
