//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"

	"github.com/LdDl/micro-traffic-sim-grpc/domain"
	"github.com/google/uuid"
)

// Session is the engine-owned simulation state of one client session.
// All methods are synchronous and CPU-bound; callers provide mutual
// exclusion (see ISessionStorage.WithSession).
type Session interface {
	ID() uuid.UUID
	WorldSRID() domain.SRID
	AddCells(cells []domain.Cell)
	AddTrip(t domain.Trip)
	AddTrafficLight(tl domain.TrafficLight)
	AddConflictZone(z domain.ConflictZone)
	// Step advances the simulation by one tick and returns its dump.
	Step() (domain.StepDump, error)
}

// IEngine builds fresh simulation sessions.
type IEngine interface {
	NewSession(srid domain.SRID) Session
}

// ISessionStorage owns the session registry. WithSession is the only
// sanctioned way to read or mutate a session: it refreshes the sliding
// TTL and runs fn under the registry-wide lock.
type ISessionStorage interface {
	Register(id uuid.UUID, sess Session, ttl time.Duration) (replaced bool)
	WithSession(id uuid.UUID, fn func(sess Session)) error
	PurgeExpired() int
	Len() int
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
