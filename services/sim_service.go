//go:generate go run go.uber.org/mock/mockgen -source=sim_service.go -destination=../mocks/mock_sim_service.go -package=mocks
package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/LdDl/micro-traffic-sim-grpc/contract"
	"github.com/LdDl/micro-traffic-sim-grpc/domain"
	errs "github.com/LdDl/micro-traffic-sim-grpc/errors"
	"github.com/LdDl/micro-traffic-sim-grpc/observability"
	"github.com/google/uuid"
)

// MaxBatchSize bounds a single push message for grid, trip and conflict
// zone endpoints. Traffic lights are not bounded (batches are tiny by
// nature) and accept an empty list as a degenerate push.
const MaxBatchSize = 10000

type ISimService interface {
	Create(srid int32) (uuid.UUID, error)
	Info(id uuid.UUID) error
	PushCells(id uuid.UUID, cells []domain.Cell) error
	PushTrips(id uuid.UUID, trips []domain.Trip) error
	PushTrafficLights(id uuid.UUID, lights []domain.TrafficLight) error
	PushConflictZones(id uuid.UUID, zones []domain.ConflictZone) error
	Step(id uuid.UUID) (domain.StepDump, error)
}

// SimService implements the validate -> locate -> mutate protocol shared
// by every endpoint. All session access funnels through the storage's
// WithSession, so each method is atomic with respect to other mutators.
type SimService struct {
	log        *slog.Logger
	engine     contract.IEngine
	storage    contract.ISessionStorage
	ttl        time.Duration
	monitoring *observability.MonitoringManager
}

func NewSimService(log *slog.Logger, engine contract.IEngine, storage contract.ISessionStorage,
	ttl time.Duration, monitoring *observability.MonitoringManager) *SimService {
	return &SimService{
		log:        log,
		engine:     engine,
		storage:    storage,
		ttl:        ttl,
		monitoring: monitoring,
	}
}

// ParseSessionID validates the textual session identifier: it must be a
// well-formed version 4 UUID.
func ParseSessionID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil || id.Version() != 4 {
		return uuid.Nil, fmt.Errorf("%w: '%s'", errs.ErrInvalidSessionID, raw)
	}
	return id, nil
}

// Create builds a fresh session via the engine and registers it with the
// configured TTL. SRID 4326 selects geographic coordinates, 0 Euclidean;
// anything else falls back to the engine default.
func (s *SimService) Create(srid int32) (uuid.UUID, error) {
	var worldSRID domain.SRID
	switch srid {
	case 4326:
		worldSRID = domain.SRIDWGS84
	case 0:
		worldSRID = domain.SRIDEuclidean
	default:
		s.log.Warn("Unknown SRID requested, falling back to engine default", "srid", srid)
		worldSRID = domain.SRID(srid)
	}

	sess := s.engine.NewSession(worldSRID)
	s.storage.Register(sess.ID(), sess, s.ttl)
	s.monitoring.IncrSessionsCreated()
	return sess.ID(), nil
}

// Info resolves the session without touching it. The successful lookup
// itself counts as an access and refreshes the TTL.
func (s *SimService) Info(id uuid.UUID) error {
	return s.wrapNotFound(id, s.storage.WithSession(id, func(contract.Session) {}))
}

func (s *SimService) PushCells(id uuid.UUID, cells []domain.Cell) error {
	if err := checkBatch(len(cells)); err != nil {
		return err
	}
	err := s.storage.WithSession(id, func(sess contract.Session) {
		srid := sess.WorldSRID()
		for i := range cells {
			cells[i].Point.SRID = srid
		}
		sess.AddCells(cells)
	})
	if err == nil {
		s.monitoring.AddCellsPushed(uint64(len(cells)))
	}
	return s.wrapNotFound(id, err)
}

func (s *SimService) PushTrips(id uuid.UUID, trips []domain.Trip) error {
	if err := checkBatch(len(trips)); err != nil {
		return err
	}
	err := s.storage.WithSession(id, func(sess contract.Session) {
		for _, t := range trips {
			sess.AddTrip(t)
		}
	})
	if err == nil {
		s.monitoring.AddTripsPushed(uint64(len(trips)))
	}
	return s.wrapNotFound(id, err)
}

// PushTrafficLights applies an already fully validated batch. Signal
// token parsing happened at conversion time: a message reaching this
// method is all-or-nothing valid, so the atomicity guarantee of the
// traffic light endpoint holds by construction.
func (s *SimService) PushTrafficLights(id uuid.UUID, lights []domain.TrafficLight) error {
	err := s.storage.WithSession(id, func(sess contract.Session) {
		srid := sess.WorldSRID()
		for _, tl := range lights {
			stampTrafficLight(&tl, srid)
			sess.AddTrafficLight(tl)
		}
	})
	if err == nil {
		s.monitoring.AddTrafficLightsPushed(uint64(len(lights)))
	}
	return s.wrapNotFound(id, err)
}

func (s *SimService) PushConflictZones(id uuid.UUID, zones []domain.ConflictZone) error {
	if err := checkBatch(len(zones)); err != nil {
		return err
	}
	err := s.storage.WithSession(id, func(sess contract.Session) {
		for _, z := range zones {
			sess.AddConflictZone(z)
		}
	})
	if err == nil {
		s.monitoring.AddConflictZonesPushed(uint64(len(zones)))
	}
	return s.wrapNotFound(id, err)
}

// Step advances the session by one tick. An engine failure surfaces as
// ErrSimulationFailed (gRPC Aborted); the session itself stays registered
// and can be stepped again later.
func (s *SimService) Step(id uuid.UUID) (domain.StepDump, error) {
	var dump domain.StepDump
	var stepErr error
	err := s.storage.WithSession(id, func(sess contract.Session) {
		dump, stepErr = sess.Step()
	})
	if err != nil {
		return domain.StepDump{}, s.wrapNotFound(id, err)
	}
	if stepErr != nil {
		return domain.StepDump{}, fmt.Errorf("%w: %v", errs.ErrSimulationFailed, stepErr)
	}
	s.monitoring.IncrStepsExecuted()
	return dump, nil
}

func checkBatch(n int) error {
	if n > MaxBatchSize {
		return fmt.Errorf("%w: limit is %d, but provided is %d", errs.ErrTooManyEntities, MaxBatchSize, n)
	}
	if n == 0 {
		return errs.ErrNoData
	}
	return nil
}

// wrapNotFound attaches the offending identifier to absence errors while
// leaving the storage-unavailable condition untouched.
func (s *SimService) wrapNotFound(id uuid.UUID, err error) error {
	if errors.Is(err, errs.ErrSessionNotFound) {
		return fmt.Errorf("%w: '%s'", errs.ErrSessionNotFound, id)
	}
	return err
}

func stampTrafficLight(tl *domain.TrafficLight, srid domain.SRID) {
	if tl.Point != nil {
		tl.Point.SRID = srid
	}
	for gi := range tl.Groups {
		for pi := range tl.Groups[gi].Geometry {
			tl.Groups[gi].Geometry[pi].SRID = srid
		}
	}
}
