package storage

import (
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/LdDl/micro-traffic-sim-grpc/contract"
	"github.com/LdDl/micro-traffic-sim-grpc/domain"
	"github.com/LdDl/micro-traffic-sim-grpc/errors"
	"github.com/LdDl/micro-traffic-sim-grpc/mocks"
)

func newTestStorage() *SessionsStorage {
	return NewSessionsStorage(slog.Default(), domain.VerboseSilent)
}

func TestSessionsStorage_RegisterAndLookup(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newTestStorage()
	id := uuid.New()
	sess := mocks.NewMockSession(ctrl)

	// Given an empty registry
	req.Equal(0, s.Len())

	// When a session is registered
	replaced := s.Register(id, sess, time.Minute)

	// Then it is resolvable and was not a collision
	req.False(replaced)
	req.Equal(1, s.Len())

	var got contract.Session
	err := s.WithSession(id, func(sess contract.Session) { got = sess })
	req.NoError(err)
	req.Same(sess, got)
}

func TestSessionsStorage_RegisterCollision(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newTestStorage()
	id := uuid.New()
	first := mocks.NewMockSession(ctrl)
	second := mocks.NewMockSession(ctrl)

	req.False(s.Register(id, first, time.Minute))

	// Re-registering the same identifier replaces the old session
	req.True(s.Register(id, second, time.Minute))
	req.Equal(1, s.Len())

	var got contract.Session
	req.NoError(s.WithSession(id, func(sess contract.Session) { got = sess }))
	req.Same(second, got)
}

func TestSessionsStorage_UnknownSession(t *testing.T) {
	req := require.New(t)
	s := newTestStorage()

	err := s.WithSession(uuid.New(), func(contract.Session) {
		req.Fail("fn must not run for an absent session")
	})
	req.ErrorIs(err, errors.ErrSessionNotFound)
}

func TestSessionsStorage_SlidingTTL(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newTestStorage()

	// Given a fake clock under our control
	now := time.Now()
	s.now = func() time.Time { return now }

	id := uuid.New()
	s.Register(id, mocks.NewMockSession(ctrl), time.Minute)

	// When the session is touched 50s in, the countdown restarts
	now = now.Add(50 * time.Second)
	req.NoError(s.WithSession(id, func(contract.Session) {}))

	// Then 50s later (100s after registration) it is still alive
	now = now.Add(50 * time.Second)
	req.Equal(0, s.PurgeExpired())
	req.Equal(1, s.Len())

	// And once a full TTL passes without any access, it is gone
	now = now.Add(61 * time.Second)
	req.Equal(1, s.PurgeExpired())
	req.Equal(0, s.Len())
	req.ErrorIs(s.WithSession(id, func(contract.Session) {}), errors.ErrSessionNotFound)
}

func TestSessionsStorage_PurgeKeepsFreshSessions(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newTestStorage()
	now := time.Now()
	s.now = func() time.Time { return now }

	stale := uuid.New()
	fresh := uuid.New()
	s.Register(stale, mocks.NewMockSession(ctrl), time.Minute)
	now = now.Add(30 * time.Second)
	s.Register(fresh, mocks.NewMockSession(ctrl), time.Minute)

	now = now.Add(45 * time.Second)

	// Only the stale session crossed its TTL
	req.Equal(1, s.PurgeExpired())
	req.ErrorIs(s.WithSession(stale, func(contract.Session) {}), errors.ErrSessionNotFound)
	req.NoError(s.WithSession(fresh, func(contract.Session) {}))
}

func TestSessionsStorage_ConcurrentAccess(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newTestStorage()

	// Given two live sessions and a counter per session. The counters
	// are deliberately unsynchronized: WithSession's registry lock is
	// the only thing keeping the increments from racing.
	first := uuid.New()
	second := uuid.New()
	s.Register(first, mocks.NewMockSession(ctrl), time.Hour)
	s.Register(second, mocks.NewMockSession(ctrl), time.Hour)

	const iterations = 500
	ids := []uuid.UUID{first, second}
	counters := map[uuid.UUID]*int{first: new(int), second: new(int)}
	accessErrs := make([]error, len(ids))

	var wg sync.WaitGroup
	for n, id := range ids {
		wg.Add(1)
		go func(n int, id uuid.UUID) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				err := s.WithSession(id, func(contract.Session) {
					*counters[id]++
				})
				if err != nil {
					accessErrs[n] = err
					return
				}
			}
		}(n, id)
	}

	// And a sweeper hammering the registry while the mutators run
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			s.PurgeExpired()
			s.Len()
		}
	}()
	wg.Wait()

	// Then no update was lost and both sessions are still registered
	for _, err := range accessErrs {
		req.NoError(err)
	}
	req.Equal(iterations, *counters[first])
	req.Equal(iterations, *counters[second])
	req.Equal(2, s.Len())
	req.NoError(s.WithSession(first, func(contract.Session) {}))
	req.NoError(s.WithSession(second, func(contract.Session) {}))
}

func TestSessionsStorage_PanicRecovery(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := newTestStorage()
	id := uuid.New()
	s.Register(id, mocks.NewMockSession(ctrl), time.Minute)

	// When a mutation panics
	err := s.WithSession(id, func(contract.Session) {
		panic("engine blew up")
	})

	// Then the failure is reported as a storage problem, not absence
	req.ErrorIs(err, errors.ErrStorageUnavailable)
	req.NotErrorIs(err, errors.ErrSessionNotFound)
	req.Contains(err.Error(), "engine blew up")

	// And the registry keeps working afterwards
	req.NoError(s.WithSession(id, func(contract.Session) {}))
}
