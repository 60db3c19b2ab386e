// Package storage owns the in-memory session registry: identifier to
// session mapping, sliding TTL bookkeeping and the locked-access
// primitive every handler goes through.
package storage

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/LdDl/micro-traffic-sim-grpc/contract"
	"github.com/LdDl/micro-traffic-sim-grpc/domain"
	"github.com/LdDl/micro-traffic-sim-grpc/errors"
	"github.com/google/uuid"
)

type entry struct {
	session    contract.Session
	ttl        time.Duration
	lastAccess time.Time
}

// SessionsStorage is the single shared registry of live sessions. One
// mutex guards the whole map: operations against different sessions
// serialize behind each other. That is the intended baseline: the lock
// is never held across network I/O, only across CPU-bound mutations.
type SessionsStorage struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entry
	log     *slog.Logger
	verbose domain.VerboseLevel
	now     func() time.Time
}

func NewSessionsStorage(log *slog.Logger, verbose domain.VerboseLevel) *SessionsStorage {
	return &SessionsStorage{
		entries: make(map[uuid.UUID]*entry),
		log:     log,
		verbose: verbose,
		now:     time.Now,
	}
}

// Register inserts a session under its identifier. Replacing an existing
// identifier is permitted but unusual; it is reported as a collision.
func (s *SessionsStorage) Register(id uuid.UUID, sess contract.Session, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, replaced := s.entries[id]
	s.entries[id] = &entry{session: sess, ttl: ttl, lastAccess: s.now()}

	if replaced {
		s.log.Warn("Session ID collision, previous session replaced", "session_id", id)
	} else if s.verbose >= domain.VerboseInfo {
		s.log.Info("Session registered", "session_id", id, "ttl", ttl)
	}
	return replaced
}

// WithSession is the sole sanctioned way to read or mutate a session.
// It refreshes the sliding TTL and runs fn under the registry-wide lock,
// so fn must stay CPU-bound and must never block on I/O.
//
// A panic escaping fn is recovered and turned into ErrStorageUnavailable:
// the lock is still released via defer, so the registry stays usable for
// everyone else. Callers must not conflate that condition with
// ErrSessionNotFound when building responses.
func (s *SessionsStorage) WithSession(id uuid.UUID, fn func(sess contract.Session)) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return errors.ErrSessionNotFound
	}
	e.lastAccess = s.now()

	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Panic inside session access", "session_id", id, "panic", r)
			err = fmt.Errorf("%w: %v", errors.ErrStorageUnavailable, r)
		}
	}()
	fn(e.session)
	return nil
}

// PurgeExpired removes every session whose inactivity exceeded its TTL
// and returns how many were removed. Holders of stale results are not
// notified; a later access simply resolves to absent.
func (s *SessionsStorage) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	purged := 0
	for id, e := range s.entries {
		if now.Sub(e.lastAccess) > e.ttl {
			delete(s.entries, id)
			purged++
			if s.verbose >= domain.VerboseInfo {
				s.log.Info("Session expired and purged",
					"session_id", id, "idle", now.Sub(e.lastAccess), "ttl", e.ttl)
			}
		}
	}
	return purged
}

// Len reports how many sessions are currently registered.
func (s *SessionsStorage) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
