// Package session keeps in-progress booking forms in memory between requests.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"

	"doctor-booking-server/internal/booking"
	"doctor-booking-server/internal/models"
)

var ErrNotFound = errors.New("booking session not found")

// Session is one visitor's booking in progress.
type Session struct {
	ID        uuid.UUID
	Location  models.LocationDescriptor
	Form      *booking.Form
	CreatedAt time.Time

	mu sync.Mutex
}

// Store is a bounded LRU of sessions. When full, the least recently used
// session is dropped.
type Store struct {
	cache  *lru.Cache[uuid.UUID, *Session]
	logger zerolog.Logger
}

// NewStore creates a store holding at most size sessions.
func NewStore(size int, logger zerolog.Logger) (*Store, error) {
	logger = logger.With().Str("module", "session").Logger()

	cache, err := lru.NewWithEvict(size, func(id uuid.UUID, s *Session) {
		logger.Debug().Str("session_id", id.String()).Msg("session evicted")
	})
	if err != nil {
		return nil, fmt.Errorf("create session cache: %w", err)
	}
	return &Store{cache: cache, logger: logger}, nil
}

// Open starts a session for booking doctor at loc.
func (s *Store) Open(loc models.LocationDescriptor, doctor models.Doctor, opts ...booking.Option) *Session {
	sess := &Session{
		ID:        uuid.New(),
		Location:  loc,
		Form:      booking.NewForm(doctor, opts...),
		CreatedAt: time.Now(),
	}
	s.cache.Add(sess.ID, sess)
	s.logger.Debug().
		Str("session_id", sess.ID.String()).
		Str("doctor_id", doctor.ID).
		Msg("session opened")
	return sess
}

// Get returns the session with the given id.
func (s *Store) Get(id uuid.UUID) (*Session, error) {
	sess, ok := s.cache.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return sess, nil
}

// Close forgets a session.
func (s *Store) Close(id uuid.UUID) {
	s.cache.Remove(id)
}

// Len reports how many sessions are held.
func (s *Store) Len() int {
	return s.cache.Len()
}

// Do runs fn with exclusive access to the session's form.
func (sess *Session) Do(fn func(f *booking.Form) error) error {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess.Form)
}
