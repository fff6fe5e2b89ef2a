package repos

import (
	"context"
	"fmt"
	"time"

	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/ports"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

var _ ports.SessionRepository = (*SessionRepository)(nil)

// SessionRepository holds live table sessions in a bounded, expiring LRU.
// Evicted, expired and deleted sessions have their controller closed.
type SessionRepository struct {
	sessions *expirable.LRU[string, *ports.Session]
	logger   logger.Logger
}

func NewSessionRepository(size int, ttl time.Duration, log logger.Logger) *SessionRepository {
	r := &SessionRepository{logger: log}
	r.sessions = expirable.NewLRU[string, *ports.Session](size, r.onEvict, ttl)

	return r
}

func (r *SessionRepository) Save(_ context.Context, s *ports.Session) error {
	if s == nil || s.ID == "" || s.Controller == nil {
		return fmt.Errorf("invalid session")
	}

	if prev, ok := r.sessions.Peek(s.ID); ok && prev != s {
		r.sessions.Remove(s.ID)
	}

	r.sessions.Add(s.ID, s)

	return nil
}

// Get refreshes the session's recency but not its expiry.
func (r *SessionRepository) Get(_ context.Context, id string) (*ports.Session, error) {
	s, ok := r.sessions.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrSessionNotFound, id)
	}

	return s, nil
}

func (r *SessionRepository) Delete(_ context.Context, id string) error {
	r.sessions.Remove(id)

	return nil
}

func (r *SessionRepository) Len() int {
	return r.sessions.Len()
}

// Close closes every remaining session.
func (r *SessionRepository) Close() {
	r.sessions.Purge()
}

func (r *SessionRepository) onEvict(id string, s *ports.Session) {
	r.logger.Debug().Str("session_id", id).Str("table", s.Table).Msg("closing table session")

	s.Controller.Close()
}
