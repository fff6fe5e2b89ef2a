package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/architeacher/datatable/internal/config"
	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/domain/table"
	"github.com/architeacher/datatable/internal/ports"
	"github.com/architeacher/datatable/pkg/logger"
	"github.com/google/uuid"
)

var _ ports.SessionService = (*SessionsService)(nil)

// SessionsService keeps one table controller per session and translates
// session commands into controller transitions.
type SessionsService struct {
	registry *TableRegistry
	sessions ports.SessionRepository
	cfg      config.Table
	logger   logger.Logger
}

func NewSessionsService(registry *TableRegistry, sessions ports.SessionRepository, cfg config.Table, log logger.Logger) *SessionsService {
	return &SessionsService{
		registry: registry,
		sessions: sessions,
		cfg:      cfg,
		logger:   log.Component("sessions_service"),
	}
}

func (s *SessionsService) CreateSession(ctx context.Context, tableName string, pageSize int, wait bool) (*ports.SessionView, error) {
	t, err := s.registry.Lookup(tableName)
	if err != nil {
		return nil, err
	}

	if pageSize == 0 {
		pageSize = s.cfg.DefaultPageSize
	}

	opts := []table.Option{
		table.WithInitialPageSize(pageSize),
		table.WithFetchTimeout(s.cfg.FetchTimeout),
	}

	if len(s.cfg.PageSizes) > 0 {
		opts = append(opts, table.WithPageSizes(s.cfg.PageSizes...))

		if !slices.Contains(s.cfg.PageSizes, pageSize) {
			return nil, fmt.Errorf("%w: %d not in %v", model.ErrInvalidPageSize, pageSize, s.cfg.PageSizes)
		}
	}

	session := &ports.Session{
		ID:         uuid.NewString(),
		Table:      tableName,
		Controller: table.NewController[model.Post](t.Schema, t.Source, s.logger, opts...),
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		session.Controller.Close()

		return nil, fmt.Errorf("saving session: %w", err)
	}

	ctxLogger := s.logger.WithContext(logger.WithSessionID(ctx, session.ID))
	ctxLogger.Info().Str("table", tableName).Msg("table session created")

	return s.settle(ctx, session, session.Controller.Start(ctx), wait)
}

func (s *SessionsService) GetSession(ctx context.Context, ref ports.SessionRef, wait bool) (*ports.SessionView, error) {
	session, err := s.lookup(ctx, ref)
	if err != nil {
		return nil, err
	}

	return s.settle(ctx, session, session.Controller.Current(), wait)
}

func (s *SessionsService) Sort(ctx context.Context, ref ports.SessionRef, field string, wait bool) (*ports.SessionView, error) {
	return s.transition(ctx, ref, wait, func(c *table.Controller[model.Post]) (table.Ticket, error) {
		return c.Sort(ctx, field)
	})
}

// EditFilter never fetches, so there is nothing to wait for.
func (s *SessionsService) EditFilter(ctx context.Context, ref ports.SessionRef, field string, clause model.FilterClause) (*ports.SessionView, error) {
	return s.transition(ctx, ref, false, func(c *table.Controller[model.Post]) (table.Ticket, error) {
		return c.Current(), c.EditFilter(field, clause)
	})
}

func (s *SessionsService) ApplyFilter(ctx context.Context, ref ports.SessionRef, field string, wait bool) (*ports.SessionView, error) {
	return s.transition(ctx, ref, wait, func(c *table.Controller[model.Post]) (table.Ticket, error) {
		return c.ApplyFilter(ctx, field)
	})
}

func (s *SessionsService) ClearFilter(ctx context.Context, ref ports.SessionRef, field string, wait bool) (*ports.SessionView, error) {
	return s.transition(ctx, ref, wait, func(c *table.Controller[model.Post]) (table.Ticket, error) {
		return c.ClearFilter(ctx, field)
	})
}

func (s *SessionsService) ChangePage(ctx context.Context, ref ports.SessionRef, page int, wait bool) (*ports.SessionView, error) {
	return s.transition(ctx, ref, wait, func(c *table.Controller[model.Post]) (table.Ticket, error) {
		return c.ChangePage(ctx, page), nil
	})
}

func (s *SessionsService) ChangePageSize(ctx context.Context, ref ports.SessionRef, size int, wait bool) (*ports.SessionView, error) {
	return s.transition(ctx, ref, wait, func(c *table.Controller[model.Post]) (table.Ticket, error) {
		return c.ChangePageSize(ctx, size)
	})
}

// Refresh refetches the current state; it is how a client retries after a failure.
func (s *SessionsService) Refresh(ctx context.Context, ref ports.SessionRef, wait bool) (*ports.SessionView, error) {
	return s.transition(ctx, ref, wait, func(c *table.Controller[model.Post]) (table.Ticket, error) {
		return c.Refresh(ctx), nil
	})
}

func (s *SessionsService) DeleteSession(ctx context.Context, ref ports.SessionRef) error {
	if _, err := s.lookup(ctx, ref); err != nil {
		return err
	}

	return s.sessions.Delete(ctx, ref.ID)
}

func (s *SessionsService) transition(
	ctx context.Context,
	ref ports.SessionRef,
	wait bool,
	apply func(*table.Controller[model.Post]) (table.Ticket, error),
) (*ports.SessionView, error) {
	session, err := s.lookup(ctx, ref)
	if err != nil {
		return nil, err
	}

	ticket, err := apply(session.Controller)
	if err != nil {
		return nil, err
	}

	return s.settle(ctx, session, ticket, wait)
}

// lookup hides sessions of other tables behind ErrSessionNotFound.
func (s *SessionsService) lookup(ctx context.Context, ref ports.SessionRef) (*ports.Session, error) {
	if _, err := s.registry.Lookup(ref.Table); err != nil {
		return nil, err
	}

	session, err := s.sessions.Get(ctx, ref.ID)
	if err != nil {
		return nil, err
	}

	if session.Table != ref.Table {
		return nil, fmt.Errorf("%w: %s", model.ErrSessionNotFound, ref.ID)
	}

	return session, nil
}

func (s *SessionsService) settle(ctx context.Context, session *ports.Session, ticket table.Ticket, wait bool) (*ports.SessionView, error) {
	view := session.Controller.View()

	if wait {
		var err error

		view, err = session.Controller.Wait(ctx, ticket)
		if err != nil {
			return nil, err
		}
	}

	return &ports.SessionView{
		ID:    session.ID,
		Table: session.Table,
		View:  view,
	}, nil
}
