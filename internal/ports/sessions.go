//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

//counterfeiter:generate -o ../mocks/session_repository.go . SessionRepository

import (
	"context"

	"github.com/architeacher/datatable/internal/domain/model"
	"github.com/architeacher/datatable/internal/domain/table"
)

type (
	// Session is a live table controller addressed by id.
	Session struct {
		ID         string
		Table      string
		Controller *table.Controller[model.Post]
	}

	SessionRepository interface {
		// Save stores s, replacing any session with the same id.
		Save(ctx context.Context, s *Session) error
		// Get returns model.ErrSessionNotFound for unknown or expired ids.
		Get(ctx context.Context, id string) (*Session, error)
		// Delete closes the session's controller. Deleting an unknown id is not an error.
		Delete(ctx context.Context, id string) error
		Len() int
	}
)
