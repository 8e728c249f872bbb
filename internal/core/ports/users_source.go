package ports

import (
	"context"

	"github.com/99minutos/user-directory/internal/core/domain"
)

// UsersSource fetches the raw users payload from a URI.
type UsersSource interface {
	// GetUsers performs a single GET and returns the decoded payload unmodified.
	GetUsers(ctx context.Context, uri string) ([]domain.RawUser, error)
}
