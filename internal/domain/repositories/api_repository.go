package repositories

import (
	"context"

	"github.com/rios0rios0/pingcode/internal/domain/entities"
)

// APIRepository abstracts the PingCode REST API. Every failure returned is
// one of the entities Failure types, possibly wrapped.
type APIRepository interface {
	// CurrentUser returns the account behind the configured token.
	CurrentUser(ctx context.Context) (*entities.User, error)
	// GetRepository returns nil without error when the repository does not exist.
	GetRepository(ctx context.Context, path entities.RepositoryPath) (*entities.Repository, error)
	// CreateBug files a bug in the given repository.
	CreateBug(ctx context.Context, path entities.RepositoryPath, input entities.BugInput) (*entities.Bug, error)
}
