package repositories

import (
	"context"

	"github.com/rios0rios0/pingcode/internal/domain/entities"
)

// RemoteRepository reads the remotes of a local git checkout.
type RemoteRepository interface {
	ListRemotes(ctx context.Context, dir string) ([]entities.GitRemote, error)
}
