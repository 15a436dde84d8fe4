//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/pingcode/internal/domain/entities"
	"github.com/rios0rios0/pingcode/internal/domain/repositories"
)

// StubRemoteRepository implements repositories.RemoteRepository with canned remotes.
type StubRemoteRepository struct {
	Remotes        []entities.GitRemote
	ListRemotesErr error
	RequestedDirs  []string
}

var _ repositories.RemoteRepository = (*StubRemoteRepository)(nil)

func (s *StubRemoteRepository) ListRemotes(_ context.Context, dir string) ([]entities.GitRemote, error) {
	s.RequestedDirs = append(s.RequestedDirs, dir)
	return s.Remotes, s.ListRemotesErr
}
