package gitremote

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5"

	"github.com/rios0rios0/pingcode/internal/domain/entities"
	"github.com/rios0rios0/pingcode/internal/domain/repositories"
)

const originRemote = "origin"

// GitRemoteRepository implements repositories.RemoteRepository with go-git.
type GitRemoteRepository struct{}

// NewGitRemoteRepository creates a new GitRemoteRepository.
func NewGitRemoteRepository() repositories.RemoteRepository {
	return &GitRemoteRepository{}
}

// ListRemotes opens the checkout containing dir and returns its remotes,
// "origin" first and the rest by name.
func (r *GitRemoteRepository) ListRemotes(_ context.Context, dir string) ([]entities.GitRemote, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %q: %w", dir, err)
	}

	remotes, err := repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}

	result := make([]entities.GitRemote, 0, len(remotes))
	for _, remote := range remotes {
		cfg := remote.Config()
		result = append(result, entities.GitRemote{
			Name: cfg.Name,
			URLs: append([]string(nil), cfg.URLs...),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if (result[i].Name == originRemote) != (result[j].Name == originRemote) {
			return result[i].Name == originRemote
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}
