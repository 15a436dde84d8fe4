//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/pingcode/internal/domain/entities"
	"github.com/rios0rios0/pingcode/internal/domain/repositories"
)

// SpyAPIRepository implements repositories.APIRepository as a configurable spy.
type SpyAPIRepository struct {
	// --- CurrentUser ---
	User             *entities.User
	CurrentUserErr   error
	CurrentUserCalls int

	// --- GetRepository ---
	Repository         *entities.Repository
	RepositoryNotFound bool
	GetRepositoryErr   error
	RequestedPaths     []entities.RepositoryPath

	// --- CreateBug ---
	CreatedBug   *entities.Bug
	CreateBugErr error
	BugPaths     []entities.RepositoryPath
	BugInputs    []entities.BugInput
}

var _ repositories.APIRepository = (*SpyAPIRepository)(nil)

func (p *SpyAPIRepository) CurrentUser(_ context.Context) (*entities.User, error) {
	p.CurrentUserCalls++
	if p.CurrentUserErr != nil {
		return nil, p.CurrentUserErr
	}
	return p.User, nil
}

func (p *SpyAPIRepository) GetRepository(
	_ context.Context, path entities.RepositoryPath,
) (*entities.Repository, error) {
	p.RequestedPaths = append(p.RequestedPaths, path)
	if p.GetRepositoryErr != nil || p.RepositoryNotFound {
		return nil, p.GetRepositoryErr
	}
	if p.Repository != nil {
		return p.Repository, nil
	}
	return &entities.Repository{Name: path.Repository, FullName: path.String()}, nil
}

func (p *SpyAPIRepository) CreateBug(
	_ context.Context, path entities.RepositoryPath, input entities.BugInput,
) (*entities.Bug, error) {
	p.BugPaths = append(p.BugPaths, path)
	p.BugInputs = append(p.BugInputs, input)
	if p.CreateBugErr != nil {
		return nil, p.CreateBugErr
	}
	if p.CreatedBug != nil {
		return p.CreatedBug, nil
	}
	return &entities.Bug{ID: 1, Number: "BUG-1", Title: input.Title}, nil
}
