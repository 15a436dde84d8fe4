package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/pingcode/internal/domain/entities"
	infraRepos "github.com/rios0rios0/pingcode/internal/infrastructure/repositories"
)

// CreateBug is the interface for the bug command.
type CreateBug interface {
	Execute(ctx context.Context, settings *entities.Settings, opts CreateBugOptions) (*entities.Bug, error)
}

// CreateBugOptions holds runtime options for the bug command.
type CreateBugOptions struct {
	Dir   string // Checkout used to find the repository when Repo is empty
	Repo  string // Explicit "owner/repo"
	Title string
	Body  string
}

// CreateBugCommand files a bug against the repository of a checkout.
type CreateBugCommand struct {
	apiRegistry *infraRepos.APIRegistry
	resolve     Resolve
}

// NewCreateBugCommand creates a new CreateBugCommand.
func NewCreateBugCommand(apiRegistry *infraRepos.APIRegistry, resolve Resolve) *CreateBugCommand {
	return &CreateBugCommand{apiRegistry: apiRegistry, resolve: resolve}
}

// Execute resolves the target repository and creates the bug.
func (it *CreateBugCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts CreateBugOptions,
) (*entities.Bug, error) {
	title := strings.TrimSpace(opts.Title)
	if title == "" {
		return nil, errors.New("bug title is required")
	}

	path, err := it.repositoryPath(ctx, settings, opts)
	if err != nil {
		return nil, err
	}
	server, err := entities.ParseServerPath(settings.HostURL())
	if err != nil {
		return nil, fmt.Errorf("invalid host %q: %w", settings.Host, err)
	}
	coordinates := entities.RepositoryCoordinates{Server: server, Path: path}
	logger.Infof("Creating bug in %s", coordinates.ToURL())

	api, err := it.apiRegistry.ForSettings(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}

	repository, err := api.GetRepository(ctx, path)
	if err != nil {
		return nil, err
	}
	if repository == nil {
		return nil, fmt.Errorf("repository %s not found", coordinates.ToURL())
	}
	return api.CreateBug(ctx, path, entities.BugInput{Title: title, Body: opts.Body})
}

func (it *CreateBugCommand) repositoryPath(
	ctx context.Context,
	settings *entities.Settings,
	opts CreateBugOptions,
) (entities.RepositoryPath, error) {
	if opts.Repo != "" {
		return entities.ParseRepositoryPath(opts.Repo)
	}

	resolved, err := it.resolve.Execute(ctx, settings, ResolveOptions{Target: opts.Dir})
	if err != nil {
		return entities.RepositoryPath{}, fmt.Errorf("failed to find the repository: %w", err)
	}
	if len(resolved) > 1 {
		logger.Infof("Found %d matching remotes, using %s", len(resolved), resolved[0].RemoteName)
	}
	return resolved[0].Path, nil
}
