package commands

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/pingcode/internal/domain/entities"
	"github.com/rios0rios0/pingcode/internal/domain/repositories"
)

// explicitRemoteName labels a URL given directly instead of read from a checkout.
const explicitRemoteName = "(argument)"

// Resolve is the interface for the resolve command.
type Resolve interface {
	Execute(ctx context.Context, settings *entities.Settings, opts ResolveOptions) ([]entities.ResolvedRemote, error)
}

// ResolveOptions holds runtime options for the resolve command.
type ResolveOptions struct {
	// Target is a directory inside a git checkout or a remote URL.
	Target string
}

// ResolveCommand maps git remotes onto repositories of the configured server.
type ResolveCommand struct {
	remoteRepository repositories.RemoteRepository
}

// NewResolveCommand creates a new ResolveCommand.
func NewResolveCommand(remoteRepository repositories.RemoteRepository) *ResolveCommand {
	return &ResolveCommand{remoteRepository: remoteRepository}
}

// Execute returns every remote URL of the target that points at the configured host.
func (it *ResolveCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts ResolveOptions,
) ([]entities.ResolvedRemote, error) {
	target := opts.Target
	if target == "" {
		target = "."
	}

	remotes, err := it.candidateRemotes(ctx, target)
	if err != nil {
		return nil, err
	}

	hostURL := settings.HostURL()
	var resolved []entities.ResolvedRemote
	for _, remote := range remotes {
		for _, remoteURL := range remote.URLs {
			if !entities.IsMatchingHost(remoteURL, hostURL) {
				logger.Debugf("Skipping remote %s (%s): host is not %s", remote.Name, remoteURL, hostURL)
				continue
			}

			path, ok := entities.RepositoryPathFromRemoteURL(remoteURL)
			if !ok {
				logger.Warnf("Remote %s (%s) has no owner/repository path", remote.Name, remoteURL)
				continue
			}
			repoURL, _ := entities.RepoURLFromRemoteURL(remoteURL, hostURL)

			resolved = append(resolved, entities.ResolvedRemote{
				RemoteName: remote.Name,
				URL:        remoteURL,
				Path:       path,
				RepoURL:    repoURL,
			})
		}
	}

	if len(resolved) == 0 {
		return nil, fmt.Errorf("no remote of %q points at %s", target, hostURL)
	}
	return resolved, nil
}

func (it *ResolveCommand) candidateRemotes(ctx context.Context, target string) ([]entities.GitRemote, error) {
	if looksLikeRemoteURL(target) {
		return []entities.GitRemote{{Name: explicitRemoteName, URLs: []string{target}}}, nil
	}

	remotes, err := it.remoteRepository.ListRemotes(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("failed to read git remotes: %w", err)
	}
	return remotes, nil
}

// looksLikeRemoteURL tells remote URLs (scheme or SSH user@host) apart from paths.
func looksLikeRemoteURL(target string) bool {
	return strings.Contains(target, "://") || strings.Contains(target, "@")
}
