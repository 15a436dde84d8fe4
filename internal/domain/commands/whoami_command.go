package commands

import (
	"context"
	"fmt"

	"github.com/rios0rios0/pingcode/internal/domain/entities"
	infraRepos "github.com/rios0rios0/pingcode/internal/infrastructure/repositories"
)

// WhoAmI is the interface for the whoami command.
type WhoAmI interface {
	Execute(ctx context.Context, settings *entities.Settings) (*entities.User, error)
}

// WhoAmICommand fetches the account behind the configured token.
type WhoAmICommand struct {
	apiRegistry *infraRepos.APIRegistry
}

// NewWhoAmICommand creates a new WhoAmICommand.
func NewWhoAmICommand(apiRegistry *infraRepos.APIRegistry) *WhoAmICommand {
	return &WhoAmICommand{apiRegistry: apiRegistry}
}

// Execute returns the current user. Failures keep their entities Failure type.
func (it *WhoAmICommand) Execute(ctx context.Context, settings *entities.Settings) (*entities.User, error) {
	if settings.AuthMode() == entities.AuthModeNone {
		return nil, entities.NewAuthenticationError("no access token configured", nil)
	}

	api, err := it.apiRegistry.ForSettings(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	return api.CurrentUser(ctx)
}
