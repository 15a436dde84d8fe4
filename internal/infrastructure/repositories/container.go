package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/pingcode/internal/domain/entities"
	domainRepos "github.com/rios0rios0/pingcode/internal/domain/repositories"
	"github.com/rios0rios0/pingcode/internal/infrastructure/repositories/gitremote"
	"github.com/rios0rios0/pingcode/internal/infrastructure/repositories/pingcode"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register API registry with one factory per auth mode
	if err := container.Provide(func() *APIRegistry {
		reg := NewAPIRegistry()
		reg.Register(entities.AuthModeToken, pingcode.NewTokenAPIRepository)
		reg.Register(entities.AuthModeNone, pingcode.NewAnonymousAPIRepository)
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.RemoteRepository {
		return gitremote.NewGitRemoteRepository()
	}); err != nil {
		return err
	}

	return nil
}
