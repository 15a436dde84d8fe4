//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/pingcode/internal/domain/commands"
	"github.com/rios0rios0/pingcode/internal/domain/entities"
	"github.com/rios0rios0/pingcode/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/pingcode/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/pingcode/test/infrastructure/repositorydoubles"
)

func newRegistry(spy *doubles.SpyAPIRepository) *infraRepos.APIRegistry {
	registry := infraRepos.NewAPIRegistry()
	factory := func(_ *entities.Settings) repositories.APIRepository { return spy }
	registry.Register(entities.AuthModeToken, factory)
	registry.Register(entities.AuthModeNone, factory)
	return registry
}

func TestWhoAmICommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should return the current user", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyAPIRepository{User: &entities.User{Login: "alice"}}
		cmd := commands.NewWhoAmICommand(newRegistry(spy))
		settings := &entities.Settings{Host: entities.DefaultHostURL, Token: "secret"}

		// when
		user, err := cmd.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Login)
		assert.Equal(t, 1, spy.CurrentUserCalls)
	})

	t.Run("should fail without calling the API when no token is set", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyAPIRepository{}
		cmd := commands.NewWhoAmICommand(newRegistry(spy))

		// when
		_, err := cmd.Execute(context.Background(), entities.NewDefaultSettings())

		// then
		assert.True(t, entities.IsAuthenticationFailure(err))
		assert.Zero(t, spy.CurrentUserCalls)
	})

	t.Run("should keep the failure type of the API", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyAPIRepository{CurrentUserErr: entities.NewTokenExpiredError("Access token is expired")}
		cmd := commands.NewWhoAmICommand(newRegistry(spy))
		settings := &entities.Settings{Host: entities.DefaultHostURL, Token: "secret"}

		// when
		_, err := cmd.Execute(context.Background(), settings)

		// then
		assert.Equal(t, entities.KindTokenExpired, entities.KindOf(err))
	})

	t.Run("should fail when no client is registered for the auth mode", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewWhoAmICommand(infraRepos.NewAPIRegistry())
		settings := &entities.Settings{Host: entities.DefaultHostURL, Token: "secret"}

		// when
		_, err := cmd.Execute(context.Background(), settings)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create API client")
	})
}
