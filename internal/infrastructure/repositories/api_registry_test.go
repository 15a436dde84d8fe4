//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/pingcode/internal/domain/entities"
	domainRepos "github.com/rios0rios0/pingcode/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/pingcode/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/pingcode/test/infrastructure/repositorydoubles"
)

func TestAPIRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should return the factory result for a registered mode", func(t *testing.T) {
		t.Parallel()

		// given
		spy := &doubles.SpyAPIRepository{}
		registry := infraRepos.NewAPIRegistry()
		var received *entities.Settings
		registry.Register(entities.AuthModeToken, func(settings *entities.Settings) domainRepos.APIRepository {
			received = settings
			return spy
		})
		settings := &entities.Settings{Token: "secret"}

		// when
		api, err := registry.Get(entities.AuthModeToken, settings)

		// then
		require.NoError(t, err)
		assert.Same(t, spy, api)
		assert.Same(t, settings, received)
	})

	t.Run("should fail for an unknown mode", func(t *testing.T) {
		t.Parallel()

		// given
		registry := infraRepos.NewAPIRegistry()
		registry.Register(entities.AuthModeToken, func(_ *entities.Settings) domainRepos.APIRepository {
			return &doubles.SpyAPIRepository{}
		})
		registry.Register(entities.AuthModeNone, func(_ *entities.Settings) domainRepos.APIRepository {
			return &doubles.SpyAPIRepository{}
		})

		// when
		_, err := registry.Get("oauth", &entities.Settings{})

		// then
		require.Error(t, err)
		assert.Equal(t, `unknown auth mode: "oauth" (registered: none, token)`, err.Error())
	})

	t.Run("should pick the mode from the settings", func(t *testing.T) {
		t.Parallel()

		// given
		tokenSpy := &doubles.SpyAPIRepository{}
		anonymousSpy := &doubles.SpyAPIRepository{}
		registry := infraRepos.NewAPIRegistry()
		registry.Register(entities.AuthModeToken, func(_ *entities.Settings) domainRepos.APIRepository {
			return tokenSpy
		})
		registry.Register(entities.AuthModeNone, func(_ *entities.Settings) domainRepos.APIRepository {
			return anonymousSpy
		})

		// when
		withToken, err := registry.ForSettings(&entities.Settings{Token: "secret"})
		require.NoError(t, err)
		withoutToken, err := registry.ForSettings(&entities.Settings{})
		require.NoError(t, err)

		// then
		assert.Same(t, tokenSpy, withToken)
		assert.Same(t, anonymousSpy, withoutToken)
		assert.Equal(t, []string{"none", "token"}, registry.Modes())
	})
}
