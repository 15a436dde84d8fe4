package repositories

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rios0rios0/pingcode/internal/domain/entities"
	domainRepos "github.com/rios0rios0/pingcode/internal/domain/repositories"
)

// APIFactory is a constructor function that creates an APIRepository for the given settings.
type APIFactory func(settings *entities.Settings) domainRepos.APIRepository

// APIRegistry manages the API client implementations, keyed by auth mode.
type APIRegistry struct {
	factories map[string]APIFactory
}

// NewAPIRegistry creates an empty API registry.
func NewAPIRegistry() *APIRegistry {
	return &APIRegistry{
		factories: make(map[string]APIFactory),
	}
}

// Register adds a factory under the given auth mode (e.g. "token").
func (r *APIRegistry) Register(mode string, factory APIFactory) {
	r.factories[mode] = factory
}

// Get returns a client for the given auth mode.
func (r *APIRegistry) Get(mode string, settings *entities.Settings) (domainRepos.APIRepository, error) {
	factory, ok := r.factories[mode]
	if !ok {
		return nil, fmt.Errorf("unknown auth mode: %q (registered: %s)", mode, strings.Join(r.Modes(), ", "))
	}
	return factory(settings), nil
}

// ForSettings picks the client matching the auth mode of the settings.
func (r *APIRegistry) ForSettings(settings *entities.Settings) (domainRepos.APIRepository, error) {
	return r.Get(settings.AuthMode(), settings)
}

// Modes returns the registered auth modes, sorted.
func (r *APIRegistry) Modes() []string {
	modes := make([]string, 0, len(r.factories))
	for mode := range r.factories {
		modes = append(modes, mode)
	}
	sort.Strings(modes)
	return modes
}
