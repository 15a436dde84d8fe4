//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/pingcode/internal/domain/commands"
	"github.com/rios0rios0/pingcode/internal/domain/entities"
)

// StubWhoAmICommand is a stub implementation of commands.WhoAmI.
type StubWhoAmICommand struct {
	ExecuteCallCount int
	User             *entities.User
	ExecuteErr       error
	LastCtx          context.Context
}

var _ commands.WhoAmI = (*StubWhoAmICommand)(nil)

func (s *StubWhoAmICommand) Execute(ctx context.Context, _ *entities.Settings) (*entities.User, error) {
	s.ExecuteCallCount++
	s.LastCtx = ctx
	return s.User, s.ExecuteErr
}
