//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/pingcode/internal/domain/commands"
	"github.com/rios0rios0/pingcode/internal/domain/entities"
)

// StubCreateBugCommand is a stub implementation of commands.CreateBug.
type StubCreateBugCommand struct {
	ExecuteCallCount int
	Bug              *entities.Bug
	ExecuteErr       error
	LastOpts         commands.CreateBugOptions
}

var _ commands.CreateBug = (*StubCreateBugCommand)(nil)

func (s *StubCreateBugCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.CreateBugOptions,
) (*entities.Bug, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Bug, s.ExecuteErr
}
