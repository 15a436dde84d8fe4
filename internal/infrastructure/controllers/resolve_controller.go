package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/pingcode/internal/domain/commands"
	"github.com/rios0rios0/pingcode/internal/domain/entities"
)

// ResolveController handles the "resolve" subcommand.
type ResolveController struct {
	command commands.Resolve
}

// NewResolveController creates a new ResolveController.
func NewResolveController(command commands.Resolve) *ResolveController {
	return &ResolveController{command: command}
}

// GetBind returns the Cobra command metadata for the resolve controller.
func (it *ResolveController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "resolve [path|url]",
		Short: "Map git remotes to PingCode repositories",
		Long: `Read the remotes of a local checkout (or take a remote URL), keep the
ones pointing at the configured PingCode host, and print the owner,
repository, browsable URL and REST API endpoint for each of them.`,
	}
}

// Execute runs the resolve command.
func (it *ResolveController) Execute(cmd *cobra.Command, args []string) {
	ctx := commandContext(cmd)

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Error(err)
		return
	}

	target := "."
	if len(args) > 0 {
		target = args[0]
	}

	resolved, err := it.command.Execute(ctx, settings, commands.ResolveOptions{Target: target})
	if err != nil {
		logger.Errorf("Resolve failed: %v", err)
		return
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "API: %s\n", settings.APIEndpoint())
	for _, remote := range resolved {
		_, _ = fmt.Fprintf(out, "%s\t%s\t%s\n", remote.RemoteName, remote.Path, remote.RepoURL)
	}
}
