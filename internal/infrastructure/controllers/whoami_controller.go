package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/pingcode/internal/domain/commands"
	"github.com/rios0rios0/pingcode/internal/domain/entities"
)

// WhoAmIController handles the "whoami" subcommand.
type WhoAmIController struct {
	command commands.WhoAmI
}

// NewWhoAmIController creates a new WhoAmIController.
func NewWhoAmIController(command commands.WhoAmI) *WhoAmIController {
	return &WhoAmIController{command: command}
}

// GetBind returns the Cobra command metadata for the whoami controller.
func (it *WhoAmIController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "whoami",
		Short: "Show the account behind the configured token",
		Long:  `Call the PingCode REST API with the configured token and print the account it belongs to.`,
	}
}

// Execute runs the whoami command.
func (it *WhoAmIController) Execute(cmd *cobra.Command, _ []string) {
	ctx := commandContext(cmd)

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Error(err)
		return
	}

	user, err := it.command.Execute(ctx, settings)
	if err != nil {
		logger.Errorf("Whoami failed: %s", describeFailure(err))
		return
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) %s\n", user.Login, user.Name, user.HTMLURL)
}
