package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/pingcode/internal/domain/commands"
	"github.com/rios0rios0/pingcode/internal/domain/entities"
)

// BugController handles the "bug" subcommand.
type BugController struct {
	command commands.CreateBug
}

// NewBugController creates a new BugController.
func NewBugController(command commands.CreateBug) *BugController {
	return &BugController{command: command}
}

// GetBind returns the Cobra command metadata for the bug controller.
func (it *BugController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "bug [path]",
		Short: "Create a bug in a PingCode repository",
		Long: `Create a bug work item. The repository is taken from --repo, or
resolved from the remotes of the checkout at [path] (default ".").`,
	}
}

// Execute runs the bug command.
func (it *BugController) Execute(cmd *cobra.Command, args []string) {
	ctx := commandContext(cmd)

	settings, err := loadSettings(cmd)
	if err != nil {
		logger.Error(err)
		return
	}

	title, _ := cmd.Flags().GetString("title")
	body, _ := cmd.Flags().GetString("body")
	repo, _ := cmd.Flags().GetString("repo")

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	bug, err := it.command.Execute(ctx, settings, commands.CreateBugOptions{
		Dir:   dir,
		Repo:  repo,
		Title: title,
		Body:  body,
	})
	if err != nil {
		logger.Errorf("Bug creation failed: %s", describeFailure(err))
		return
	}

	logger.Infof("Created bug %s: %s", bug.Number, bug.HTMLURL)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), bug.HTMLURL)
}

// AddFlags adds the bug-specific flags to the given Cobra command.
func (it *BugController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "Bug title (required)")
	cmd.Flags().String("body", "", "Bug description")
	cmd.Flags().String("repo", "", "Target repository as owner/repo (default: resolved from git remotes)")
}
