package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/buildsrcversions/internal/domain/commands"
	"github.com/rios0rios0/buildsrcversions/internal/domain/entities"
)

// ListController handles the "list" subcommand.
type ListController struct {
	command commands.List
}

// NewListController creates a new ListController.
func NewListController(command commands.List) *ListController {
	return &ListController{command: command}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list [path]",
		Short: "List dependencies with their identifiers and available updates",
		Long: `Read the dependency report and print every dependency with the identifier
it gets in the generated files, its current version and the available update.
Nothing is written.`,
	}
}

// Execute prints the dependencies.
func (it *ListController) Execute(cmd *cobra.Command, args []string) {
	outdated, _ := cmd.Flags().GetBool("outdated")
	verbose, _ := cmd.Flags().GetBool("verbose")

	entries, err := it.command.Execute(context.Background(), commands.ListOptions{
		ProjectOptions: projectOptions(cmd, args),
		OutdatedOnly:   outdated,
		Verbose:        verbose,
	})
	if err != nil {
		logger.Fatalf("List failed: %v", err)
	}

	if len(entries) == 0 {
		logger.Info("No dependencies to show.")
		return
	}
	for _, entry := range entries {
		fields := logger.Fields{
			"dependency": entry.Coordinate.String(),
			"current":    entry.Versions.Current,
		}
		if entry.CurrentNonStable {
			fields["current_non_stable"] = true
		}
		if entry.Versions.HasUpdate() {
			fields["available"] = entry.Versions.Available
			fields["available_non_stable"] = entry.AvailableNonStable
		}
		logger.WithFields(fields).Info(entry.Identifier)
	}
}

// AddFlags adds the list-specific flags to the given Cobra command.
func (it *ListController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("outdated", false, "Only show dependencies with an available update")
}
