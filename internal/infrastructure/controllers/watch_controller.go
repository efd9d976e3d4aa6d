package controllers

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/buildsrcversions/internal/domain/commands"
	"github.com/rios0rios0/buildsrcversions/internal/domain/entities"
)

// WatchController handles the "watch" subcommand.
type WatchController struct {
	command commands.Watch
}

// NewWatchController creates a new WatchController.
func NewWatchController(command commands.Watch) *WatchController {
	return &WatchController{command: command}
}

// GetBind returns the Cobra command metadata for the watch controller.
func (it *WatchController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "watch [path]",
		Short: "Regenerate whenever the dependency report changes",
		Long: `Generate once, then watch the dependency report and regenerate the files
each time it is rewritten (for example by ./gradlew dependencyUpdates).
Stops on Ctrl+C.`,
	}
}

// Execute watches until interrupted.
func (it *WatchController) Execute(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := it.command.Execute(ctx, generateOptions(cmd, args)); err != nil {
		logger.Fatalf("Watch failed: %v", err)
	}
}

// AddFlags adds the watch-specific flags to the given Cobra command.
func (it *WatchController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("init", false, "In versions-only mode, append a marker block when the file has none")
}
