package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/buildsrcversions/internal/domain/commands"
	"github.com/rios0rios0/buildsrcversions/internal/domain/entities"
)

// GenerateController handles the "generate" subcommand.
type GenerateController struct {
	command commands.Generate
}

// NewGenerateController creates a new GenerateController.
func NewGenerateController(command commands.Generate) *GenerateController {
	return &GenerateController{command: command}
}

// GetBind returns the Cobra command metadata for the generate controller.
func (it *GenerateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "generate [path]",
		Short: "Generate the Libs and Versions files from the dependency report",
		Long: `Read the dependency report of the project and write the Libs and Versions
constants holders, one constant per dependency, annotated with available updates.

In versions-only mode only the region between the <buildSrcVersions> and
</buildSrcVersions> markers of the configured file is rewritten.`,
	}
}

// Execute runs one generation.
func (it *GenerateController) Execute(cmd *cobra.Command, args []string) {
	if err := it.command.Execute(context.Background(), generateOptions(cmd, args)); err != nil {
		logger.Fatalf("Generation failed: %v", err)
	}
}

// AddFlags adds the generate-specific flags to the given Cobra command.
func (it *GenerateController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("init", false, "In versions-only mode, append a marker block when the file has none")
}
