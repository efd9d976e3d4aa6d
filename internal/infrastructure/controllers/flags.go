package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/buildsrcversions/internal/domain/commands"
)

// projectOptions reads the global flags and the optional [path] argument.
func projectOptions(cmd *cobra.Command, args []string) commands.ProjectOptions {
	configPath, _ := cmd.Flags().GetString("config")

	projectDir := "."
	if len(args) > 0 {
		projectDir = args[0]
	}

	return commands.ProjectOptions{
		ProjectDir: projectDir,
		ConfigPath: configPath,
	}
}

// generateOptions reads the flags shared by the generate and watch controllers.
func generateOptions(cmd *cobra.Command, args []string) commands.GenerateOptions {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	initBlock, _ := cmd.Flags().GetBool("init")

	return commands.GenerateOptions{
		ProjectOptions: projectOptions(cmd, args),
		DryRun:         dryRun,
		Verbose:        verbose,
		Init:           initBlock,
	}
}
