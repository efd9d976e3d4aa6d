//go:build unit

package controllers_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/buildsrcversions/internal/domain/entities"
	"github.com/rios0rios0/buildsrcversions/internal/infrastructure/controllers"
	"github.com/rios0rios0/buildsrcversions/test/domain/commanddoubles"
)

// newCobraCommand mirrors the persistent flags the root command declares.
func newCobraCommand(t *testing.T, ctrl entities.Controller, flags ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: ctrl.GetBind().Use}
	cmd.Flags().StringP("config", "c", "", "")
	cmd.Flags().Bool("dry-run", false, "")
	cmd.Flags().BoolP("verbose", "v", false, "")
	ctrl.AddFlags(cmd)
	require.NoError(t, cmd.ParseFlags(flags))
	return cmd
}

func TestGenerateController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should pass flags and path to the command", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubGenerateCommand{}
		ctrl := controllers.NewGenerateController(command)
		cmd := newCobraCommand(t, ctrl, "--config", "ci.yaml", "--dry-run", "--init")

		// when
		ctrl.Execute(cmd, []string{"android"})

		// then
		require.Equal(t, 1, command.ExecuteCallCount)
		assert.Equal(t, "android", command.LastOpts.ProjectDir)
		assert.Equal(t, "ci.yaml", command.LastOpts.ConfigPath)
		assert.True(t, command.LastOpts.DryRun)
		assert.True(t, command.LastOpts.Init)
		assert.False(t, command.LastOpts.Verbose)
	})

	t.Run("should default to the current directory", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubGenerateCommand{}
		ctrl := controllers.NewGenerateController(command)
		cmd := newCobraCommand(t, ctrl)

		// when
		ctrl.Execute(cmd, nil)

		// then
		assert.Equal(t, ".", command.LastOpts.ProjectDir)
		assert.Empty(t, command.LastOpts.ConfigPath)
		assert.Equal(t, "generate [path]", ctrl.GetBind().Use)
	})
}

func TestListController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should request outdated dependencies only", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubListCommand{
			Entries: []entities.AnnotatedEntry{{
				DependencyEntry: entities.DependencyEntry{
					Coordinate: entities.Coordinate{Group: "androidx.core", Module: "core"},
					Versions:   entities.VersionInfo{Current: "1.1.0", Available: "1.2.0"},
				},
				Identifier: "androidxCore",
			}},
		}
		ctrl := controllers.NewListController(command)
		cmd := newCobraCommand(t, ctrl, "--outdated", "-v")

		// when
		ctrl.Execute(cmd, nil)

		// then
		require.Equal(t, 1, command.ExecuteCallCount)
		assert.True(t, command.LastOpts.OutdatedOnly)
		assert.True(t, command.LastOpts.Verbose)
	})
}

func TestWatchController_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should pass the generate flags to the watch command", func(t *testing.T) {
		t.Parallel()

		// given
		command := &commanddoubles.StubWatchCommand{}
		ctrl := controllers.NewWatchController(command)
		cmd := newCobraCommand(t, ctrl, "--init", "-c", "watch.hcl")

		// when
		ctrl.Execute(cmd, []string{"mobile"})

		// then
		require.Equal(t, 1, command.ExecuteCallCount)
		assert.Equal(t, "mobile", command.LastOpts.ProjectDir)
		assert.Equal(t, "watch.hcl", command.LastOpts.ConfigPath)
		assert.True(t, command.LastOpts.Init)
	})
}

func TestNewControllers(t *testing.T) {
	t.Parallel()

	t.Run("should expose every subcommand", func(t *testing.T) {
		t.Parallel()

		// when
		ctrls := controllers.NewControllers(
			controllers.NewGenerateController(&commanddoubles.StubGenerateCommand{}),
			controllers.NewListController(&commanddoubles.StubListCommand{}),
			controllers.NewWatchController(&commanddoubles.StubWatchCommand{}),
		)

		// then
		uses := make([]string, 0, len(*ctrls))
		for _, ctrl := range *ctrls {
			uses = append(uses, ctrl.GetBind().Use)
		}
		assert.Equal(t, []string{"generate [path]", "list [path]", "watch [path]"}, uses)
	})
}
