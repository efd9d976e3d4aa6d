package internal

import (
	"fmt"

	"go.uber.org/dig"

	"github.com/rios0rios0/buildsrcversions/internal/domain/commands"
	"github.com/rios0rios0/buildsrcversions/internal/infrastructure/controllers"
	"github.com/rios0rios0/buildsrcversions/internal/infrastructure/repositories"
)

// RegisterProviders registers every layer with the DIG container, bottom-up:
// infrastructure repositories, domain commands, controllers, then the app itself.
// Entities need no provider: settings are loaded per run by the commands.
func RegisterProviders(container *dig.Container) error {
	layers := []struct {
		name     string
		register func(*dig.Container) error
	}{
		{"repositories", repositories.RegisterProviders},
		{"commands", commands.RegisterProviders},
		{"controllers", controllers.RegisterProviders},
	}
	for _, layer := range layers {
		if err := layer.register(container); err != nil {
			return fmt.Errorf("failed to register %s: %w", layer.name, err)
		}
	}

	return container.Provide(NewAppInternal)
}
