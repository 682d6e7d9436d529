package commands

import (
	"errors"

	"kurirkan/internal/core/domain/model/settings"
	"kurirkan/internal/pkg/guard"
)

var ErrUpdateSettingsCommandIsNotConstructed = errors.New(
	"UpdateSettingsCommand must be created via NewUpdateSettingsCommand constructor",
)

// UpdateSettingsCommand replaces the runtime configuration with a new,
// validated snapshot.
type UpdateSettingsCommand struct { //nolint:recvcheck //using for validation
	settings settings.AppSettings

	guard guard.ConstructorGuard
}

// NewUpdateSettingsCommand creates a command carrying the new settings.
func NewUpdateSettingsCommand(newSettings settings.AppSettings) (UpdateSettingsCommand, error) {
	cmd := UpdateSettingsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := newSettings.Validate(); err != nil {
		return UpdateSettingsCommand{}, err
	}

	cmd.settings = newSettings
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSettingsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSettingsCommandIsNotConstructed)
}

// Settings returns the new configuration snapshot.
func (c UpdateSettingsCommand) Settings() settings.AppSettings { return c.settings }
