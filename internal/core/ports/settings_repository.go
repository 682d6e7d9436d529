package ports

import (
	"context"

	"kurirkan/internal/core/domain/model/settings"
)

// SettingsRepository defines the persistence contract for the single
// application settings document.
type SettingsRepository interface {
	// Get retrieves the current settings, falling back to defaults when
	// none have been saved.
	Get(ctx context.Context) (settings.AppSettings, error)

	// Save replaces the settings document.
	Save(ctx context.Context, s settings.AppSettings) error
}
