package storage

import (
	"context"

	"kurirkan/internal/core/domain/model/settings"
)

// settingsRepository implements ports.SettingsRepository over the staging
// area. The state always holds a settings value (defaults until first save),
// so Get never fails.
type settingsRepository struct {
	uow *unitOfWork
}

func (r *settingsRepository) Get(_ context.Context) (settings.AppSettings, error) {
	if r.uow.stagedSettings != nil {
		return *r.uow.stagedSettings, nil
	}
	return r.uow.state.settings, nil
}

func (r *settingsRepository) Save(_ context.Context, s settings.AppSettings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	staged := s
	r.uow.stagedSettings = &staged
	return nil
}
