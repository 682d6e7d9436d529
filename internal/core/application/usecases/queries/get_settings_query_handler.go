package queries

import (
	"context"

	"kurirkan/internal/core/domain/model/settings"
)

// GetSettingsQueryHandler reads the runtime configuration, falling back to
// defaults when nothing has been saved yet.
type GetSettingsQueryHandler struct {
	uowFactory ReadUoWFactory
}

// NewGetSettingsQueryHandler creates a handler for settings reads.
func NewGetSettingsQueryHandler(uowFactory ReadUoWFactory) GetSettingsQueryHandler {
	return GetSettingsQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query.
func (h GetSettingsQueryHandler) Handle(
	ctx context.Context,
	query GetSettingsQuery,
) (settings.AppSettings, error) {
	if err := query.Validate(); err != nil {
		return settings.AppSettings{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return settings.AppSettings{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.SettingsRepository().Get(ctx)
}
