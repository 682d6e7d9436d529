package ports

import (
	"context"

	"kurirkan/internal/core/domain/model/driver"
	"kurirkan/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate.
	// Returns DuplicateCredentialError if the username is already taken.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	// Returns ObjectNotFoundError if the driver does not exist.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Delete removes a driver. The use case layer forbids deleting a driver
	// with an active order.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a driver by its unique identifier.
	// Returns ObjectNotFoundError if the driver does not exist.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetByUsername retrieves a driver by login username.
	// Returns ObjectNotFoundError if no driver has the username.
	GetByUsername(ctx context.Context, username string) (*driver.Driver, error)

	// GetAll retrieves every registered driver.
	GetAll(ctx context.Context) ([]*driver.Driver, error)
}
