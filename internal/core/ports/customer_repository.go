package ports

import (
	"context"

	"kurirkan/internal/core/domain/model/customer"
	"kurirkan/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer entities.
// The canonical phone number is the unique login identity.
type CustomerRepository interface {
	// Add persists a new customer.
	// Returns DuplicateCredentialError if the phone is already registered.
	Add(ctx context.Context, entity *customer.Customer) error

	// Update persists changes to an existing customer.
	// Returns ObjectNotFoundError if the customer does not exist.
	Update(ctx context.Context, entity *customer.Customer) error

	// Get retrieves a customer by its unique identifier.
	// Returns ObjectNotFoundError if the customer does not exist.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByPhone retrieves a customer by canonical phone number.
	// Returns ObjectNotFoundError if no customer has the phone.
	GetByPhone(ctx context.Context, phone kernel.Phone) (*customer.Customer, error)
}
