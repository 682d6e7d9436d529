package storage

import (
	"context"

	"kurirkan/internal/core/domain/model/customer"
	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/pkg/errs"
)

// customerRepository implements ports.CustomerRepository over the staging area.
type customerRepository struct {
	uow *unitOfWork
}

func (r *customerRepository) Add(_ context.Context, entity *customer.Customer) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	for _, existing := range r.all() {
		if existing.Phone().IsEqual(entity.Phone()) && !existing.ID().IsEqual(entity.ID()) {
			return errs.NewDuplicateCredentialError("phone", entity.Phone().String())
		}
	}

	r.uow.stagedCustomers[entity.ID().String()] = entity.Clone()
	return nil
}

func (r *customerRepository) Update(_ context.Context, entity *customer.Customer) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	key := entity.ID().String()
	if _, staged := r.uow.stagedCustomers[key]; !staged {
		if _, exists := r.uow.state.customers[key]; !exists {
			return errs.NewObjectNotFoundError("customer", entity.ID().String())
		}
	}

	r.uow.stagedCustomers[key] = entity.Clone()
	return nil
}

func (r *customerRepository) Get(_ context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if c, ok := r.uow.stagedCustomers[id.String()]; ok {
		return c.Clone(), nil
	}
	if c, ok := r.uow.state.customers[id.String()]; ok {
		return c.Clone(), nil
	}
	return nil, errs.NewObjectNotFoundError("customer", id.String())
}

func (r *customerRepository) GetByPhone(_ context.Context, phone kernel.Phone) (*customer.Customer, error) {
	if err := phone.Validate(); err != nil {
		return nil, err
	}

	for _, c := range r.all() {
		if c.Phone().IsEqual(phone) {
			return c.Clone(), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("customer", phone.String())
}

// all yields the transaction's view of the customers without cloning.
func (r *customerRepository) all() []*customer.Customer {
	customers := make([]*customer.Customer, 0, len(r.uow.state.customers))
	for id, c := range r.uow.state.customers {
		if _, staged := r.uow.stagedCustomers[id]; staged {
			continue
		}
		customers = append(customers, c)
	}
	for _, c := range r.uow.stagedCustomers {
		customers = append(customers, c)
	}
	return customers
}
