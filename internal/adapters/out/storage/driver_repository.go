package storage

import (
	"context"
	"sort"

	"kurirkan/internal/core/domain/model/driver"
	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/pkg/errs"
)

// driverRepository implements ports.DriverRepository over the staging area.
type driverRepository struct {
	uow *unitOfWork
}

func (r *driverRepository) Add(_ context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	for _, existing := range r.all() {
		if existing.Username() == aggregate.Username() && !existing.IsEqual(aggregate) {
			return errs.NewDuplicateCredentialError("username", aggregate.Username())
		}
	}

	r.uow.stagedDrivers[aggregate.ID().String()] = aggregate.Clone()
	delete(r.uow.removedDrivers, aggregate.ID().String())
	return nil
}

func (r *driverRepository) Update(_ context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if !r.exists(key) {
		return errs.NewObjectNotFoundError("driver", aggregate.ID().String())
	}

	r.uow.stagedDrivers[key] = aggregate.Clone()
	return nil
}

func (r *driverRepository) Delete(_ context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	key := id.String()
	if !r.exists(key) {
		return errs.NewObjectNotFoundError("driver", id.String())
	}

	delete(r.uow.stagedDrivers, key)
	r.uow.removedDrivers[key] = struct{}{}
	return nil
}

func (r *driverRepository) Get(_ context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	key := id.String()
	if _, removed := r.uow.removedDrivers[key]; removed {
		return nil, errs.NewObjectNotFoundError("driver", id.String())
	}
	if d, ok := r.uow.stagedDrivers[key]; ok {
		return d.Clone(), nil
	}
	if d, ok := r.uow.state.drivers[key]; ok {
		return d.Clone(), nil
	}
	return nil, errs.NewObjectNotFoundError("driver", id.String())
}

func (r *driverRepository) GetByUsername(_ context.Context, username string) (*driver.Driver, error) {
	for _, d := range r.all() {
		if d.Username() == username {
			return d.Clone(), nil
		}
	}
	return nil, errs.NewObjectNotFoundError("driver", username)
}

func (r *driverRepository) GetAll(_ context.Context) ([]*driver.Driver, error) {
	drivers := make([]*driver.Driver, 0)
	for _, d := range r.all() {
		drivers = append(drivers, d.Clone())
	}
	sort.Slice(drivers, func(i, j int) bool {
		return drivers[i].Code() < drivers[j].Code()
	})
	return drivers, nil
}

func (r *driverRepository) exists(key string) bool {
	if _, removed := r.uow.removedDrivers[key]; removed {
		return false
	}
	if _, staged := r.uow.stagedDrivers[key]; staged {
		return true
	}
	_, ok := r.uow.state.drivers[key]
	return ok
}

// all yields the transaction's view of the drivers without cloning.
func (r *driverRepository) all() []*driver.Driver {
	drivers := make([]*driver.Driver, 0, len(r.uow.state.drivers))
	for id, d := range r.uow.state.drivers {
		if _, staged := r.uow.stagedDrivers[id]; staged {
			continue
		}
		if _, removed := r.uow.removedDrivers[id]; removed {
			continue
		}
		drivers = append(drivers, d)
	}
	for _, d := range r.uow.stagedDrivers {
		drivers = append(drivers, d)
	}
	return drivers
}
