package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"kurirkan/internal/core/domain/model/customer"
	"kurirkan/internal/core/domain/model/driver"
	"kurirkan/internal/core/domain/model/notification"
	"kurirkan/internal/core/domain/model/order"
	"kurirkan/internal/core/domain/model/queue"
	"kurirkan/internal/core/domain/model/settings"
	"kurirkan/internal/core/ports"
	"kurirkan/internal/pkg/errs"
)

// State holds the whole data set in memory: one map per collection keyed by
// aggregate id, the dispatch queue as a slice, and the settings document.
//
// All access goes through mu. Units of work hold the mutex from Begin to
// Commit/Rollback, so at most one transaction mutates the state at a time;
// PersistAll takes it independently for background snapshots.
type State struct {
	mu sync.Mutex

	orders        map[string]*order.Order
	drivers       map[string]*driver.Driver
	customers     map[string]*customer.Customer
	queue         []queue.Item
	notifications map[string]*notification.Notification

	settings    settings.AppSettings
	settingsSet bool
}

// NewState creates an empty state with default settings.
func NewState() *State {
	return &State{
		orders:        make(map[string]*order.Order),
		drivers:       make(map[string]*driver.Driver),
		customers:     make(map[string]*customer.Customer),
		notifications: make(map[string]*notification.Notification),
		settings:      settings.Default(),
	}
}

// LoadState reads every collection from the store and reconstructs the
// domain aggregates. Collections that have never been saved load empty.
func LoadState(ctx context.Context, store ports.CollectionStore) (*State, error) {
	s := NewState()

	if err := errors.Join(
		loadCollection(ctx, store, ports.OrdersCollection, func(dto orderDTO) error {
			o, err := orderToDomain(dto)
			if err != nil {
				return err
			}
			s.orders[o.ID().String()] = o
			return nil
		}),
		loadCollection(ctx, store, ports.DriversCollection, func(dto driverDTO) error {
			d, err := driverToDomain(dto)
			if err != nil {
				return err
			}
			s.drivers[d.ID().String()] = d
			return nil
		}),
		loadCollection(ctx, store, ports.CustomersCollection, func(dto customerDTO) error {
			c, err := customerToDomain(dto)
			if err != nil {
				return err
			}
			s.customers[c.ID().String()] = c
			return nil
		}),
		loadCollection(ctx, store, ports.QueueCollection, func(dto queueItemDTO) error {
			item, err := queueItemToDomain(dto)
			if err != nil {
				return err
			}
			s.queue = append(s.queue, item)
			return nil
		}),
		loadCollection(ctx, store, ports.NotificationsCollection, func(dto notificationDTO) error {
			n, err := notificationToDomain(dto)
			if err != nil {
				return err
			}
			s.notifications[n.ID().String()] = n
			return nil
		}),
		s.loadSettings(ctx, store),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func loadCollection[DTO any](
	ctx context.Context,
	store ports.CollectionStore,
	key string,
	install func(DTO) error,
) error {
	raw, err := store.Load(ctx, key)
	if err != nil {
		return errs.NewPersistenceError(key, err)
	}
	if len(raw) == 0 {
		return nil
	}

	var dtos []DTO
	if err = json.Unmarshal(raw, &dtos); err != nil {
		return errs.NewPersistenceError(key, err)
	}

	for _, dto := range dtos {
		if err = install(dto); err != nil {
			return fmt.Errorf("restoring %s: %w", key, err)
		}
	}
	return nil
}

func (s *State) loadSettings(ctx context.Context, store ports.CollectionStore) error {
	raw, err := store.Load(ctx, ports.SettingsCollection)
	if err != nil {
		return errs.NewPersistenceError(ports.SettingsCollection, err)
	}
	if len(raw) == 0 {
		return nil
	}

	var dto settingsDTO
	if err = json.Unmarshal(raw, &dto); err != nil {
		return errs.NewPersistenceError(ports.SettingsCollection, err)
	}

	s.settings = settingsToDomain(dto)
	s.settingsSet = true
	return nil
}

// PersistAll serializes every collection and writes it through the store.
// Used by the periodic snapshot job. Failures are joined per collection so
// one broken key does not block the rest.
func (s *State) PersistAll(ctx context.Context, store ports.CollectionStore) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errList []error
	for _, key := range []string{
		ports.OrdersCollection,
		ports.DriversCollection,
		ports.CustomersCollection,
		ports.QueueCollection,
		ports.NotificationsCollection,
		ports.SettingsCollection,
	} {
		if err := s.persistLocked(ctx, store, key); err != nil {
			errList = append(errList, err)
		}
	}
	return errors.Join(errList...)
}

// persistLocked serializes one collection and saves it. Caller holds mu.
func (s *State) persistLocked(ctx context.Context, store ports.CollectionStore, key string) error {
	raw, err := s.serializeLocked(key)
	if err != nil {
		return errs.NewPersistenceError(key, err)
	}
	if err = store.Save(ctx, key, raw); err != nil {
		return errs.NewPersistenceError(key, err)
	}
	return nil
}

func (s *State) serializeLocked(key string) ([]byte, error) {
	switch key {
	case ports.OrdersCollection:
		dtos := make([]orderDTO, 0, len(s.orders))
		for _, o := range s.orders {
			dtos = append(dtos, orderFromDomain(o))
		}
		sort.Slice(dtos, func(i, j int) bool { return dtos[i].ID < dtos[j].ID })
		return json.Marshal(dtos)
	case ports.DriversCollection:
		dtos := make([]driverDTO, 0, len(s.drivers))
		for _, d := range s.drivers {
			dtos = append(dtos, driverFromDomain(d))
		}
		sort.Slice(dtos, func(i, j int) bool { return dtos[i].ID < dtos[j].ID })
		return json.Marshal(dtos)
	case ports.CustomersCollection:
		dtos := make([]customerDTO, 0, len(s.customers))
		for _, c := range s.customers {
			dtos = append(dtos, customerFromDomain(c))
		}
		sort.Slice(dtos, func(i, j int) bool { return dtos[i].ID < dtos[j].ID })
		return json.Marshal(dtos)
	case ports.QueueCollection:
		dtos := make([]queueItemDTO, 0, len(s.queue))
		for _, item := range s.queue {
			dtos = append(dtos, queueItemFromDomain(item))
		}
		return json.Marshal(dtos)
	case ports.NotificationsCollection:
		dtos := make([]notificationDTO, 0, len(s.notifications))
		for _, n := range s.notifications {
			dtos = append(dtos, notificationFromDomain(n))
		}
		sort.Slice(dtos, func(i, j int) bool { return dtos[i].ID < dtos[j].ID })
		return json.Marshal(dtos)
	case ports.SettingsCollection:
		return json.Marshal(settingsFromDomain(s.settings))
	default:
		return nil, fmt.Errorf("unknown collection %q", key)
	}
}
