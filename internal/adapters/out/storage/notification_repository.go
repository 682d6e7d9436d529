package storage

import (
	"context"
	"sort"
	"time"

	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/core/domain/model/notification"
	"kurirkan/internal/pkg/errs"
)

// notificationRepository implements ports.NotificationRepository over the
// staging area.
type notificationRepository struct {
	uow *unitOfWork
}

func (r *notificationRepository) Add(_ context.Context, entity *notification.Notification) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	r.uow.stagedNotifications[entity.ID().String()] = entity.Clone()
	delete(r.uow.removedNotifications, entity.ID().String())
	return nil
}

func (r *notificationRepository) Update(_ context.Context, entity *notification.Notification) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	key := entity.ID().String()
	if _, removed := r.uow.removedNotifications[key]; removed {
		return errs.NewObjectNotFoundError("notification", entity.ID().String())
	}
	if _, staged := r.uow.stagedNotifications[key]; !staged {
		if _, exists := r.uow.state.notifications[key]; !exists {
			return errs.NewObjectNotFoundError("notification", entity.ID().String())
		}
	}

	r.uow.stagedNotifications[key] = entity.Clone()
	return nil
}

func (r *notificationRepository) Get(_ context.Context, id kernel.UUID) (*notification.Notification, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	key := id.String()
	if _, removed := r.uow.removedNotifications[key]; removed {
		return nil, errs.NewObjectNotFoundError("notification", id.String())
	}
	if n, ok := r.uow.stagedNotifications[key]; ok {
		return n.Clone(), nil
	}
	if n, ok := r.uow.state.notifications[key]; ok {
		return n.Clone(), nil
	}
	return nil, errs.NewObjectNotFoundError("notification", id.String())
}

func (r *notificationRepository) GetAllByUser(_ context.Context, userID kernel.UUID) ([]*notification.Notification, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	notifications := make([]*notification.Notification, 0)
	for _, n := range r.all() {
		if n.UserID().IsEqual(userID) {
			notifications = append(notifications, n.Clone())
		}
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt().After(notifications[j].CreatedAt())
	})
	return notifications, nil
}

func (r *notificationRepository) DeleteReadBefore(_ context.Context, cutoff time.Time) (int, error) {
	removed := 0
	for _, n := range r.all() {
		if n.Read() && n.CreatedAt().Before(cutoff) {
			key := n.ID().String()
			delete(r.uow.stagedNotifications, key)
			r.uow.removedNotifications[key] = struct{}{}
			removed++
		}
	}
	return removed, nil
}

// all yields the transaction's view of the notifications without cloning.
func (r *notificationRepository) all() []*notification.Notification {
	notifications := make([]*notification.Notification, 0, len(r.uow.state.notifications))
	for id, n := range r.uow.state.notifications {
		if _, staged := r.uow.stagedNotifications[id]; staged {
			continue
		}
		if _, removed := r.uow.removedNotifications[id]; removed {
			continue
		}
		notifications = append(notifications, n)
	}
	for _, n := range r.uow.stagedNotifications {
		notifications = append(notifications, n)
	}
	return notifications
}
