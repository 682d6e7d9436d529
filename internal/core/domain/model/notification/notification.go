// Package notification contains the Notification entity: an immutable,
// append-only event record for a user. The read flag is the only mutable
// field, and marking read is idempotent.
package notification

import (
	"errors"
	"time"

	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/pkg/errs"
	"kurirkan/internal/pkg/guard"
)

var (
	// ErrNotificationIsNotConstructed is returned when using an improperly initialized Notification.
	ErrNotificationIsNotConstructed = errors.New(
		"Notification must be created via NewNotification or RestoreNotification constructor")
	// ErrTitleIsRequired is returned when creating a notification without a title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
	// ErrMessageIsRequired is returned when creating a notification without a message.
	ErrMessageIsRequired = errs.NewValueIsRequiredError("message")
)

// Kind classifies the notification event.
type Kind int

const (
	// UnknownKind represents an invalid or undefined kind.
	UnknownKind Kind = iota
	// OrderUpdate reports an order lifecycle change to the customer.
	OrderUpdate
	// System carries operational announcements.
	System
	// DriverAssignment reports a driver being assigned to the customer's order.
	DriverAssignment
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind:      "unknown",
		OrderUpdate:      "order_update",
		System:           "system",
		DriverAssignment: "driver_assignment",
	}
}

// KindFromString parses a kind from its wire name.
func KindFromString(s string) (Kind, error) {
	for kind, name := range getKindStrings() {
		if name == s && kind != UnknownKind {
			return kind, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidError("notificationType")
}

// String returns the snake_case wire name of the kind.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the kind is one of the defined kinds.
func (k Kind) Validate() error {
	if k != OrderUpdate && k != System && k != DriverAssignment {
		return errs.NewValueIsInvalidError("notificationType")
	}
	return nil
}

// Notification is a user-facing event record emitted as a side effect of
// lifecycle and dispatch transitions.
type Notification struct {
	id      kernel.UUID
	userID  kernel.UUID
	title   string
	message string
	kind    Kind
	// orderID links order-related notifications to their order; nil for system events.
	orderID   *kernel.UUID
	read      bool
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewNotification creates an unread notification.
func NewNotification(
	id kernel.UUID,
	userID kernel.UUID,
	title string,
	message string,
	kind Kind,
	orderID *kernel.UUID,
	now time.Time,
) (*Notification, error) {
	n := &Notification{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setID(id),
		n.setUserID(userID),
		n.setContent(title, message),
		kind.Validate(),
	); err != nil {
		return nil, err
	}

	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return nil, err
		}
		copied := *orderID
		n.orderID = &copied
	}

	n.kind = kind
	n.createdAt = now

	return n, nil
}

// RestoreNotification reconstructs a notification from persistence.
func RestoreNotification(
	id kernel.UUID,
	userID kernel.UUID,
	title string,
	message string,
	kind Kind,
	orderID *kernel.UUID,
	read bool,
	createdAt time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, userID, title, message, kind, orderID, createdAt)
	if err != nil {
		return nil, err
	}
	n.read = read
	return n, nil
}

// Validate ensures the notification was created through a constructor.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID { return n.id }

// UserID returns the recipient's identifier.
func (n *Notification) UserID() kernel.UUID { return n.userID }

// Title returns the short headline.
func (n *Notification) Title() string { return n.title }

// Message returns the body text.
func (n *Notification) Message() string { return n.message }

// Kind returns the event classification.
func (n *Notification) Kind() Kind { return n.kind }

// OrderID returns the linked order id, or nil for system events.
func (n *Notification) OrderID() *kernel.UUID {
	if n.orderID == nil {
		return nil
	}
	copied := *n.orderID
	return &copied
}

// Read reports whether the recipient has seen the notification.
func (n *Notification) Read() bool { return n.read }

// CreatedAt returns the emission time.
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

// MarkRead flips the read flag. Idempotent: marking an already-read
// notification is a no-op.
func (n *Notification) MarkRead() {
	n.read = true
}

// Clone returns a deep copy of the notification for staged mutation.
func (n *Notification) Clone() *Notification {
	copied := *n
	if n.orderID != nil {
		id := *n.orderID
		copied.orderID = &id
	}
	return &copied
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.userID = id
	return nil
}

func (n *Notification) setContent(title, message string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	if message == "" {
		return ErrMessageIsRequired
	}
	n.title = title
	n.message = message
	return nil
}
