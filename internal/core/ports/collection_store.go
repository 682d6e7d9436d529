package ports

import "context"

// Collection keys used with CollectionStore.
const (
	CustomersCollection     = "customers"
	DriversCollection       = "drivers"
	OrdersCollection        = "orders"
	QueueCollection         = "queue"
	NotificationsCollection = "notifications"
	SettingsCollection      = "settings"
)

// CollectionStore is the durable key-value backend. Each key holds one whole
// collection serialized as JSON; a Save replaces the value atomically for
// that key. No cross-key transactionality is assumed.
type CollectionStore interface {
	// Load returns the raw serialized collection for the key.
	// A key that has never been saved yields an empty slice, not an error.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save atomically replaces the value stored under the key.
	Save(ctx context.Context, key string, value []byte) error
}
