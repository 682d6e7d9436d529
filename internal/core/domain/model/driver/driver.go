package driver

import (
	"errors"
	"time"

	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/pkg/errs"
	"kurirkan/internal/pkg/guard"
)

const (
	defaultRating = 5.0
	minRating     = 0.0
	maxRating     = 5.0
)

// Domain errors for driver operations.
var (
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")
	// ErrCodeIsRequired is returned when creating a driver without a display code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("driverCode")
	// ErrNameIsRequired is returned when creating a driver without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrUsernameIsRequired is returned when creating a driver without a login username.
	ErrUsernameIsRequired = errs.NewValueIsRequiredError("username")
	// ErrPasswordHashIsRequired is returned when creating a driver without a credential hash.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
	// ErrDriverIsBusy is returned when an operation conflicts with an active order.
	ErrDriverIsBusy = errs.NewValueIsInvalidError("driver has an active order")
	// ErrDriverHasNoOrder is returned when releasing a driver without an active order.
	ErrDriverHasNoOrder = errs.NewValueIsInvalidError("driver has no active order")
)

// Driver is the aggregate root for a dispatchable agent.
//
// Invariants:
//   - a driver with a current order always has Busy status; Busy is never
//     set without a current order
//   - at most one active order per driver
//   - todayOrders and totalOrders only grow, and only on assignment
//   - rating stays within [0, 5]
//
// Duty toggling (on_duty/off_duty) never touches the current order; taking
// and releasing orders happens only through the dispatch transaction.
type Driver struct {
	id   kernel.UUID
	code string

	name     string
	phone    kernel.Phone
	username string
	// passwordHash is a bcrypt hash, never a plaintext or checksum.
	passwordHash string
	isAdmin      bool

	status       DutyStatus
	currentOrder *kernel.UUID

	todayOrders int
	totalOrders int
	rating      float64
	earnings    int64

	createdAt        time.Time
	lastStatusUpdate time.Time

	guard guard.ConstructorGuard
}

// NewDriver creates a driver in OffDuty status with zeroed counters and the
// default rating. The password hash must already be derived by the caller.
func NewDriver(
	id kernel.UUID,
	code string,
	name string,
	phone kernel.Phone,
	username string,
	passwordHash string,
	isAdmin bool,
	now time.Time,
) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setCode(code),
		d.setName(name),
		d.setPhone(phone),
		d.setCredentials(username, passwordHash),
	); err != nil {
		return nil, err
	}

	d.isAdmin = isAdmin
	d.status = OffDuty
	d.rating = defaultRating
	d.createdAt = now
	d.lastStatusUpdate = now

	return d, nil
}

// RestoreDriver reconstructs a driver from persistence.
func RestoreDriver(
	id kernel.UUID,
	code string,
	name string,
	phone kernel.Phone,
	username string,
	passwordHash string,
	isAdmin bool,
	status DutyStatus,
	currentOrder *kernel.UUID,
	todayOrders int,
	totalOrders int,
	rating float64,
	earnings int64,
	createdAt time.Time,
	lastStatusUpdate time.Time,
) (*Driver, error) {
	d := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setCode(code),
		d.setName(name),
		d.setPhone(phone),
		d.setCredentials(username, passwordHash),
		status.Validate(),
		d.setRating(rating),
	); err != nil {
		return nil, err
	}

	if currentOrder != nil {
		if err := currentOrder.Validate(); err != nil {
			return nil, err
		}
		copied := *currentOrder
		d.currentOrder = &copied
	}

	d.isAdmin = isAdmin
	d.status = status
	d.todayOrders = todayOrders
	d.totalOrders = totalOrders
	d.earnings = earnings
	d.createdAt = createdAt
	d.lastStatusUpdate = lastStatusUpdate

	return d, nil
}

// Validate ensures the driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by identifier.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID { return d.id }

// Code returns the human-readable driver code (e.g. "DRV-001").
func (d *Driver) Code() string { return d.code }

// Name returns the driver's display name.
func (d *Driver) Name() string { return d.name }

// Phone returns the driver's canonical phone number.
func (d *Driver) Phone() kernel.Phone { return d.phone }

// Username returns the driver's login username.
func (d *Driver) Username() string { return d.username }

// PasswordHash returns the stored bcrypt credential hash.
func (d *Driver) PasswordHash() string { return d.passwordHash }

// IsAdmin reports whether the driver has administrative rights.
func (d *Driver) IsAdmin() bool { return d.isAdmin }

// Status returns the driver's current duty status.
func (d *Driver) Status() DutyStatus { return d.status }

// CurrentOrder returns the active order id, or nil when free.
func (d *Driver) CurrentOrder() *kernel.UUID {
	if d.currentOrder == nil {
		return nil
	}
	copied := *d.currentOrder
	return &copied
}

// TodayOrders returns the number of orders assigned today.
func (d *Driver) TodayOrders() int { return d.todayOrders }

// TotalOrders returns the number of orders assigned overall.
func (d *Driver) TotalOrders() int { return d.totalOrders }

// Rating returns the driver's rating in [0, 5].
func (d *Driver) Rating() float64 { return d.rating }

// Earnings returns the accumulated earnings from delivered orders.
func (d *Driver) Earnings() int64 { return d.earnings }

// CreatedAt returns the creation time.
func (d *Driver) CreatedAt() time.Time { return d.createdAt }

// LastStatusUpdate returns the time of the last state change.
func (d *Driver) LastStatusUpdate() time.Time { return d.lastStatusUpdate }

// SetDuty toggles the driver between OnDuty and OffDuty.
//
// Busy cannot be requested directly: it is set only by TakeOrder. A driver
// with an active order cannot change duty until the order completes.
func (d *Driver) SetDuty(status DutyStatus, at time.Time) error {
	if status != OnDuty && status != OffDuty {
		return errs.NewValueIsInvalidError("driverStatus")
	}
	if d.currentOrder != nil {
		return ErrDriverIsBusy
	}

	d.status = status
	d.lastStatusUpdate = at
	return nil
}

// TakeOrder attaches an active order to the driver: status becomes Busy and
// both assignment counters are incremented. Fails with ErrDriverIsBusy if an
// order is already in progress.
//
// Duty is deliberately not checked: dispatch may hand an order to an
// off-duty driver, matching the admin-driven assignment flow.
func (d *Driver) TakeOrder(orderID kernel.UUID, at time.Time) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if d.currentOrder != nil {
		return ErrDriverIsBusy
	}

	d.currentOrder = &orderID
	d.status = Busy
	d.todayOrders++
	d.totalOrders++
	d.lastStatusUpdate = at
	return nil
}

// Release clears the active order once it reaches a terminal status and
// returns the driver to OnDuty. Earnings from a delivered order are added;
// a cancelled order releases with zero earned.
func (d *Driver) Release(earned int64, at time.Time) error {
	if d.currentOrder == nil {
		return ErrDriverHasNoOrder
	}

	d.currentOrder = nil
	d.status = OnDuty
	d.earnings += earned
	d.lastStatusUpdate = at
	return nil
}

// SetName updates the driver's display name.
func (d *Driver) SetName(name string, at time.Time) error {
	if err := d.setName(name); err != nil {
		return err
	}
	d.lastStatusUpdate = at
	return nil
}

// SetPhone updates the driver's phone number.
func (d *Driver) SetPhone(phone kernel.Phone, at time.Time) error {
	if err := d.setPhone(phone); err != nil {
		return err
	}
	d.lastStatusUpdate = at
	return nil
}

// SetRating updates the driver's rating, bounded to [0, 5].
func (d *Driver) SetRating(rating float64, at time.Time) error {
	if err := d.setRating(rating); err != nil {
		return err
	}
	d.lastStatusUpdate = at
	return nil
}

// SetPasswordHash replaces the stored credential hash.
func (d *Driver) SetPasswordHash(hash string, at time.Time) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	d.passwordHash = hash
	d.lastStatusUpdate = at
	return nil
}

// Touch records a state change time without other mutation (e.g. on login).
func (d *Driver) Touch(at time.Time) {
	d.lastStatusUpdate = at
}

// Clone returns a deep copy of the driver for staged mutation.
func (d *Driver) Clone() *Driver {
	copied := *d
	if d.currentOrder != nil {
		id := *d.currentOrder
		copied.currentOrder = &id
	}
	return &copied
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setCode(code string) error {
	if code == "" {
		return ErrCodeIsRequired
	}
	d.code = code
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	d.phone = phone
	return nil
}

func (d *Driver) setCredentials(username, passwordHash string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}
	if passwordHash == "" {
		return ErrPasswordHashIsRequired
	}
	d.username = username
	d.passwordHash = passwordHash
	return nil
}

func (d *Driver) setRating(rating float64) error {
	if rating < minRating || rating > maxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, minRating, maxRating)
	}
	d.rating = rating
	return nil
}
