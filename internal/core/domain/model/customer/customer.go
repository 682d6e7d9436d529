// Package customer contains the Customer entity: a registered user
// identified by a canonical phone number.
package customer

import (
	"errors"
	"time"

	"kurirkan/internal/core/domain/model/kernel"
	"kurirkan/internal/pkg/errs"
	"kurirkan/internal/pkg/guard"
)

var (
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")
	// ErrNameIsRequired is returned when creating a customer without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPasswordHashIsRequired is returned when creating a customer without a credential hash.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("passwordHash")
)

// Address is a labeled saved address.
type Address struct {
	Label   string
	Address string
}

// Customer is a registered user who places orders. The phone number is the
// login identity and is unique across customers; the password hash is a
// bcrypt hash.
type Customer struct {
	id           kernel.UUID
	phone        kernel.Phone
	name         string
	passwordHash string

	addresses      []Address
	paymentMethods []string

	createdAt time.Time
	lastLogin time.Time

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer with no saved addresses or payment methods.
func NewCustomer(
	id kernel.UUID,
	phone kernel.Phone,
	name string,
	passwordHash string,
	now time.Time,
) (*Customer, error) {
	c := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setPhone(phone),
		c.setName(name),
		c.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	c.createdAt = now
	c.lastLogin = now

	return c, nil
}

// RestoreCustomer reconstructs a customer from persistence.
func RestoreCustomer(
	id kernel.UUID,
	phone kernel.Phone,
	name string,
	passwordHash string,
	addresses []Address,
	paymentMethods []string,
	createdAt time.Time,
	lastLogin time.Time,
) (*Customer, error) {
	c := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setPhone(phone),
		c.setName(name),
		c.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	c.addresses = append([]Address(nil), addresses...)
	c.paymentMethods = append([]string(nil), paymentMethods...)
	c.createdAt = createdAt
	c.lastLogin = lastLogin

	return c, nil
}

// Validate ensures the customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID { return c.id }

// Phone returns the customer's canonical phone number.
func (c *Customer) Phone() kernel.Phone { return c.phone }

// Name returns the customer's display name.
func (c *Customer) Name() string { return c.name }

// PasswordHash returns the stored bcrypt credential hash.
func (c *Customer) PasswordHash() string { return c.passwordHash }

// Addresses returns a copy of the saved addresses.
func (c *Customer) Addresses() []Address {
	return append([]Address(nil), c.addresses...)
}

// PaymentMethods returns a copy of the saved payment method labels.
func (c *Customer) PaymentMethods() []string {
	return append([]string(nil), c.paymentMethods...)
}

// CreatedAt returns the registration time.
func (c *Customer) CreatedAt() time.Time { return c.createdAt }

// LastLogin returns the most recent successful login time.
func (c *Customer) LastLogin() time.Time { return c.lastLogin }

// RecordLogin updates the last login time.
func (c *Customer) RecordLogin(at time.Time) {
	c.lastLogin = at
}

// AddAddress appends a saved address.
func (c *Customer) AddAddress(a Address) {
	c.addresses = append(c.addresses, a)
}

// Clone returns a deep copy of the customer for staged mutation.
func (c *Customer) Clone() *Customer {
	copied := *c
	copied.addresses = append([]Address(nil), c.addresses...)
	copied.paymentMethods = append([]string(nil), c.paymentMethods...)
	return &copied
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	c.phone = phone
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Customer) setPasswordHash(hash string) error {
	if hash == "" {
		return ErrPasswordHashIsRequired
	}
	c.passwordHash = hash
	return nil
}
