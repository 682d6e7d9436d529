package commands

import (
	"errors"

	"kurirkan/internal/pkg/guard"
)

var ErrLoginDriverCommandIsNotConstructed = errors.New(
	"LoginDriverCommand must be created via NewLoginDriverCommand constructor",
)

// LoginDriverCommand represents a driver authenticating by username and
// password.
type LoginDriverCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

// NewLoginDriverCommand creates a driver login command.
func NewLoginDriverCommand(username, password string) (LoginDriverCommand, error) {
	cmd := LoginDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireText(username, "username"),
		requireText(password, "password"),
	); err != nil {
		return LoginDriverCommand{}, err
	}

	cmd.username = username
	cmd.password = password
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginDriverCommand) Validate() error {
	return c.guard.Validate(ErrLoginDriverCommandIsNotConstructed)
}

// Username returns the login username.
func (c LoginDriverCommand) Username() string { return c.username }

// Password returns the plaintext password to verify.
func (c LoginDriverCommand) Password() string { return c.password }
