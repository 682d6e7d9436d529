package commands

import (
	"context"
	"errors"
	"time"

	"kurirkan/internal/pkg/auth"
	"kurirkan/internal/pkg/errs"
)

// LoginDriverResult carries the session issued by a successful driver login.
type LoginDriverResult struct {
	DriverID string
	Code     string
	Name     string
	IsAdmin  bool
	Token    string
}

// LoginDriverCommandHandler verifies driver credentials and issues a
// session token. Unknown usernames and wrong passwords are
// indistinguishable in the returned error.
type LoginDriverCommandHandler struct {
	uowFactory DriverUoWFactory
	issuer     auth.TokenIssuer
}

// NewLoginDriverCommandHandler creates a handler for driver login.
func NewLoginDriverCommandHandler(
	uowFactory DriverUoWFactory,
	issuer auth.TokenIssuer,
) LoginDriverCommandHandler {
	return LoginDriverCommandHandler{
		uowFactory: uowFactory,
		issuer:     issuer,
	}
}

// Handle processes the login command.
func (h LoginDriverCommandHandler) Handle(
	ctx context.Context,
	cmd LoginDriverCommand,
) (LoginDriverResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginDriverResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoginDriverResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	d, err := uow.DriverRepository().GetByUsername(ctx, cmd.Username())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginDriverResult{}, errs.NewAuthenticationFailedError()
	}
	if err != nil {
		return LoginDriverResult{}, err
	}

	if !auth.CheckPasswordHash(cmd.Password(), d.PasswordHash()) {
		return LoginDriverResult{}, errs.NewAuthenticationFailedError()
	}

	d.Touch(time.Now())
	if err = uow.DriverRepository().Update(ctx, d); err != nil {
		return LoginDriverResult{}, err
	}

	role := "driver"
	if d.IsAdmin() {
		role = "admin"
	}
	token, err := h.issuer.Generate(d.ID().String(), d.Name(), role, d.IsAdmin())
	if err != nil {
		return LoginDriverResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return LoginDriverResult{}, err
	}

	return LoginDriverResult{
		DriverID: d.ID().String(),
		Code:     d.Code(),
		Name:     d.Name(),
		IsAdmin:  d.IsAdmin(),
		Token:    token,
	}, nil
}
