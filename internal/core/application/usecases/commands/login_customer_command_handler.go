package commands

import (
	"context"
	"errors"
	"time"

	"kurirkan/internal/pkg/auth"
	"kurirkan/internal/pkg/errs"
)

// LoginCustomerResult carries the session issued by a successful login.
type LoginCustomerResult struct {
	CustomerID string
	Name       string
	Phone      string
	Token      string
}

// LoginCustomerCommandHandler verifies customer credentials and issues a
// session token. An unknown phone and a wrong password both produce the
// same AuthenticationFailedError so the response never reveals which
// credential was wrong.
type LoginCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	issuer     auth.TokenIssuer
}

// NewLoginCustomerCommandHandler creates a handler for customer login.
func NewLoginCustomerCommandHandler(
	uowFactory CustomerUoWFactory,
	issuer auth.TokenIssuer,
) LoginCustomerCommandHandler {
	return LoginCustomerCommandHandler{
		uowFactory: uowFactory,
		issuer:     issuer,
	}
}

// Handle processes the login command, updating the customer's last login
// time on success.
func (h LoginCustomerCommandHandler) Handle(
	ctx context.Context,
	cmd LoginCustomerCommand,
) (LoginCustomerResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginCustomerResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoginCustomerResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cust, err := uow.CustomerRepository().GetByPhone(ctx, cmd.Phone())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return LoginCustomerResult{}, errs.NewAuthenticationFailedError()
	}
	if err != nil {
		return LoginCustomerResult{}, err
	}

	if !auth.CheckPasswordHash(cmd.Password(), cust.PasswordHash()) {
		return LoginCustomerResult{}, errs.NewAuthenticationFailedError()
	}

	cust.RecordLogin(time.Now())
	if err = uow.CustomerRepository().Update(ctx, cust); err != nil {
		return LoginCustomerResult{}, err
	}

	token, err := h.issuer.Generate(cust.ID().String(), cust.Name(), "customer", false)
	if err != nil {
		return LoginCustomerResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return LoginCustomerResult{}, err
	}

	return LoginCustomerResult{
		CustomerID: cust.ID().String(),
		Name:       cust.Name(),
		Phone:      cust.Phone().String(),
		Token:      token,
	}, nil
}
