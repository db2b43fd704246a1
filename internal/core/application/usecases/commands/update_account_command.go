package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrUpdateAccountCommandIsNotConstructed = errors.New(
	"UpdateAccountCommand must be created via NewUpdateAccountCommand constructor",
)

// UpdateAccountCommand represents a request to change an account's
// credentials. Role and specialty are fixed at creation and cannot be changed
// here. An empty password keeps the stored hash.
type UpdateAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	login     string
	password  string

	guard guard.ConstructorGuard
}

// NewUpdateAccountCommand creates a command to change an account's login and,
// when password is non-empty, its password.
func NewUpdateAccountCommand(
	accountID kernel.UUID,
	login string,
	password string,
) (UpdateAccountCommand, error) {
	if err := accountID.Validate(); err != nil {
		return UpdateAccountCommand{}, err
	}

	return UpdateAccountCommand{
		accountID: accountID,
		login:     login,
		password:  password,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateAccountCommandIsNotConstructed if validation fails.
func (c UpdateAccountCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAccountCommandIsNotConstructed)
}

// AccountID returns the identifier of the account being changed.
func (c UpdateAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Login returns the new login.
func (c UpdateAccountCommand) Login() string {
	return c.login
}

// Password returns the new plaintext password, empty when the stored
// credential should be kept.
func (c UpdateAccountCommand) Password() string {
	return c.password
}
