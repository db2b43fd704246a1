package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrCreateAccountCommandIsNotConstructed = errors.New(
	"CreateAccountCommand must be created via NewCreateAccountCommand constructor",
)

// CreateAccountCommand represents a request to register a new account, either
// an admin or a transporter. Role and specialty are carried as wire strings;
// the domain layer parses them and reports every broken rule at once, so a
// request with several bad fields produces a full violation list rather than
// the first failure.
//
// Example:
//
//	accountID := kernel.NewUUID()
//	cmd, err := NewCreateAccountCommand(accountID, "t.perez", "s3cret", "TRANSPORTER", "FRAGILE")
//	if err != nil {
//	    return fmt.Errorf("invalid account data: %w", err)
//	}
//
//	handler := NewCreateAccountCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create account: %w", err)
//	}
type CreateAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	login     string
	password  string
	role      string
	specialty string

	guard guard.ConstructorGuard
}

// NewCreateAccountCommand creates a command to register a new account.
// Only the identifier is checked here; field rules (required login and
// password, role values, specialty presence) are enforced by the aggregate
// so violations can be collected together.
func NewCreateAccountCommand(
	accountID kernel.UUID,
	login string,
	password string,
	role string,
	specialty string,
) (CreateAccountCommand, error) {
	accountCommand := CreateAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := accountCommand.setAccountID(accountID); err != nil {
		return CreateAccountCommand{}, err
	}

	accountCommand.login = login
	accountCommand.password = password
	accountCommand.role = role
	accountCommand.specialty = specialty

	return accountCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateAccountCommandIsNotConstructed if validation fails.
func (c CreateAccountCommand) Validate() error {
	return c.guard.Validate(ErrCreateAccountCommandIsNotConstructed)
}

// AccountID returns the unique identifier for the account.
func (c CreateAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Login returns the requested login.
func (c CreateAccountCommand) Login() string {
	return c.login
}

// Password returns the plaintext password; it is hashed before the aggregate
// ever sees it.
func (c CreateAccountCommand) Password() string {
	return c.password
}

// Role returns the requested role as a wire string (ADMIN or TRANSPORTER).
func (c CreateAccountCommand) Role() string {
	return c.role
}

// Specialty returns the requested specialty as a wire string, empty when the
// request carried none.
func (c CreateAccountCommand) Specialty() string {
	return c.specialty
}

func (c *CreateAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}
