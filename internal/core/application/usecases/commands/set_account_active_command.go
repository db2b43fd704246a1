package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrSetAccountActiveCommandIsNotConstructed = errors.New(
	"SetAccountActiveCommand must be created via NewSetAccountActiveCommand constructor",
)

// SetAccountActiveCommand represents a request to activate or deactivate an
// account. Accounts are never hard-deleted; a deactivated transporter keeps
// its stored state but is skipped by the assignment matcher.
type SetAccountActiveCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	active    bool

	guard guard.ConstructorGuard
}

// NewSetAccountActiveCommand creates a command to change an account's
// activation flag.
func NewSetAccountActiveCommand(accountID kernel.UUID, active bool) (SetAccountActiveCommand, error) {
	if err := accountID.Validate(); err != nil {
		return SetAccountActiveCommand{}, err
	}

	return SetAccountActiveCommand{
		accountID: accountID,
		active:    active,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetAccountActiveCommandIsNotConstructed if validation fails.
func (c SetAccountActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetAccountActiveCommandIsNotConstructed)
}

// AccountID returns the identifier of the account being changed.
func (c SetAccountActiveCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Active returns the requested activation state.
func (c SetAccountActiveCommand) Active() bool {
	return c.active
}
