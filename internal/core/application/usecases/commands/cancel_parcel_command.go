package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrCancelParcelCommandIsNotConstructed = errors.New(
	"CancelParcelCommand must be created via NewCancelParcelCommand constructor",
)

// CancelParcelCommand represents a request to cancel a parcel. Pending and
// in-transit parcels can be cancelled; a transporter already en route is
// released back to Available.
type CancelParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelParcelCommand creates a command to cancel a parcel.
func NewCancelParcelCommand(parcelID kernel.UUID) (CancelParcelCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return CancelParcelCommand{}, err
	}

	return CancelParcelCommand{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelParcelCommandIsNotConstructed if validation fails.
func (c CancelParcelCommand) Validate() error {
	return c.guard.Validate(ErrCancelParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel being cancelled.
func (c CancelParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}
