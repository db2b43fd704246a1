package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrDeleteParcelCommandIsNotConstructed = errors.New(
	"DeleteParcelCommand must be created via NewDeleteParcelCommand constructor",
)

// DeleteParcelCommand represents a request to remove a parcel permanently.
// Unlike cancellation, deletion erases the record; a transporter carrying the
// parcel is released back to Available first.
type DeleteParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteParcelCommand creates a command to delete a parcel.
func NewDeleteParcelCommand(parcelID kernel.UUID) (DeleteParcelCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return DeleteParcelCommand{}, err
	}

	return DeleteParcelCommand{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeleteParcelCommandIsNotConstructed if validation fails.
func (c DeleteParcelCommand) Validate() error {
	return c.guard.Validate(ErrDeleteParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel being deleted.
func (c DeleteParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}
