package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrMarkParcelDeliveredCommandIsNotConstructed = errors.New(
	"MarkParcelDeliveredCommand must be created via NewMarkParcelDeliveredCommand constructor",
)

// MarkParcelDeliveredCommand represents a request to complete a delivery.
// The parcel moves from InTransit to Delivered and its transporter is
// released back to Available.
type MarkParcelDeliveredCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkParcelDeliveredCommand creates a command to complete a delivery.
func NewMarkParcelDeliveredCommand(parcelID kernel.UUID) (MarkParcelDeliveredCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return MarkParcelDeliveredCommand{}, err
	}

	return MarkParcelDeliveredCommand{
		parcelID: parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkParcelDeliveredCommandIsNotConstructed if validation fails.
func (c MarkParcelDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkParcelDeliveredCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel being delivered.
func (c MarkParcelDeliveredCommand) ParcelID() kernel.UUID {
	return c.parcelID
}
