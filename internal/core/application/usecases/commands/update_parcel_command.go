package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrUpdateParcelCommandIsNotConstructed = errors.New(
	"UpdateParcelCommand must be created via NewUpdateParcelCommand constructor",
)

// UpdateParcelCommand represents a request to edit a pending parcel's details.
// The kind is immutable after creation, so it is not part of the command; the
// kind-conditional rules are re-checked by the aggregate against the stored
// kind.
type UpdateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID             kernel.UUID
	weight               float64
	destinationAddress   string
	handlingInstructions string
	minTemperature       *float64
	maxTemperature       *float64

	guard guard.ConstructorGuard
}

// NewUpdateParcelCommand creates a command to edit a parcel.
// Only the identifier is checked here; field rules are enforced by the
// aggregate so violations can be collected together.
func NewUpdateParcelCommand(
	parcelID kernel.UUID,
	weight float64,
	destinationAddress string,
	handlingInstructions string,
	minTemperature *float64,
	maxTemperature *float64,
) (UpdateParcelCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return UpdateParcelCommand{}, err
	}

	return UpdateParcelCommand{
		parcelID:             parcelID,
		weight:               weight,
		destinationAddress:   destinationAddress,
		handlingInstructions: handlingInstructions,
		minTemperature:       minTemperature,
		maxTemperature:       maxTemperature,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateParcelCommandIsNotConstructed if validation fails.
func (c UpdateParcelCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier of the parcel being edited.
func (c UpdateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Weight returns the new weight in kilograms.
func (c UpdateParcelCommand) Weight() float64 {
	return c.weight
}

// DestinationAddress returns the new delivery destination.
func (c UpdateParcelCommand) DestinationAddress() string {
	return c.destinationAddress
}

// HandlingInstructions returns the new fragile-handling text, empty when the
// request carried none.
func (c UpdateParcelCommand) HandlingInstructions() string {
	return c.handlingInstructions
}

// MinTemperature returns the lower bound of the new temperature window, nil
// when the request carried none.
func (c UpdateParcelCommand) MinTemperature() *float64 {
	return c.minTemperature
}

// MaxTemperature returns the upper bound of the new temperature window, nil
// when the request carried none.
func (c UpdateParcelCommand) MaxTemperature() *float64 {
	return c.maxTemperature
}
