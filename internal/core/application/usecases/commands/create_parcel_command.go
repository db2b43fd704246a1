package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand represents a request to register a new parcel for
// delivery. The kind is carried as a wire string; handling instructions and
// the temperature window are optional here because their presence rules
// depend on the kind and are enforced by the aggregate.
//
// Example:
//
//	parcelID := kernel.NewUUID()
//	minT, maxT := 2.0, 8.0
//	cmd, err := NewCreateParcelCommand(parcelID, "REFRIGERATED", 4.5, "12 Pier Lane", "", &minT, &maxT)
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	handler := NewCreateParcelCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create parcel: %w", err)
//	}
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID             kernel.UUID
	kind                 string
	weight               float64
	destinationAddress   string
	handlingInstructions string
	minTemperature       *float64
	maxTemperature       *float64

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Only the identifier is checked here; the remaining rules (non-negative
// weight, required address, kind-conditional fields) are enforced by the
// aggregate so violations can be collected together.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	kind string,
	weight float64,
	destinationAddress string,
	handlingInstructions string,
	minTemperature *float64,
	maxTemperature *float64,
) (CreateParcelCommand, error) {
	parcelCommand := CreateParcelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := parcelCommand.setParcelID(parcelID); err != nil {
		return CreateParcelCommand{}, err
	}

	parcelCommand.kind = kind
	parcelCommand.weight = weight
	parcelCommand.destinationAddress = destinationAddress
	parcelCommand.handlingInstructions = handlingInstructions
	parcelCommand.minTemperature = minTemperature
	parcelCommand.maxTemperature = maxTemperature

	return parcelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateParcelCommandIsNotConstructed if validation fails.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Kind returns the parcel kind as a wire string (STANDARD, FRAGILE or REFRIGERATED).
func (c CreateParcelCommand) Kind() string {
	return c.kind
}

// Weight returns the parcel weight in kilograms.
func (c CreateParcelCommand) Weight() float64 {
	return c.weight
}

// DestinationAddress returns the delivery destination.
func (c CreateParcelCommand) DestinationAddress() string {
	return c.destinationAddress
}

// HandlingInstructions returns the fragile-handling text, empty when the
// request carried none.
func (c CreateParcelCommand) HandlingInstructions() string {
	return c.handlingInstructions
}

// MinTemperature returns the lower bound of the requested temperature window,
// nil when the request carried none.
func (c CreateParcelCommand) MinTemperature() *float64 {
	return c.minTemperature
}

// MaxTemperature returns the upper bound of the requested temperature window,
// nil when the request carried none.
func (c CreateParcelCommand) MaxTemperature() *float64 {
	return c.maxTemperature
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}
