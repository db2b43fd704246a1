package commands

import (
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/guard"
)

var ErrAssignParcelCommandIsNotConstructed = errors.New(
	"AssignParcelCommand must be created via NewAssignParcelCommand constructor",
)

// AssignParcelCommand triggers the assignment of an available transporter to a
// pending parcel. The command runs in one of two modes: targeting a specific
// parcel by identifier, or picking the oldest pending parcel in the system.
//
// Example:
//
//	cmd := NewAssignParcelCommand()
//	handler := NewAssignParcelCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoParcelFound):
//	    log.Println("Nothing pending")
//	case errors.Is(err, services.ErrNoEligibleTransporter):
//	    log.Println("No transporter can take it right now")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignParcelCommand struct {
	parcelID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignParcelCommand creates a command that assigns the oldest pending
// parcel to an eligible transporter.
func NewAssignParcelCommand() AssignParcelCommand {
	return AssignParcelCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// NewAssignParcelCommandForParcel creates a command that assigns one specific
// parcel to an eligible transporter.
func NewAssignParcelCommandForParcel(parcelID kernel.UUID) (AssignParcelCommand, error) {
	if err := parcelID.Validate(); err != nil {
		return AssignParcelCommand{}, err
	}

	return AssignParcelCommand{
		parcelID: &parcelID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through a constructor.
// Returns ErrAssignParcelCommandIsNotConstructed if validation fails.
func (c *AssignParcelCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignParcelCommandIsNotConstructed,
	)
}

// ParcelID returns the targeted parcel identifier and true in explicit mode,
// or a zero value and false in oldest-pending mode.
func (c *AssignParcelCommand) ParcelID() (kernel.UUID, bool) {
	if c.parcelID == nil {
		return kernel.UUID{}, false
	}
	return *c.parcelID, true
}
