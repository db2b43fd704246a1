package commands

import (
	"context"
	"time"

	"parcels/internal/core/domain/model/parcel"
)

// CreateParcelCommandHandler handles the business logic for parcel creation.
// New parcels enter the system in Pending status with no transporter.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewCreateParcelCommandHandler creates a handler for parcel creation operations.
// Requires a ParcelUoWFactory for transactional persistence.
func NewCreateParcelCommandHandler(uowFactory ParcelUoWFactory) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel creation command.
// An unknown kind string surfaces as a violation from the aggregate
// constructor, alongside any other broken rules.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	kind, _ := parcel.ParseKind(cmd.Kind())

	aggregate, err := parcel.NewParcel(
		cmd.ParcelID(),
		kind,
		cmd.Weight(),
		cmd.DestinationAddress(),
		cmd.HandlingInstructions(),
		cmd.MinTemperature(),
		cmd.MaxTemperature(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
