package commands

import (
	"context"
	"time"

	"parcels/internal/core/domain/model/parcel"
)

// UpdateParcelCommandHandler edits the details of a pending parcel. Parcels
// that already entered delivery are rejected by the aggregate with an invalid
// transition error. The write is guarded on the parcel still being Pending so
// an assignment racing with the edit surfaces a conflict instead of being
// overwritten.
type UpdateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
}

// NewUpdateParcelCommandHandler creates a handler for parcel edits.
// Requires a ParcelUoWFactory for transactional persistence.
func NewUpdateParcelCommandHandler(uowFactory ParcelUoWFactory) UpdateParcelCommandHandler {
	return UpdateParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the parcel edit command.
func (h UpdateParcelCommandHandler) Handle(ctx context.Context, command UpdateParcelCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	target, err := parcelRepo.Get(ctx, command.ParcelID())
	if err != nil {
		return err
	}

	if err = target.UpdateDetails(
		command.Weight(),
		command.DestinationAddress(),
		command.HandlingInstructions(),
		command.MinTemperature(),
		command.MaxTemperature(),
		time.Now().UTC(),
	); err != nil {
		return err
	}

	if err = parcelRepo.UpdateIfStatus(ctx, target, parcel.StatusPending); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
