package commands

import (
	"context"

	"parcels/internal/core/domain/model/account"
	"parcels/internal/core/domain/model/parcel"
)

// DeleteParcelCommandHandler removes parcels permanently. A parcel deleted
// while in transit first releases its transporter back to Available in the
// same transaction, so no transporter stays stuck carrying a record that no
// longer exists.
type DeleteParcelCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteParcelCommandHandler creates a handler for parcel deletion.
// Requires a UoWFactory because deleting an in-transit parcel also releases
// its transporter.
func NewDeleteParcelCommandHandler(uowFactory UoWFactory) DeleteParcelCommandHandler {
	return DeleteParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
func (h DeleteParcelCommandHandler) Handle(ctx context.Context, command DeleteParcelCommand) error {
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

	wasInTransit := target.Status() == parcel.StatusInTransit
	transporterID := target.Transporter()

	if wasInTransit && transporterID != nil {
		if err = uow.AccountRepository().UpdateStatusIf(
			ctx, *transporterID, account.StatusOnDelivery, account.StatusAvailable,
		); err != nil {
			return err
		}
	}

	if err = parcelRepo.Delete(ctx, target.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
