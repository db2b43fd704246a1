package commands

import (
	"context"
	"time"

	"parcels/internal/core/domain/model/account"
	"parcels/internal/core/domain/model/parcel"
)

// MarkParcelDeliveredCommandHandler completes deliveries. The parcel write is
// guarded on the row still being InTransit, so two workers finishing the same
// parcel cannot both succeed; the loser sees a concurrency conflict.
type MarkParcelDeliveredCommandHandler struct {
	uowFactory UoWFactory
}

// NewMarkParcelDeliveredCommandHandler creates a handler for delivery completion.
// Requires a UoWFactory because completing a delivery updates both the parcel
// and its transporter.
func NewMarkParcelDeliveredCommandHandler(uowFactory UoWFactory) MarkParcelDeliveredCommandHandler {
	return MarkParcelDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery completion command.
// Moves the parcel InTransit to Delivered and releases the assigned
// transporter back to Available within the same transaction.
func (h MarkParcelDeliveredCommandHandler) Handle(ctx context.Context, command MarkParcelDeliveredCommand) error {
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

	transporterID := target.Transporter()

	if err = target.MarkDelivered(time.Now().UTC()); err != nil {
		return err
	}

	if err = parcelRepo.UpdateIfStatus(ctx, target, parcel.StatusInTransit); err != nil {
		return err
	}

	if transporterID != nil {
		if err = uow.AccountRepository().UpdateStatusIf(
			ctx, *transporterID, account.StatusOnDelivery, account.StatusAvailable,
		); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
