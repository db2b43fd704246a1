package commands

import (
	"context"
	"time"

	"parcels/internal/core/domain/model/account"
	"parcels/internal/core/domain/model/parcel"
)

// CancelParcelCommandHandler cancels parcels. Terminal parcels are rejected by
// the aggregate with an invalid transition error. The parcel write is guarded
// on the status observed at read time, so a parcel that moved concurrently
// surfaces a conflict instead of being silently overwritten.
type CancelParcelCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelParcelCommandHandler creates a handler for parcel cancellation.
// Requires a UoWFactory because cancelling an in-transit parcel also releases
// its transporter.
func NewCancelParcelCommandHandler(uowFactory UoWFactory) CancelParcelCommandHandler {
	return CancelParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// A parcel cancelled mid-delivery keeps its transporter reference as a record
// of who was carrying it; only the transporter's availability is reset.
func (h CancelParcelCommandHandler) Handle(ctx context.Context, command CancelParcelCommand) error {
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

	observedStatus := target.Status()
	wasInTransit := observedStatus == parcel.StatusInTransit
	transporterID := target.Transporter()

	if err = target.Cancel(time.Now().UTC()); err != nil {
		return err
	}

	if err = parcelRepo.UpdateIfStatus(ctx, target, observedStatus); err != nil {
		return err
	}

	if wasInTransit && transporterID != nil {
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
