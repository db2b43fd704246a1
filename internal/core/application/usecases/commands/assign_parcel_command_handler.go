package commands

import (
	"context"
	"errors"
	"time"

	"parcels/internal/core/domain/model/account"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/errs"
)

var ErrNoParcelFound = errors.New("no pending parcel found")

// maxAssignAttempts bounds how many times an assignment is retried after
// losing a claim race to a concurrent worker.
const maxAssignAttempts = 3

// AssignParcelCommandHandler orchestrates the transporter assignment process
// with a claim-then-commit protocol:
//
//  1. load the target parcel (explicit or oldest pending) and the available
//     transporters matching its kind,
//  2. pick the winner deterministically via TransporterMatcher,
//  3. claim the transporter by conditionally flipping Available to OnDelivery,
//  4. commit the parcel transition guarded on it still being Pending; if that
//     write loses, release the claim before reporting the conflict.
//
// A lost claim or a lost parcel commit surfaces as a concurrency conflict and
// the whole attempt is retried against fresh state, at most maxAssignAttempts
// times.
type AssignParcelCommandHandler struct {
	uowFactory UoWFactory
}

// NewAssignParcelCommandHandler creates a handler for transporter assignment.
// Requires a UoWFactory for coordinating transactional updates across both
// repositories.
func NewAssignParcelCommandHandler(uowFactory UoWFactory) AssignParcelCommandHandler {
	return AssignParcelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command, retrying on concurrency conflicts.
// Returns ErrNoParcelFound when nothing is pending in oldest-pending mode and
// services.ErrNoEligibleTransporter when no transporter can take the parcel;
// both are expected outcomes rather than failures.
func (h AssignParcelCommandHandler) Handle(ctx context.Context, command AssignParcelCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	var lastErr error
	for attempt := 0; attempt < maxAssignAttempts; attempt++ {
		err := h.assignOnce(ctx, command)
		if !errors.Is(err, errs.ErrConcurrencyConflict) {
			return err
		}
		lastErr = err
	}

	return lastErr
}

func (h AssignParcelCommandHandler) assignOnce(ctx context.Context, command AssignParcelCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	accountRepo := uow.AccountRepository()
	parcelRepo := uow.ParcelRepository()

	var target *parcel.Parcel
	var err error
	if parcelID, explicit := command.ParcelID(); explicit {
		target, err = parcelRepo.Get(ctx, parcelID)
	} else {
		target, err = parcelRepo.GetFirstPending(ctx)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrNoParcelFound
		}
	}
	if err != nil {
		return err
	}

	specialty, err := services.SpecialtyForKind(target.Kind())
	if err != nil {
		return err
	}

	candidates, err := accountRepo.GetAvailableTransporters(ctx, specialty)
	if err != nil {
		return err
	}

	transporter, err := services.NewTransporterMatcher().FindEligible(target, candidates)
	if err != nil {
		return err
	}

	if err = accountRepo.UpdateStatusIf(
		ctx, transporter.ID(), account.StatusAvailable, account.StatusOnDelivery,
	); err != nil {
		return err
	}

	if err = target.Assign(transporter.ID(), time.Now().UTC()); err != nil {
		return h.releaseClaim(ctx, accountRepo, transporter, err)
	}

	if err = parcelRepo.UpdateIfStatus(ctx, target, parcel.StatusPending); err != nil {
		return h.releaseClaim(ctx, accountRepo, transporter, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// releaseClaim undoes a successful transporter claim after the parcel side of
// the assignment failed, then returns the original failure. A release that
// itself fails is joined so neither error is lost.
func (h AssignParcelCommandHandler) releaseClaim(
	ctx context.Context,
	accountRepo ports.AccountRepository,
	transporter *account.Account,
	cause error,
) error {
	if releaseErr := accountRepo.UpdateStatusIf(
		ctx, transporter.ID(), account.StatusOnDelivery, account.StatusAvailable,
	); releaseErr != nil {
		return errors.Join(cause, releaseErr)
	}
	return cause
}
