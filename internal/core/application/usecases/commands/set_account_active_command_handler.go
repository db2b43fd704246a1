package commands

import (
	"context"
	"time"
)

// SetAccountActiveCommandHandler flips an account's activation flag.
type SetAccountActiveCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewSetAccountActiveCommandHandler creates a handler for account activation changes.
// Requires an AccountUoWFactory for transactional persistence.
func NewSetAccountActiveCommandHandler(uowFactory AccountUoWFactory) SetAccountActiveCommandHandler {
	return SetAccountActiveCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the activation command. Setting the current state again is
// a no-op write, not an error.
func (h SetAccountActiveCommandHandler) Handle(ctx context.Context, command SetAccountActiveCommand) error {
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

	accountRepo := uow.AccountRepository()

	aggregate, err := accountRepo.Get(ctx, command.AccountID())
	if err != nil {
		return err
	}

	if command.Active() {
		aggregate.Activate(time.Now().UTC())
	} else {
		aggregate.Deactivate(time.Now().UTC())
	}

	if err = accountRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
