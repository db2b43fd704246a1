package commands

import (
	"context"
	"time"

	"parcels/internal/core/domain/validation"
	"parcels/internal/pkg/password"
)

// UpdateAccountCommandHandler changes an account's login and optionally its
// password. Login uniqueness is re-checked only when the login actually
// changes, so saving an account under its own login never trips the check.
type UpdateAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewUpdateAccountCommandHandler creates a handler for credential changes.
// Requires an AccountUoWFactory for transactional persistence.
func NewUpdateAccountCommandHandler(uowFactory AccountUoWFactory) UpdateAccountCommandHandler {
	return UpdateAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the credential change command.
func (h UpdateAccountCommandHandler) Handle(ctx context.Context, command UpdateAccountCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	passwordHash := ""
	if command.Password() != "" {
		hash, err := password.Hash(command.Password(), password.DefaultCost)
		if err != nil {
			return err
		}
		passwordHash = hash
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

	now := time.Now().UTC()

	if command.Login() != aggregate.Login() {
		var vs validation.Violations
		if err = validation.CheckUniqueLogin(ctx, accountRepo, command.Login(), &vs); err != nil {
			return err
		}
		if err = vs.Err(); err != nil {
			return err
		}
		if err = aggregate.ChangeLogin(command.Login(), now); err != nil {
			return err
		}
	}

	if passwordHash != "" {
		if err = aggregate.ChangePasswordHash(passwordHash, now); err != nil {
			return err
		}
	}

	if err = accountRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
