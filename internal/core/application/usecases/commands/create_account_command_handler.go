package commands

import (
	"context"
	"errors"
	"time"

	"parcels/internal/core/domain/model/account"
	"parcels/internal/core/domain/validation"
	"parcels/internal/pkg/password"
)

// CreateAccountCommandHandler handles the business logic for account creation.
// Hashes the password, checks login uniqueness against storage, and persists
// the new aggregate. Violations from the uniqueness check and from the
// aggregate constructor are merged into a single list.
//
// Example:
//
//	handler := NewCreateAccountCommandHandler(uowFactory)
//	cmd, _ := NewCreateAccountCommand(kernel.NewUUID(), "admin", "s3cret", "ADMIN", "")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    var vs validation.Violations
//	    if errors.As(err, &vs) {
//	        // report every broken rule to the caller
//	    }
//	    return err
//	}
type CreateAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewCreateAccountCommandHandler creates a handler for account creation operations.
// Requires an AccountUoWFactory for transactional persistence.
func NewCreateAccountCommandHandler(uowFactory AccountUoWFactory) CreateAccountCommandHandler {
	return CreateAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the account creation command.
// Parse failures on role and specialty surface as violations from the
// aggregate constructor, alongside any other broken rules, so the caller
// receives the complete list in one response.
func (h CreateAccountCommandHandler) Handle(ctx context.Context, cmd CreateAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	role, _ := account.ParseRole(cmd.Role())

	var specialty *account.Specialty
	if cmd.Specialty() != "" {
		parsed, _ := account.ParseSpecialty(cmd.Specialty())
		specialty = &parsed
	}

	passwordHash := ""
	if cmd.Password() != "" {
		hash, err := password.Hash(cmd.Password(), password.DefaultCost)
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

	var vs validation.Violations
	if err := validation.CheckUniqueLogin(ctx, accountRepo, cmd.Login(), &vs); err != nil {
		return err
	}

	aggregate, err := account.NewAccount(
		cmd.AccountID(),
		cmd.Login(),
		passwordHash,
		role,
		specialty,
		time.Now().UTC(),
	)
	if err != nil {
		var constructorViolations validation.Violations
		if errors.As(err, &constructorViolations) {
			vs = append(vs, constructorViolations...)
			return vs.Err()
		}
		return err
	}

	if err = vs.Err(); err != nil {
		return err
	}

	if err = accountRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
