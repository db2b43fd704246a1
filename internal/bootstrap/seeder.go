// Package bootstrap seeds the accounts the service needs on first start.
// Seeding is idempotent: logins that already exist are left untouched.
package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/validation"
)

// SeedAccount describes one account to ensure at startup.
type SeedAccount struct {
	Login     string
	Password  string
	Role      string
	Specialty string
}

// Seeder creates the initial accounts through the regular account creation
// flow so seeded data obeys the same rules as API-created accounts.
type Seeder struct {
	handler commands.CreateAccountCommandHandler
	logger  *slog.Logger
}

// NewSeeder creates a seeder backed by the account creation handler.
func NewSeeder(handler commands.CreateAccountCommandHandler, logger *slog.Logger) *Seeder {
	return &Seeder{
		handler: handler,
		logger:  logger.With("component", "bootstrap"),
	}
}

// Seed ensures every given account exists. An already-taken login is an
// expected outcome and skipped; any other failure aborts the run.
func (s *Seeder) Seed(ctx context.Context, accounts []SeedAccount) error {
	for _, seed := range accounts {
		cmd, err := commands.NewCreateAccountCommand(
			kernel.NewUUID(), seed.Login, seed.Password, seed.Role, seed.Specialty,
		)
		if err != nil {
			return err
		}

		err = s.handler.Handle(ctx, cmd)
		switch {
		case err == nil:
			s.logger.InfoContext(ctx, "Seeded account", "login", seed.Login, "role", seed.Role)
		case isAlreadySeeded(err):
			s.logger.DebugContext(ctx, "Account already exists, skipping", "login", seed.Login)
		default:
			return err
		}
	}

	return nil
}

// isAlreadySeeded reports whether the error is solely a taken-login
// violation, meaning a previous run created the account.
func isAlreadySeeded(err error) bool {
	var violations validation.Violations
	if !errors.As(err, &violations) {
		return false
	}

	for _, v := range violations {
		if v.Rule != validation.RuleNotUnique {
			return false
		}
	}
	return len(violations) > 0
}
