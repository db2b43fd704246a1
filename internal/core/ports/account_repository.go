// Package ports defines repository interfaces for the parcel delivery domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"parcels/internal/core/domain/model/account"
	"parcels/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
// Covers both administrators and transporters; transporter-specific reads
// filter on the embedded profile.
type AccountRepository interface {
	// Add persists a new account aggregate to storage.
	// The account must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account aggregate.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// ExistsByLogin reports whether any account already uses the given login.
	// Used by account creation to enforce login uniqueness.
	ExistsByLogin(ctx context.Context, login string) (bool, error)

	// GetAvailableTransporters retrieves active transporters with the given
	// specialty that are currently in Available status, ordered by creation
	// time (earliest first) with ID as a tie breaker.
	GetAvailableTransporters(ctx context.Context, specialty account.Specialty) ([]*account.Account, error)

	// UpdateStatusIf flips a transporter's status from one value to another
	// in a single conditional write. If the stored status no longer matches
	// the expected value the write affects nothing and a concurrency
	// conflict error is returned, letting callers retry against fresh state.
	UpdateStatusIf(ctx context.Context, id kernel.UUID, from account.Status, to account.Status) error
}
