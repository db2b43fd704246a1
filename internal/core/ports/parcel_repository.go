package ports

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	// The parcel must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetFirstPending retrieves the oldest parcel still in Pending status,
	// ordered by creation time with ID as a tie breaker.
	// Used by assignment workflows to pick the next parcel to dispatch.
	GetFirstPending(ctx context.Context) (*parcel.Parcel, error)

	// UpdateIfStatus persists the aggregate only if the stored row is still
	// in the expected status. If the row moved on a concurrency conflict
	// error is returned and no state changes.
	UpdateIfStatus(ctx context.Context, aggregate *parcel.Parcel, expected parcel.Status) error

	// Delete removes a parcel permanently. Deleting an unknown ID is an
	// object-not-found error.
	Delete(ctx context.Context, id kernel.UUID) error
}
