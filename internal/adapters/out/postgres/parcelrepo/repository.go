package parcelrepo

import (
	"context"
	"errors"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParcelRepository implements ParcelRepository using GORM.
type GormParcelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormParcelRepository creates a new GORM parcel repository.
func NewGormParcelRepository(db *gorm.DB, tracker aggregateTracker) *GormParcelRepository {
	return &GormParcelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new parcel to the database.
func (r *GormParcelRepository) Add(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceUnavailableError("insert parcel", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing parcel to the database unconditionally. Lifecycle
// transitions should go through UpdateIfStatus instead so concurrent writers
// cannot overwrite each other.
func (r *GormParcelRepository) Update(ctx context.Context, aggregate *parcel.Parcel) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewPersistenceUnavailableError("update parcel", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("parcel", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a parcel row permanently.
func (r *GormParcelRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ParcelDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return errs.NewPersistenceUnavailableError("delete parcel", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("parcel", id.String())
	}

	return nil
}

// Get retrieves a parcel by ID.
func (r *GormParcelRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ParcelDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", id.String())
		}
		return nil, errs.NewPersistenceUnavailableError("get parcel", err)
	}

	return toDomain(dto)
}

// GetFirstPending retrieves the oldest parcel still in Pending status, with ID
// as the tie breaker on equal creation times.
func (r *GormParcelRepository) GetFirstPending(ctx context.Context) (*parcel.Parcel, error) {
	var dto ParcelDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", parcel.StatusPending.String()).
		Order("created_at, id").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("parcel", "first pending")
		}
		return nil, errs.NewPersistenceUnavailableError("get first pending parcel", err)
	}

	return toDomain(dto)
}

// UpdateIfStatus persists the aggregate only while the stored row still holds
// the expected status. A write that matches no row means another writer moved
// the parcel first; the caller gets a concurrency conflict and the row is
// left as the winner wrote it.
func (r *GormParcelRepository) UpdateIfStatus(
	ctx context.Context,
	aggregate *parcel.Parcel,
	expected parcel.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expected.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ParcelDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewPersistenceUnavailableError("update parcel status", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("parcel", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
