package accountrepo

import (
	"context"
	"errors"
	"time"

	"parcels/internal/core/domain/model/account"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/validation"
	"parcels/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new account to the database.
// A duplicate login that slipped past the uniqueness pre-check (two writers
// racing the same login) surfaces as a not_unique violation, the same shape
// the pre-check produces.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var vs validation.Violations
			vs.Add("login", validation.RuleNotUnique, aggregate.Login())
			return vs
		}
		return errs.NewPersistenceUnavailableError("insert account", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing account to the database, including fields reset to
// their zero values such as a cleared active flag.
func (r *GormAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&AccountDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewPersistenceUnavailableError("update account", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("account", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an account by ID.
func (r *GormAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", id.String())
		}
		return nil, errs.NewPersistenceUnavailableError("get account", err)
	}

	return toDomain(dto)
}

// ExistsByLogin reports whether any account already uses the given login.
func (r *GormAccountRepository) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&AccountDTO{}).
		Where("login = ?", login).
		Count(&count).Error
	if err != nil {
		return false, errs.NewPersistenceUnavailableError("count accounts by login", err)
	}

	return count > 0, nil
}

// GetAvailableTransporters retrieves active transporters with the given
// specialty in Available status, ordered by creation time then ID so the
// matcher's first-come selection is stable.
func (r *GormAccountRepository) GetAvailableTransporters(
	ctx context.Context,
	specialty account.Specialty,
) ([]*account.Account, error) {
	if err := specialty.Validate(); err != nil {
		return nil, err
	}

	var dtos []AccountDTO
	err := r.db.WithContext(ctx).
		Where("role = ? AND active = ? AND specialty = ? AND status = ?",
			account.RoleTransporter.String(), true, specialty.String(), account.StatusAvailable.String()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewPersistenceUnavailableError("get available transporters", err)
	}

	transporters := make([]*account.Account, 0, len(dtos))
	for _, dto := range dtos {
		a, toErr := toDomain(dto)
		if toErr != nil {
			return nil, toErr
		}
		transporters = append(transporters, a)
	}

	return transporters, nil
}

// UpdateStatusIf flips a transporter's status in a single conditional write.
// A write that matches no row means the stored status changed since it was
// read; the caller gets a concurrency conflict and can retry on fresh state.
func (r *GormAccountRepository) UpdateStatusIf(
	ctx context.Context,
	id kernel.UUID,
	from account.Status,
	to account.Status,
) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&AccountDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), from.String()).
		Updates(map[string]any{
			"status":     to.String(),
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return errs.NewPersistenceUnavailableError("update transporter status", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError("transporter", id.String())
	}

	return nil
}
