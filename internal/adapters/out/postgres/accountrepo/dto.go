// Package accountrepo provides data transfer objects and mapping functions for account persistence.
// This package implements the repository pattern for the account domain aggregate, handling
// the conversion between domain entities and database representations.
package accountrepo

import (
	"time"

	"parcels/internal/core/domain/model/account"
	"parcels/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting account aggregates.
// Enum values are stored as their wire strings. The login carries a unique
// index; the composite role/specialty/status index serves the matcher's
// available-transporter lookup.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Login        string    `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string  `gorm:"index:idx_accounts_matching,priority:1"`
	Specialty    *string `gorm:"index:idx_accounts_matching,priority:2"`
	Status       *string `gorm:"index:idx_accounts_matching,priority:3"`
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for account entities.
// Overrides GORM's default naming convention to use "accounts".
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts an account domain aggregate to its database representation.
// Admin accounts carry NULL specialty and status.
func fromDomain(aggregate *account.Account) AccountDTO {
	var specialty, status *string
	if profile := aggregate.Transporter(); profile != nil {
		s := profile.Specialty().String()
		specialty = &s
		st := profile.Status().String()
		status = &st
	}

	return AccountDTO{
		ID:           aggregate.ID().Bytes(),
		Login:        aggregate.Login(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
		Specialty:    specialty,
		Status:       status,
		Active:       aggregate.IsActive(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an account domain aggregate.
// Reconstructs the complete aggregate including the transporter profile using RestoreAccount.
func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	var specialty *account.Specialty
	if dto.Specialty != nil {
		parsed, specialtyErr := account.ParseSpecialty(*dto.Specialty)
		if specialtyErr != nil {
			return nil, specialtyErr
		}
		specialty = &parsed
	}

	var status *account.Status
	if dto.Status != nil {
		parsed, statusErr := account.ParseStatus(*dto.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		status = &parsed
	}

	return account.RestoreAccount(
		id,
		dto.Login,
		dto.PasswordHash,
		role,
		dto.Active,
		specialty,
		status,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
