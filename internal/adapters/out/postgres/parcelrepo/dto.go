// Package parcelrepo provides data transfer objects and mapping functions for parcel persistence.
// This package implements the repository pattern for the parcel domain aggregate, handling
// the conversion between domain entities and database representations.
package parcelrepo

import (
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// Enum values are stored as their wire strings; kind-conditional fields are
// nullable. Indexes serve the status-driven assignment lookups and the
// kind/status listing filters.
type ParcelDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind                 string    `gorm:"index:idx_parcels_kind_status,priority:1"`
	Weight               float64
	DestinationAddress   string     `gorm:"index"`
	Status               string     `gorm:"index;index:idx_parcels_kind_status,priority:2"`
	TransporterID        *uuid.UUID `gorm:"type:uuid;index"`
	HandlingInstructions *string
	MinTemperature       *float64
	MaxTemperature       *float64
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName specifies the database table name for parcel entities.
// Overrides GORM's default naming convention to use "parcels".
func (ParcelDTO) TableName() string {
	return "parcels"
}

// fromDomain converts a parcel domain aggregate to its database representation.
// Maps all parcel attributes including the optional transporter assignment and
// kind-conditional fields.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var transporterID *uuid.UUID
	if id := aggregate.Transporter(); id != nil {
		raw := id.Bytes()
		transporterID = &raw
	}

	var instructions *string
	if text := aggregate.HandlingInstructions(); text != "" {
		instructions = &text
	}

	var minTemperature, maxTemperature *float64
	if window := aggregate.Temperature(); window != nil {
		minT := window.Min()
		minTemperature = &minT
		maxT := window.Max()
		maxTemperature = &maxT
	}

	return ParcelDTO{
		ID:                   aggregate.ID().Bytes(),
		Kind:                 aggregate.Kind().String(),
		Weight:               aggregate.Weight(),
		DestinationAddress:   aggregate.DestinationAddress(),
		Status:               aggregate.Status().String(),
		TransporterID:        transporterID,
		HandlingInstructions: instructions,
		MinTemperature:       minTemperature,
		MaxTemperature:       maxTemperature,
		CreatedAt:            aggregate.CreatedAt(),
		UpdatedAt:            aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a parcel domain aggregate.
// Reconstructs the complete aggregate including status, assignment and the
// temperature window using RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	kind, err := parcel.ParseKind(dto.Kind)
	if err != nil {
		return nil, err
	}

	status, err := parcel.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var transporterID *kernel.UUID
	if dto.TransporterID != nil {
		tID, transporterErr := kernel.UUIDFromBytes((*dto.TransporterID)[:])
		if transporterErr != nil {
			return nil, transporterErr
		}
		transporterID = &tID
	}

	instructions := ""
	if dto.HandlingInstructions != nil {
		instructions = *dto.HandlingInstructions
	}

	var temperature *parcel.TemperatureRange
	if dto.MinTemperature != nil && dto.MaxTemperature != nil {
		window, temperatureErr := parcel.NewTemperatureRange(*dto.MinTemperature, *dto.MaxTemperature)
		if temperatureErr != nil {
			return nil, temperatureErr
		}
		temperature = &window
	}

	return parcel.RestoreParcel(
		id,
		kind,
		dto.Weight,
		dto.DestinationAddress,
		status,
		transporterID,
		instructions,
		temperature,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
