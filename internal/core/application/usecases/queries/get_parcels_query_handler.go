package queries

import (
	"context"
	"database/sql"
	"strings"

	"parcels/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetParcelsQueryHandler retrieves parcel read models from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetParcelsQueryHandler creates a handler for parcel retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetParcelsQueryHandler(db *gorm.DB) GetParcelsQueryHandler {
	return GetParcelsQueryHandler{db: db}
}

// Handle executes the query to retrieve parcels matching the filters.
// Results are ordered by creation time with ID as a tie breaker, the same
// ordering the assignment flow uses.
func (h GetParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetParcelsQuery,
) ([]GetParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if kind := query.Kind(); kind != nil {
		conditions = append(conditions, "kind = ?")
		args = append(args, kind.String())
	}
	if status := query.Status(); status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, status.String())
	}
	if query.AddressContains() != "" {
		conditions = append(conditions, "destination_address ILIKE ?")
		args = append(args, "%"+query.AddressContains()+"%")
	}

	sqlQuery := `
		SELECT
			id,
			kind,
			weight,
			destination_address,
			status,
			transporter_id,
			handling_instructions,
			min_temperature,
			max_temperature,
			created_at
		FROM parcels`
	if len(conditions) > 0 {
		sqlQuery += "\n\t\tWHERE " + strings.Join(conditions, " AND ")
	}
	sqlQuery += "\n\t\tORDER BY created_at, id"
	if query.Limit() > 0 {
		sqlQuery += "\n\t\tLIMIT ?"
		args = append(args, query.Limit())
	}
	if query.Offset() > 0 {
		sqlQuery += "\n\t\tOFFSET ?"
		args = append(args, query.Offset())
	}

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	parcels := make([]GetParcelsQueryResponse, 0)
	for rows.Next() {
		var resp GetParcelsQueryResponse
		var id uuid.UUID
		var transporterID uuid.NullUUID
		var instructions sql.NullString
		var minTemperature, maxTemperature sql.NullFloat64

		err = rows.Scan(
			&id,
			&resp.Kind,
			&resp.Weight,
			&resp.DestinationAddress,
			&resp.Status,
			&transporterID,
			&instructions,
			&minTemperature,
			&maxTemperature,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = parcelID

		if transporterID.Valid {
			tid, tidErr := kernel.UUIDFromBytes(transporterID.UUID[:])
			if tidErr != nil {
				return nil, tidErr
			}
			resp.TransporterID = &tid
		}
		if instructions.Valid {
			resp.HandlingInstructions = instructions.String
		}
		if minTemperature.Valid {
			resp.MinTemperature = &minTemperature.Float64
		}
		if maxTemperature.Valid {
			resp.MaxTemperature = &maxTemperature.Float64
		}

		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
