package queries

import (
	"context"
	"strings"

	"parcels/internal/core/domain/model/account"
	"parcels/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTransportersQueryHandler retrieves transporter read models from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetTransportersQueryHandler struct {
	db *gorm.DB
}

// NewGetTransportersQueryHandler creates a handler for transporter retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetTransportersQueryHandler(db *gorm.DB) GetTransportersQueryHandler {
	return GetTransportersQueryHandler{db: db}
}

// Handle executes the query to retrieve transporters matching the filters.
// Results are ordered by creation time with ID as a tie breaker, matching the
// order in which the matcher considers them.
func (h GetTransportersQueryHandler) Handle(
	ctx context.Context,
	query GetTransportersQuery,
) ([]GetTransportersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	conditions := []string{"role = ?"}
	args := []any{account.RoleTransporter.String()}

	if specialty := query.Specialty(); specialty != nil {
		conditions = append(conditions, "specialty = ?")
		args = append(args, specialty.String())
	}
	if status := query.Status(); status != nil {
		conditions = append(conditions, "status = ?")
		args = append(args, status.String())
	}

	sqlQuery := `
		SELECT
			id,
			login,
			specialty,
			status,
			active,
			created_at
		FROM accounts
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY created_at, id`
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

	transporters := make([]GetTransportersQueryResponse, 0)
	for rows.Next() {
		var resp GetTransportersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Login,
			&resp.Specialty,
			&resp.Status,
			&resp.Active,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		transporterID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = transporterID

		transporters = append(transporters, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return transporters, nil
}
