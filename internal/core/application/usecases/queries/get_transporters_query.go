package queries

import (
	"errors"
	"fmt"
	"time"

	"parcels/internal/core/domain/model/account"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrGetTransportersQueryIsNotConstructed = errors.New(
	"GetTransportersQuery must be created via NewGetTransportersQuery constructor",
)

// GetTransportersQuery retrieves transporter accounts, optionally narrowed by
// specialty and availability status, with limit/offset paging. Empty filters
// match everything; admin accounts are never included.
type GetTransportersQuery struct {
	specialty *account.Specialty
	status    *account.Status
	limit     int
	offset    int

	guard guard.ConstructorGuard
}

// NewGetTransportersQuery creates a query to retrieve transporters. Filter
// values are wire strings; an empty string disables that filter, an unknown
// value is rejected. Limit and offset must be non-negative; zero disables
// them.
func NewGetTransportersQuery(specialty, status string, limit, offset int) (GetTransportersQuery, error) {
	if limit < 0 {
		return GetTransportersQuery{}, errs.NewValueIsInvalidErrorWithCause("limit",
			fmt.Errorf("%d is negative", limit))
	}
	if offset < 0 {
		return GetTransportersQuery{}, errs.NewValueIsInvalidErrorWithCause("offset",
			fmt.Errorf("%d is negative", offset))
	}

	query := GetTransportersQuery{
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}

	if specialty != "" {
		parsed, err := account.ParseSpecialty(specialty)
		if err != nil {
			return GetTransportersQuery{}, errs.NewValueIsInvalidErrorWithCause("specialty", err)
		}
		query.specialty = &parsed
	}

	if status != "" {
		parsed, err := account.ParseStatus(status)
		if err != nil {
			return GetTransportersQuery{}, errs.NewValueIsInvalidErrorWithCause("status", err)
		}
		query.status = &parsed
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTransportersQueryIsNotConstructed if validation fails.
func (q GetTransportersQuery) Validate() error {
	return q.guard.Validate(ErrGetTransportersQueryIsNotConstructed)
}

// Specialty returns the specialty filter, or nil when not set.
func (q GetTransportersQuery) Specialty() *account.Specialty {
	return q.specialty
}

// Status returns the status filter, or nil when not set.
func (q GetTransportersQuery) Status() *account.Status {
	return q.status
}

// Limit returns the maximum number of rows to return, zero for no limit.
func (q GetTransportersQuery) Limit() int {
	return q.limit
}

// Offset returns the number of rows to skip, zero for none.
func (q GetTransportersQuery) Offset() int {
	return q.offset
}

// GetTransportersQueryResponse represents one transporter in the read model.
// The password hash never leaves the write side.
type GetTransportersQueryResponse struct {
	ID        kernel.UUID
	Login     string
	Specialty string
	Status    string
	Active    bool
	CreatedAt time.Time
}
