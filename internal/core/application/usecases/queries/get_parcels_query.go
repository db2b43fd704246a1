// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"fmt"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrGetParcelsQueryIsNotConstructed = errors.New(
	"GetParcelsQuery must be created via NewGetParcelsQuery constructor",
)

// GetParcelsQuery retrieves parcels, optionally narrowed by kind, status and a
// destination-address substring, with limit/offset paging. Empty filters match
// everything; a zero limit returns every matching row.
//
// Example:
//
//	query, err := NewGetParcelsQuery("REFRIGERATED", "PENDING", "Pier", 20, 0)
//	if err != nil {
//	    return fmt.Errorf("bad filter: %w", err)
//	}
//
//	handler := NewGetParcelsQueryHandler(db)
//	parcels, err := handler.Handle(ctx, query)
type GetParcelsQuery struct {
	kind            *parcel.Kind
	status          *parcel.Status
	addressContains string
	limit           int
	offset          int

	guard guard.ConstructorGuard
}

// NewGetParcelsQuery creates a query to retrieve parcels. Filter values are
// wire strings; an empty string disables that filter, an unknown value is
// rejected so callers never run a query that silently matches nothing.
// Limit and offset must be non-negative; zero disables them.
func NewGetParcelsQuery(kind, status, addressContains string, limit, offset int) (GetParcelsQuery, error) {
	if limit < 0 {
		return GetParcelsQuery{}, errs.NewValueIsInvalidErrorWithCause("limit",
			fmt.Errorf("%d is negative", limit))
	}
	if offset < 0 {
		return GetParcelsQuery{}, errs.NewValueIsInvalidErrorWithCause("offset",
			fmt.Errorf("%d is negative", offset))
	}

	query := GetParcelsQuery{
		addressContains: addressContains,
		limit:           limit,
		offset:          offset,
		guard:           guard.NewConstructorGuard(),
	}

	if kind != "" {
		parsed, err := parcel.ParseKind(kind)
		if err != nil {
			return GetParcelsQuery{}, errs.NewValueIsInvalidErrorWithCause("kind", err)
		}
		query.kind = &parsed
	}

	if status != "" {
		parsed, err := parcel.ParseStatus(status)
		if err != nil {
			return GetParcelsQuery{}, errs.NewValueIsInvalidErrorWithCause("status", err)
		}
		query.status = &parsed
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetParcelsQueryIsNotConstructed if validation fails.
func (q GetParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsQueryIsNotConstructed)
}

// Kind returns the kind filter, or nil when not set.
func (q GetParcelsQuery) Kind() *parcel.Kind {
	return q.kind
}

// Status returns the status filter, or nil when not set.
func (q GetParcelsQuery) Status() *parcel.Status {
	return q.status
}

// AddressContains returns the destination-address substring filter, empty when
// not set.
func (q GetParcelsQuery) AddressContains() string {
	return q.addressContains
}

// Limit returns the maximum number of rows to return, zero for no limit.
func (q GetParcelsQuery) Limit() int {
	return q.limit
}

// Offset returns the number of rows to skip, zero for none.
func (q GetParcelsQuery) Offset() int {
	return q.offset
}

// GetParcelsQueryResponse represents one parcel in the read model. Enum values
// are carried as wire strings and optional fields as pointers, mirroring how
// they are stored.
type GetParcelsQueryResponse struct {
	ID                   kernel.UUID
	Kind                 string
	Weight               float64
	DestinationAddress   string
	Status               string
	TransporterID        *kernel.UUID
	HandlingInstructions string
	MinTemperature       *float64
	MaxTemperature       *float64
	CreatedAt            time.Time
}
