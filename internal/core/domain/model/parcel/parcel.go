package parcel

import (
	"errors"
	"strings"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/validation"
	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
// through NewParcel or RestoreParcel.
var ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

// Parcel is the aggregate root for a delivery item. It owns the lifecycle
// state machine and the kind-dependent conditional fields:
//
//   - weight is non-negative, destination address non-empty;
//   - FRAGILE parcels carry handling instructions;
//   - REFRIGERATED parcels carry a temperature range (min ≤ max);
//   - a transporter reference exists iff the parcel is IN_TRANSIT or
//     DELIVERED, or a past assignment survives into CANCELLED;
//   - DELIVERED and CANCELLED are immutable terminal states.
//
// As with Account, constructor checks are collected into
// validation.Violations so callers see every problem at once.
type Parcel struct {
	id                   kernel.UUID
	kind                 Kind
	weight               float64
	destinationAddress   string
	status               Status
	transporterID        *kernel.UUID
	handlingInstructions string
	temperature          *TemperatureRange
	createdAt            time.Time
	updatedAt            time.Time

	guard guard.ConstructorGuard
}

// NewParcel creates a new Parcel in PENDING status with no transporter.
//
// minTemp and maxTemp must both be set for KindRefrigerated and absent
// otherwise; handlingInstructions is required for KindFragile. All broken
// rules are reported together as a validation.Violations error.
func NewParcel(
	id kernel.UUID,
	kind Kind,
	weight float64,
	destinationAddress string,
	handlingInstructions string,
	minTemp *float64,
	maxTemp *float64,
	now time.Time,
) (*Parcel, error) {
	var vs validation.Violations

	if err := id.Validate(); err != nil {
		vs.Add("id", validation.RuleRequired, nil)
	}
	if err := kind.Validate(); err != nil {
		vs.Add("type", validation.RuleInvalid, kind)
	}
	if weight < 0 {
		vs.Add("weight", validation.RuleOutOfRange, weight)
	}
	if strings.TrimSpace(destinationAddress) == "" {
		vs.Add("destinationAddress", validation.RuleRequired, nil)
	}

	if kind == KindFragile && strings.TrimSpace(handlingInstructions) == "" {
		vs.Add("handlingInstructions", validation.RuleRequired, nil)
	}

	temperature := validateTemperature(kind, minTemp, maxTemp, &vs)

	if err := vs.Err(); err != nil {
		return nil, err
	}

	return &Parcel{
		id:                   id,
		kind:                 kind,
		weight:               weight,
		destinationAddress:   destinationAddress,
		status:               StatusPending,
		handlingInstructions: handlingInstructions,
		temperature:          temperature,
		createdAt:            now,
		updatedAt:            now,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// validateTemperature enforces the kind-dependent temperature rules and, when
// they hold for a refrigerated parcel, builds the value object.
func validateTemperature(kind Kind, minTemp, maxTemp *float64, vs *validation.Violations) *TemperatureRange {
	if kind != KindRefrigerated {
		if minTemp != nil {
			vs.Add("minTemperature", validation.RuleForbidden, *minTemp)
		}
		if maxTemp != nil {
			vs.Add("maxTemperature", validation.RuleForbidden, *maxTemp)
		}
		return nil
	}

	if minTemp == nil {
		vs.Add("minTemperature", validation.RuleRequired, nil)
	}
	if maxTemp == nil {
		vs.Add("maxTemperature", validation.RuleRequired, nil)
	}
	if minTemp == nil || maxTemp == nil {
		return nil
	}

	if *minTemp < MinTemperature || *minTemp > MaxTemperature {
		vs.Add("minTemperature", validation.RuleOutOfRange, *minTemp)
	}
	if *maxTemp < MinTemperature || *maxTemp > MaxTemperature {
		vs.Add("maxTemperature", validation.RuleOutOfRange, *maxTemp)
	}
	if *minTemp > *maxTemp {
		vs.Add("minTemperature", validation.RuleInvalid, *minTemp)
		return nil
	}

	r, err := NewTemperatureRange(*minTemp, *maxTemp)
	if err != nil {
		return nil
	}
	return &r
}

// RestoreParcel reconstructs a Parcel from persistent state, including its
// status and any transporter reference. The status/transporter consistency
// rule is enforced here so corrupted rows cannot re-enter the domain.
func RestoreParcel(
	id kernel.UUID,
	kind Kind,
	weight float64,
	destinationAddress string,
	status Status,
	transporterID *kernel.UUID,
	handlingInstructions string,
	temperature *TemperatureRange,
	createdAt time.Time,
	updatedAt time.Time,
) (*Parcel, error) {
	var vs validation.Violations

	if err := id.Validate(); err != nil {
		vs.Add("id", validation.RuleRequired, nil)
	}
	if err := kind.Validate(); err != nil {
		vs.Add("type", validation.RuleInvalid, kind)
	}
	if weight < 0 {
		vs.Add("weight", validation.RuleOutOfRange, weight)
	}
	if strings.TrimSpace(destinationAddress) == "" {
		vs.Add("destinationAddress", validation.RuleRequired, nil)
	}
	if err := status.Validate(); err != nil {
		vs.Add("status", validation.RuleInvalid, status)
	} else if err := status.ValidateTransporterLink(transporterID != nil); err != nil {
		vs.Add("transporterId", validation.RuleInvalid, status)
	}
	if kind == KindFragile && strings.TrimSpace(handlingInstructions) == "" {
		vs.Add("handlingInstructions", validation.RuleRequired, nil)
	}
	if kind == KindRefrigerated && temperature == nil {
		vs.Add("minTemperature", validation.RuleRequired, nil)
	}
	if kind != KindRefrigerated && temperature != nil {
		vs.Add("minTemperature", validation.RuleForbidden, temperature.Min())
	}
	if transporterID != nil {
		if err := transporterID.Validate(); err != nil {
			vs.Add("transporterId", validation.RuleInvalid, nil)
		}
	}

	if err := vs.Err(); err != nil {
		return nil, err
	}

	return &Parcel{
		id:                   id,
		kind:                 kind,
		weight:               weight,
		destinationAddress:   destinationAddress,
		status:               status,
		transporterID:        transporterID,
		handlingInstructions: handlingInstructions,
		temperature:          temperature,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
		guard:                guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Parcel was constructed through NewParcel or RestoreParcel.
func (p *Parcel) Validate() error {
	if p == nil {
		return ErrParcelIsNotConstructed
	}
	return p.guard.Validate(ErrParcelIsNotConstructed)
}

// IsEqual compares two parcels by identity.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// Kind returns the parcel's handling category.
func (p *Parcel) Kind() Kind {
	return p.kind
}

// Weight returns the parcel's weight in kilograms.
func (p *Parcel) Weight() float64 {
	return p.weight
}

// DestinationAddress returns the delivery address.
func (p *Parcel) DestinationAddress() string {
	return p.destinationAddress
}

// Status returns the current lifecycle state.
func (p *Parcel) Status() Status {
	return p.status
}

// Transporter returns the assigned transporter's ID, or nil when unassigned.
func (p *Parcel) Transporter() *kernel.UUID {
	return p.transporterID
}

// HandlingInstructions returns the instructions (meaningful for FRAGILE parcels).
func (p *Parcel) HandlingInstructions() string {
	return p.handlingInstructions
}

// Temperature returns the temperature range, or nil for non-refrigerated parcels.
func (p *Parcel) Temperature() *TemperatureRange {
	return p.temperature
}

// CreatedAt returns the creation timestamp.
func (p *Parcel) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (p *Parcel) UpdatedAt() time.Time {
	return p.updatedAt
}

// Assign links the parcel to a transporter and moves it PENDING → IN_TRANSIT.
// The state is unchanged on error.
func (p *Parcel) Assign(transporterID kernel.UUID, now time.Time) error {
	if err := transporterID.Validate(); err != nil {
		return err
	}

	newStatus, err := p.status.Assign()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.transporterID = &transporterID
	p.updatedAt = now
	return nil
}

// UpdateDetails replaces the editable fields of a PENDING parcel: weight,
// destination address, handling instructions and the temperature window. The
// kind is immutable, so the kind-conditional rules are re-checked against the
// existing kind. A parcel that already left PENDING is rejected with an
// invalid transition error; the state is unchanged on any error.
func (p *Parcel) UpdateDetails(
	weight float64,
	destinationAddress string,
	handlingInstructions string,
	minTemp *float64,
	maxTemp *float64,
	now time.Time,
) error {
	if p.status != StatusPending {
		return errs.NewInvalidTransitionError("parcel", p.status.String(), StatusPending.String())
	}

	var vs validation.Violations

	if weight < 0 {
		vs.Add("weight", validation.RuleOutOfRange, weight)
	}
	if strings.TrimSpace(destinationAddress) == "" {
		vs.Add("destinationAddress", validation.RuleRequired, nil)
	}
	if p.kind == KindFragile && strings.TrimSpace(handlingInstructions) == "" {
		vs.Add("handlingInstructions", validation.RuleRequired, nil)
	}

	temperature := validateTemperature(p.kind, minTemp, maxTemp, &vs)

	if err := vs.Err(); err != nil {
		return err
	}

	p.weight = weight
	p.destinationAddress = destinationAddress
	p.handlingInstructions = handlingInstructions
	p.temperature = temperature
	p.updatedAt = now
	return nil
}

// MarkDelivered moves the parcel IN_TRANSIT → DELIVERED. The state is
// unchanged on error.
func (p *Parcel) MarkDelivered(now time.Time) error {
	newStatus, err := p.status.Deliver()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.updatedAt = now
	return nil
}

// Cancel moves the parcel to CANCELLED from PENDING or IN_TRANSIT. The state
// is unchanged on error; a past transporter assignment is kept for history.
func (p *Parcel) Cancel(now time.Time) error {
	newStatus, err := p.status.Cancel()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.updatedAt = now
	return nil
}
