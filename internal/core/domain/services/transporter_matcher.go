package services

import (
	"errors"
	"fmt"

	"parcels/internal/core/domain/model/account"
	"parcels/internal/core/domain/model/parcel"
)

// ErrNoEligibleTransporter is returned when no candidate qualifies for a
// parcel. This is a valid "no assignment now" outcome, not a failure: the
// parcel stays PENDING and a later retry may succeed once a transporter
// becomes AVAILABLE.
var ErrNoEligibleTransporter = errors.New("no eligible transporter")

// SpecialtyForKind maps a parcel kind to the transporter specialty allowed to
// carry it. The mapping is one-to-one: a REFRIGERATED parcel is assignable
// only to a REFRIGERATED-specialty transporter, and so on.
func SpecialtyForKind(k parcel.Kind) (account.Specialty, error) {
	switch k {
	case parcel.KindStandard:
		return account.SpecialtyStandard, nil
	case parcel.KindFragile:
		return account.SpecialtyFragile, nil
	case parcel.KindRefrigerated:
		return account.SpecialtyRefrigerated, nil
	default:
		return account.SpecialtyUnknown, fmt.Errorf("no specialty for parcel type %s", k)
	}
}

// TransporterMatcher is the domain service that selects an eligible
// transporter for a pending parcel.
//
// A candidate is eligible when it is an active TRANSPORTER in AVAILABLE
// status whose specialty matches the parcel kind. Among eligible candidates
// the earliest createdAt wins, with the ID string as a final tie-break, so
// repeated runs over the same candidate set always pick the same transporter.
type TransporterMatcher struct{}

// NewTransporterMatcher creates a new TransporterMatcher instance.
func NewTransporterMatcher() TransporterMatcher {
	return TransporterMatcher{}
}

// FindEligible returns the deterministically chosen eligible transporter for
// the parcel, or ErrNoEligibleTransporter when none qualifies.
//
// The parcel must be PENDING: matching an already moving parcel is a caller
// bug and is rejected before any candidate is inspected.
func (m TransporterMatcher) FindEligible(
	p *parcel.Parcel,
	candidates []*account.Account,
) (*account.Account, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if _, err := p.Status().Assign(); err != nil {
		return nil, err
	}

	wanted, err := SpecialtyForKind(p.Kind())
	if err != nil {
		return nil, err
	}

	var best *account.Account
	for _, c := range candidates {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if !m.isEligible(c, wanted) {
			continue
		}

		if best == nil || ranksBefore(c, best) {
			best = c
		}
	}

	if best == nil {
		return nil, ErrNoEligibleTransporter
	}

	return best, nil
}

// isEligible applies the four eligibility filters from the matching rules.
func (m TransporterMatcher) isEligible(c *account.Account, wanted account.Specialty) bool {
	return c.Role().IsTransporter() &&
		c.IsActive() &&
		c.IsAvailable() &&
		c.CanHandle(wanted)
}

// ranksBefore orders candidates first-come by creation time, then by ID so
// ties resolve identically on every run.
func ranksBefore(a, b *account.Account) bool {
	if !a.CreatedAt().Equal(b.CreatedAt()) {
		return a.CreatedAt().Before(b.CreatedAt())
	}
	return a.ID().String() < b.ID().String()
}
