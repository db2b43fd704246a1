package parcel

import (
	"fmt"

	"parcels/internal/pkg/errs"
)

// Status is the lifecycle state of a parcel. It implements a state machine
// with the following transitions:
//
//	PENDING ──> IN_TRANSIT ──> DELIVERED (terminal)
//	   │             │
//	   └──> CANCELLED <──┘              (terminal)
//
// Any other requested transition fails with an InvalidTransitionError naming
// the current and requested states, and leaves the state unchanged.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending is the initial state: no transporter is assigned yet.
	StatusPending

	// StatusInTransit means the parcel is being carried by a transporter.
	StatusInTransit

	// StatusDelivered is a terminal state reached only from IN_TRANSIT.
	StatusDelivered

	// StatusCancelled is a terminal state reached from PENDING or IN_TRANSIT.
	StatusCancelled
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "PENDING",
		StatusInTransit: "IN_TRANSIT",
		StatusDelivered: "DELIVERED",
		StatusCancelled: "CANCELLED",
	}
}

// ParseStatus converts the canonical wire form to a Status.
func ParseStatus(s string) (Status, error) {
	for st, str := range statusStrings() {
		if st != StatusUnknown && str == s {
			return st, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid parcel status", s))
}

// Validate checks that the Status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid parcel status", s))
	}
	return nil
}

// String returns the canonical wire form of the status.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Assign transitions PENDING → IN_TRANSIT.
func (s Status) Assign() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewInvalidTransitionError("parcel", s.String(), StatusInTransit.String())
	}
	return StatusInTransit, nil
}

// Deliver transitions IN_TRANSIT → DELIVERED.
func (s Status) Deliver() (Status, error) {
	if s != StatusInTransit {
		return 0, errs.NewInvalidTransitionError("parcel", s.String(), StatusDelivered.String())
	}
	return StatusDelivered, nil
}

// Cancel transitions PENDING or IN_TRANSIT → CANCELLED.
func (s Status) Cancel() (Status, error) {
	if s != StatusPending && s != StatusInTransit {
		return 0, errs.NewInvalidTransitionError("parcel", s.String(), StatusCancelled.String())
	}
	return StatusCancelled, nil
}

// ValidateTransporterLink checks the consistency between the status and the
// presence of a transporter reference:
//
//   - PENDING parcels must have no transporter;
//   - IN_TRANSIT and DELIVERED parcels must have one;
//   - CANCELLED parcels may have one (a past assignment) or none.
func (s Status) ValidateTransporterLink(hasTransporter bool) error {
	if s == StatusPending && hasTransporter {
		return errs.NewValueIsInvalidErrorWithCause("transporterId",
			fmt.Errorf("%s parcel must not reference a transporter", s.String()))
	}

	if !hasTransporter && (s == StatusInTransit || s == StatusDelivered) {
		return errs.NewValueIsInvalidErrorWithCause("transporterId",
			fmt.Errorf("%s parcel must reference a transporter", s.String()))
	}

	return nil
}
