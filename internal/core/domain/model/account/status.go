package account

import (
	"fmt"

	"parcels/internal/pkg/errs"
)

// Status is the availability state of a transporter. It implements a two-state
// machine:
//
//	AVAILABLE <──> ON_DELIVERY
//
// AVAILABLE → ON_DELIVERY happens only as a side effect of a successful
// assignment; the reverse happens only when the linked parcel reaches
// DELIVERED or CANCELLED.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusAvailable means the transporter has no parcel in flight and can
	// be selected by the assignment matcher.
	StatusAvailable

	// StatusOnDelivery means the transporter is carrying exactly one parcel.
	StatusOnDelivery
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusAvailable:  "AVAILABLE",
		StatusOnDelivery: "ON_DELIVERY",
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
		fmt.Errorf("%q is not a valid transporter status", s))
}

// Validate checks that the Status is one of the defined values.
func (s Status) Validate() error {
	if s != StatusAvailable && s != StatusOnDelivery {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid transporter status", s))
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

// ToOnDelivery transitions AVAILABLE → ON_DELIVERY.
// Any other source state is rejected and the receiver is left unchanged.
func (s Status) ToOnDelivery() (Status, error) {
	if s != StatusAvailable {
		return 0, errs.NewInvalidTransitionError("transporter", s.String(), StatusOnDelivery.String())
	}
	return StatusOnDelivery, nil
}

// ToAvailable transitions ON_DELIVERY → AVAILABLE.
// Any other source state is rejected and the receiver is left unchanged.
func (s Status) ToAvailable() (Status, error) {
	if s != StatusOnDelivery {
		return 0, errs.NewInvalidTransitionError("transporter", s.String(), StatusAvailable.String())
	}
	return StatusAvailable, nil
}
