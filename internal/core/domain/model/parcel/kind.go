package parcel

import (
	"fmt"

	"parcels/internal/pkg/errs"
)

// Kind is the handling category of a parcel. It is immutable and decides
// which conditional fields the parcel must carry and which transporter
// specialty may be assigned to it.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// KindStandard has no extra requirements.
	KindStandard

	// KindFragile requires handling instructions.
	KindFragile

	// KindRefrigerated requires a temperature range.
	KindRefrigerated
)

func kindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:      "Unknown",
		KindStandard:     "STANDARD",
		KindFragile:      "FRAGILE",
		KindRefrigerated: "REFRIGERATED",
	}
}

// ParseKind converts the canonical wire form to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, str := range kindStrings() {
		if k != KindUnknown && str == s {
			return k, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("type",
		fmt.Errorf("%q is not a valid parcel type", s))
}

// Validate checks that the Kind is one of the defined values.
func (k Kind) Validate() error {
	if _, ok := kindStrings()[k]; !ok || k == KindUnknown {
		return errs.NewValueIsInvalidErrorWithCause("type",
			fmt.Errorf("%d is not a valid parcel type", k))
	}
	return nil
}

// String returns the canonical wire form of the kind.
func (k Kind) String() string {
	if s, ok := kindStrings()[k]; ok {
		return s
	}
	return "Unknown"
}
