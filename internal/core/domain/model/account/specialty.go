package account

import (
	"fmt"

	"parcels/internal/pkg/errs"
)

// Specialty is a transporter's handling capability category. A transporter may
// only carry parcels whose kind matches their specialty. The specialty is set
// at creation and never reassigned.
type Specialty int

const (
	// SpecialtyUnknown represents an invalid or undefined specialty.
	SpecialtyUnknown Specialty = iota

	// SpecialtyStandard handles parcels without special requirements.
	SpecialtyStandard

	// SpecialtyFragile handles parcels that need careful manipulation.
	SpecialtyFragile

	// SpecialtyRefrigerated handles parcels with a temperature constraint.
	SpecialtyRefrigerated
)

func specialtyStrings() map[Specialty]string {
	return map[Specialty]string{
		SpecialtyUnknown:      "Unknown",
		SpecialtyStandard:     "STANDARD",
		SpecialtyFragile:      "FRAGILE",
		SpecialtyRefrigerated: "REFRIGERATED",
	}
}

// ParseSpecialty converts the canonical wire form to a Specialty.
func ParseSpecialty(s string) (Specialty, error) {
	for sp, str := range specialtyStrings() {
		if sp != SpecialtyUnknown && str == s {
			return sp, nil
		}
	}
	return SpecialtyUnknown, errs.NewValueIsInvalidErrorWithCause("specialty",
		fmt.Errorf("%q is not a valid specialty", s))
}

// Validate checks that the Specialty is one of the defined values.
func (s Specialty) Validate() error {
	if _, ok := specialtyStrings()[s]; !ok || s == SpecialtyUnknown {
		return errs.NewValueIsInvalidErrorWithCause("specialty",
			fmt.Errorf("%d is not a valid specialty", s))
	}
	return nil
}

// String returns the canonical wire form of the specialty.
func (s Specialty) String() string {
	if str, ok := specialtyStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
