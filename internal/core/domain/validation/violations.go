// Package validation provides the collect-all violation machinery used by the
// domain model. Rule checks do not short-circuit: every problem found on an
// entity is recorded as a Violation so callers can report all of them at once.
package validation

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Rule names attached to violations. They identify what was broken,
// independent of any rendered message.
const (
	RuleRequired   = "required"
	RuleForbidden  = "forbidden"
	RuleInvalid    = "invalid"
	RuleOutOfRange = "out_of_range"
	RuleNotUnique  = "not_unique"
)

// ErrValidationFailed is the sentinel all Violations unwrap to.
var ErrValidationFailed = errors.New("validation failed")

// Violation describes a single broken rule on a single field, carrying the
// offending value so the caller can render an actionable message.
type Violation struct {
	Field string
	Rule  string
	Value string
}

func (v Violation) String() string {
	if v.Value == "" {
		return fmt.Sprintf("%s: %s", v.Field, v.Rule)
	}
	return fmt.Sprintf("%s: %s (got %q)", v.Field, v.Rule, v.Value)
}

// Violations is the accumulated result of validating one entity.
// A non-empty list is an error; an empty list means the entity is valid.
type Violations []Violation

// Add records a violation. The value is formatted with %v; pass nil for
// rules where the offending value adds nothing (e.g. a missing field).
func (vs *Violations) Add(field, rule string, value any) {
	v := Violation{Field: field, Rule: rule}
	if value != nil {
		v.Value = fmt.Sprintf("%v", value)
	}
	*vs = append(*vs, v)
}

// Err returns the list as an error, or nil when no violations were recorded.
func (vs Violations) Err() error {
	if len(vs) == 0 {
		return nil
	}
	return vs
}

func (vs Violations) Error() string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(parts, "; "))
}

// Unwrap lets errors.Is classify any non-empty list against ErrValidationFailed.
func (vs Violations) Unwrap() error {
	return ErrValidationFailed
}

// LoginChecker is the persistence capability the engine needs to enforce
// login uniqueness. It is supplied at call time; the engine holds no storage.
type LoginChecker interface {
	ExistsByLogin(ctx context.Context, login string) (bool, error)
}

// CheckUniqueLogin records a not_unique violation when the login is already
// taken. Lookup failures are infrastructure errors and returned as-is, never
// recorded as violations.
func CheckUniqueLogin(ctx context.Context, checker LoginChecker, login string, vs *Violations) error {
	if login == "" {
		return nil
	}

	exists, err := checker.ExistsByLogin(ctx, login)
	if err != nil {
		return err
	}
	if exists {
		vs.Add("login", RuleNotUnique, login)
	}
	return nil
}
