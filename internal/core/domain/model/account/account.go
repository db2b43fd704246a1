package account

import (
	"errors"
	"time"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/validation"
	"parcels/internal/pkg/guard"
)

// ErrAccountIsNotConstructed is returned when an Account instance was not
// created through NewAccount or RestoreAccount.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

// Account is the aggregate root for an actor in the system: either an admin or
// a transporter. It owns the conditional-field invariants of the role:
//
//   - TRANSPORTER accounts carry a TransporterProfile (specialty + status);
//   - ADMIN accounts must not have one;
//   - login is required and globally unique (uniqueness is checked by the
//     caller through validation.CheckUniqueLogin, since it needs a lookup);
//   - the password hash is opaque to the domain;
//   - role and specialty never change after creation;
//   - accounts are never hard-deleted, only deactivated.
//
// All constructor checks are collected into validation.Violations, so a caller
// creating an account with three problems learns about all three at once.
type Account struct {
	id           kernel.UUID
	login        string
	passwordHash string
	role         Role
	active       bool
	transporter  *TransporterProfile
	createdAt    time.Time
	updatedAt    time.Time

	guard guard.ConstructorGuard
}

// NewAccount creates a new active Account with validation.
//
// For RoleTransporter a specialty is required and the status starts as
// AVAILABLE. For RoleAdmin the specialty must be nil. Every violated rule is
// reported; the returned error is a validation.Violations listing all of them.
func NewAccount(
	id kernel.UUID,
	login string,
	passwordHash string,
	role Role,
	specialty *Specialty,
	now time.Time,
) (*Account, error) {
	var vs validation.Violations

	if err := id.Validate(); err != nil {
		vs.Add("id", validation.RuleRequired, nil)
	}
	if login == "" {
		vs.Add("login", validation.RuleRequired, nil)
	}
	if passwordHash == "" {
		vs.Add("password", validation.RuleRequired, nil)
	}
	if err := role.Validate(); err != nil {
		vs.Add("role", validation.RuleInvalid, role)
	}

	var profile *TransporterProfile
	switch {
	case role.IsTransporter():
		if specialty == nil {
			vs.Add("specialty", validation.RuleRequired, nil)
		} else if err := specialty.Validate(); err != nil {
			vs.Add("specialty", validation.RuleInvalid, *specialty)
		} else {
			profile = &TransporterProfile{specialty: *specialty, status: StatusAvailable}
		}
	case role.IsAdmin():
		if specialty != nil {
			vs.Add("specialty", validation.RuleForbidden, *specialty)
		}
	}

	if err := vs.Err(); err != nil {
		return nil, err
	}

	return &Account{
		id:           id,
		login:        login,
		passwordHash: passwordHash,
		role:         role,
		active:       true,
		transporter:  profile,
		createdAt:    now,
		updatedAt:    now,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreAccount reconstructs an Account from persistent state, including its
// activation flag and, for transporters, the stored availability status.
// The same conditional-presence rules apply as in NewAccount.
func RestoreAccount(
	id kernel.UUID,
	login string,
	passwordHash string,
	role Role,
	active bool,
	specialty *Specialty,
	status *Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Account, error) {
	var vs validation.Violations

	if err := id.Validate(); err != nil {
		vs.Add("id", validation.RuleRequired, nil)
	}
	if login == "" {
		vs.Add("login", validation.RuleRequired, nil)
	}
	if passwordHash == "" {
		vs.Add("password", validation.RuleRequired, nil)
	}
	if err := role.Validate(); err != nil {
		vs.Add("role", validation.RuleInvalid, role)
	}

	var profile *TransporterProfile
	switch {
	case role.IsTransporter():
		switch {
		case specialty == nil:
			vs.Add("specialty", validation.RuleRequired, nil)
		case specialty.Validate() != nil:
			vs.Add("specialty", validation.RuleInvalid, *specialty)
		}
		switch {
		case status == nil:
			vs.Add("status", validation.RuleRequired, nil)
		case status.Validate() != nil:
			vs.Add("status", validation.RuleInvalid, *status)
		}
		if len(vs) == 0 {
			profile = &TransporterProfile{specialty: *specialty, status: *status}
		}
	case role.IsAdmin():
		if specialty != nil {
			vs.Add("specialty", validation.RuleForbidden, *specialty)
		}
		if status != nil {
			vs.Add("status", validation.RuleForbidden, *status)
		}
	}

	if err := vs.Err(); err != nil {
		return nil, err
	}

	return &Account{
		id:           id,
		login:        login,
		passwordHash: passwordHash,
		role:         role,
		active:       active,
		transporter:  profile,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Account was constructed through NewAccount or
// RestoreAccount, so zero-value instances cannot bypass validation.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// IsEqual compares two accounts by identity.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Login returns the account's unique login.
func (a *Account) Login() string {
	return a.login
}

// PasswordHash returns the opaque hashed credential.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

// Role returns the account's role.
func (a *Account) Role() Role {
	return a.role
}

// IsActive reports whether the account is active.
func (a *Account) IsActive() bool {
	return a.active
}

// CreatedAt returns the creation timestamp; the matcher uses it as the
// first-come ordering key.
func (a *Account) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (a *Account) UpdatedAt() time.Time {
	return a.updatedAt
}

// Transporter returns the transporter profile, or nil for admin accounts.
func (a *Account) Transporter() *TransporterProfile {
	return a.transporter
}

// IsAvailable reports whether this is a transporter currently in AVAILABLE status.
func (a *Account) IsAvailable() bool {
	return a.transporter != nil && a.transporter.status == StatusAvailable
}

// IsOnDelivery reports whether this is a transporter currently in ON_DELIVERY status.
func (a *Account) IsOnDelivery() bool {
	return a.transporter != nil && a.transporter.status == StatusOnDelivery
}

// CanHandle reports whether this account is a transporter whose specialty
// matches the given handling category.
func (a *Account) CanHandle(specialty Specialty) bool {
	return a.transporter != nil && a.transporter.specialty == specialty
}

// ChangeLogin replaces the account's login. Uniqueness against other accounts
// is the caller's concern, as in NewAccount.
func (a *Account) ChangeLogin(login string, now time.Time) error {
	if login == "" {
		var vs validation.Violations
		vs.Add("login", validation.RuleRequired, nil)
		return vs.Err()
	}

	a.login = login
	a.updatedAt = now
	return nil
}

// ChangePasswordHash replaces the stored credential with a new opaque hash.
func (a *Account) ChangePasswordHash(passwordHash string, now time.Time) error {
	if passwordHash == "" {
		var vs validation.Violations
		vs.Add("password", validation.RuleRequired, nil)
		return vs.Err()
	}

	a.passwordHash = passwordHash
	a.updatedAt = now
	return nil
}

// Activate re-enables a deactivated account.
func (a *Account) Activate(now time.Time) {
	a.active = true
	a.updatedAt = now
}

// Deactivate soft-deletes the account. A deactivated transporter is never
// selected by the matcher but keeps its stored state.
func (a *Account) Deactivate(now time.Time) {
	a.active = false
	a.updatedAt = now
}

// MarkOnDelivery flips the transporter AVAILABLE → ON_DELIVERY. The state is
// unchanged on error. Admin accounts are rejected.
func (a *Account) MarkOnDelivery(now time.Time) error {
	if a.transporter == nil {
		return ErrNotATransporter
	}

	newStatus, err := a.transporter.status.ToOnDelivery()
	if err != nil {
		return err
	}

	a.transporter.status = newStatus
	a.updatedAt = now
	return nil
}

// MarkAvailable flips the transporter ON_DELIVERY → AVAILABLE. The state is
// unchanged on error. Admin accounts are rejected.
func (a *Account) MarkAvailable(now time.Time) error {
	if a.transporter == nil {
		return ErrNotATransporter
	}

	newStatus, err := a.transporter.status.ToAvailable()
	if err != nil {
		return err
	}

	a.transporter.status = newStatus
	a.updatedAt = now
	return nil
}

// ErrNotATransporter is returned when a transporter-only operation is invoked
// on an admin account.
var ErrNotATransporter = errors.New("account is not a transporter")
