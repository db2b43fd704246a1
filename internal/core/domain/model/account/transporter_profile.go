package account

// TransporterProfile carries the fields that only exist on TRANSPORTER
// accounts: the handling specialty (immutable) and the availability status.
// Admin accounts have no profile; the conditional-presence rules are enforced
// by the Account constructor.
type TransporterProfile struct {
	specialty Specialty
	status    Status
}

// Specialty returns the transporter's handling capability.
func (p *TransporterProfile) Specialty() Specialty {
	return p.specialty
}

// Status returns the transporter's current availability status.
func (p *TransporterProfile) Status() Status {
	return p.status
}
