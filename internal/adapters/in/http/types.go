package http

import "time"

// CreateAccountRequest is the body of POST /api/v1/accounts. Specialty is
// only meaningful for the TRANSPORTER role.
type CreateAccountRequest struct {
	Login     string `json:"login"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Specialty string `json:"specialty,omitempty"`
}

// UpdateAccountRequest is the body of PUT /api/v1/accounts/:id. An empty
// password leaves the stored credential unchanged.
type UpdateAccountRequest struct {
	Login    string `json:"login"`
	Password string `json:"password,omitempty"`
}

// SetAccountActiveRequest is the body of PATCH /api/v1/accounts/:id/active.
// Active is a pointer so that a missing field is distinguishable from false.
type SetAccountActiveRequest struct {
	Active *bool `json:"active"`
}

// CreateParcelRequest is the body of POST /api/v1/parcels. The temperature
// bounds are required for REFRIGERATED parcels and forbidden otherwise.
type CreateParcelRequest struct {
	Kind                 string   `json:"kind"`
	Weight               float64  `json:"weight"`
	DestinationAddress   string   `json:"destinationAddress"`
	HandlingInstructions string   `json:"handlingInstructions,omitempty"`
	MinTemperature       *float64 `json:"minTemperature,omitempty"`
	MaxTemperature       *float64 `json:"maxTemperature,omitempty"`
}

// UpdateParcelRequest is the body of PUT /api/v1/parcels/:id. The kind cannot
// change after creation, so it is not part of the body.
type UpdateParcelRequest struct {
	Weight               float64  `json:"weight"`
	DestinationAddress   string   `json:"destinationAddress"`
	HandlingInstructions string   `json:"handlingInstructions,omitempty"`
	MinTemperature       *float64 `json:"minTemperature,omitempty"`
	MaxTemperature       *float64 `json:"maxTemperature,omitempty"`
}

// CreatedResponse carries the server-generated identifier of a new resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// AssignParcelResponse reports the outcome of an assignment attempt.
// Assigned is false when nothing was pending or nobody was eligible.
type AssignParcelResponse struct {
	Assigned bool   `json:"assigned"`
	Reason   string `json:"reason,omitempty"`
}

// Parcel is the read model returned by GET /api/v1/parcels.
type Parcel struct {
	ID                   string    `json:"id"`
	Kind                 string    `json:"kind"`
	Weight               float64   `json:"weight"`
	DestinationAddress   string    `json:"destinationAddress"`
	Status               string    `json:"status"`
	TransporterID        *string   `json:"transporterId,omitempty"`
	HandlingInstructions string    `json:"handlingInstructions,omitempty"`
	MinTemperature       *float64  `json:"minTemperature,omitempty"`
	MaxTemperature       *float64  `json:"maxTemperature,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
}

// Transporter is the read model returned by GET /api/v1/transporters.
type Transporter struct {
	ID        string    `json:"id"`
	Login     string    `json:"login"`
	Specialty string    `json:"specialty"`
	Status    string    `json:"status"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// ViolationDetail is one broken rule on one field.
type ViolationDetail struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Value string `json:"value,omitempty"`
}

// Error is the uniform error body. Violations is populated only for
// validation failures.
type Error struct {
	Code       int               `json:"code"`
	Message    string            `json:"message"`
	Violations []ViolationDetail `json:"violations,omitempty"`
}
