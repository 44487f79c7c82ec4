package directory

import "time"

// Lawyer is a roster entry. Only Name is required; Specialty and Location are
// free-form filter fields for the browse UI.
type Lawyer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty,omitempty"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateLawyerRequest is the inbound shape for adding a roster entry.
type CreateLawyerRequest struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	Location  string `json:"location"`
}
