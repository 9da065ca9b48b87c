package domain

import "time"

// EmployerProfile records that a user is affiliated with a business.
// Invariant: at most one profile exists per UserID. Repeated assignments update
// the existing profile's BusinessID and preserve its ProfileID.
type EmployerProfile struct {
	ProfileID  string    `json:"profileID"` // store-generated
	UserID     string    `json:"userID"`
	BusinessID string    `json:"businessID"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
