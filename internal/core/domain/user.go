package domain

import "time"

// User represents a user of the application in the domain.
// Position, State and City are the employment-affiliation fields: State and City
// are a denormalized copy of the affiliated business's location, Position is a
// free-standing attribute not gated on having an affiliation. All three are nil
// when absent.
type User struct {
	UserID       string  `json:"userID"` // Primary Key (UUID)
	Username     string  `json:"username"`
	Name         string  `json:"name"`
	PasswordHash *string `json:"-"`
	Position     *string `json:"position,omitempty"`
	State        *string `json:"state,omitempty"`
	City         *string `json:"city,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
