package models

// Business represents a row in the businesses table.
type Business struct {
	BusinessID string `db:"business_id"`
	Name       string `db:"name"`
	Address    string `db:"address"`
	City       string `db:"city"`
	State      string `db:"state"`
	Category   string `db:"category"`
	PhotoURL   string `db:"photo_url"`
	AuditFields
}
