package domain

// Business represents an entry in the business directory. The workplace
// assignment flow only ever reads businesses; mutations happen through a
// separate admin path.
type Business struct {
	BusinessID string `json:"businessID"` // Primary Key (UUID)
	Name       string `json:"name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Category   string `json:"category"`
	PhotoURL   string `json:"photoURL"`
	AuditFields
}
