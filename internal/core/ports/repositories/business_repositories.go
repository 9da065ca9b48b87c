package repositories

import (
	"context"

	"github.com/workmapr/employer_directory_app/internal/core/domain"
)

// BusinessListFilter narrows ListBusinesses results. Zero values mean "no filter".
type BusinessListFilter struct {
	State      string
	City       string
	Category   string
	NamePrefix string
	Limit      int
	Offset     int
}

// BusinessReader defines read operations for the business directory. The
// directory is externally owned; nothing in this application writes to it.
type BusinessReader interface {
	// FindBusinessByID retrieves a specific business by its ID.
	FindBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)

	// ListBusinesses retrieves businesses matching the filter.
	ListBusinesses(ctx context.Context, filter BusinessListFilter) ([]domain.Business, error)
}

// BusinessRepositoryFacade combines all business-related repository interfaces.
type BusinessRepositoryFacade interface {
	BusinessReader
}
