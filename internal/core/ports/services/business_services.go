package services

import (
	"context"

	"github.com/workmapr/employer_directory_app/internal/core/domain"
	portsrepo "github.com/workmapr/employer_directory_app/internal/core/ports/repositories"
)

// BusinessReaderSvc defines read operations for the business directory.
type BusinessReaderSvc interface {
	// GetBusinessByID retrieves a business by ID.
	GetBusinessByID(ctx context.Context, businessID string) (*domain.Business, error)

	// ListBusinesses retrieves businesses matching the filter.
	ListBusinesses(ctx context.Context, filter portsrepo.BusinessListFilter) ([]domain.Business, error)
}

// BusinessSvcFacade combines all business-directory service interfaces.
type BusinessSvcFacade interface {
	BusinessReaderSvc
}
