package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/workmapr/employer_directory_app/internal/apperrors"
	"github.com/workmapr/employer_directory_app/internal/core/domain"
	portsrepo "github.com/workmapr/employer_directory_app/internal/core/ports/repositories"
	portssvc "github.com/workmapr/employer_directory_app/internal/core/ports/services"
)

// businessService implements the BusinessSvcFacade interface
type businessService struct {
	BaseService
	businessRepo portsrepo.BusinessRepositoryFacade
}

// NewBusinessService creates a new business directory service with the provided dependencies
func NewBusinessService(businessRepo portsrepo.BusinessRepositoryFacade) portssvc.BusinessSvcFacade {
	return &businessService{businessRepo: businessRepo}
}

// Ensure businessService implements the BusinessSvcFacade interface
var _ portssvc.BusinessSvcFacade = (*businessService)(nil)

// GetBusinessByID retrieves a business by its ID
func (s *businessService) GetBusinessByID(ctx context.Context, businessID string) (*domain.Business, error) {
	business, err := s.businessRepo.FindBusinessByID(ctx, businessID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find business by ID",
				slog.String("business_id", businessID))
		}
		return nil, err
	}
	return business, nil
}

// ListBusinesses retrieves businesses matching the filter
func (s *businessService) ListBusinesses(ctx context.Context, filter portsrepo.BusinessListFilter) ([]domain.Business, error) {
	businesses, err := s.businessRepo.ListBusinesses(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list businesses")
		return nil, err
	}

	if businesses == nil {
		return []domain.Business{}, nil
	}

	s.LogDebug(ctx, "Businesses listed successfully",
		slog.Int("count", len(businesses)))
	return businesses, nil
}
