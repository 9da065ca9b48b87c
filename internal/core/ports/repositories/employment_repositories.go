package repositories

import (
	"context"

	"github.com/workmapr/employer_directory_app/internal/core/domain"
)

// EmployerProfileReader defines read operations for employer profiles.
type EmployerProfileReader interface {
	// FindProfileByUserID retrieves the profile for a user, or
	// apperrors.ErrNotFound when the user has no affiliation.
	FindProfileByUserID(ctx context.Context, userID string) (*domain.EmployerProfile, error)
}

// EmployerProfileWriter defines write operations for employer profiles.
// The store keys profiles uniquely by user ID; InsertProfile fails with
// apperrors.ErrDuplicate when a profile for the user already exists.
type EmployerProfileWriter interface {
	// InsertProfile creates a new profile and returns it with its
	// store-generated ProfileID.
	InsertProfile(ctx context.Context, userID, businessID string) (*domain.EmployerProfile, error)

	// UpdateProfileBusiness transfers an existing profile to another business,
	// preserving the profile's identity. Returns apperrors.ErrNotFound when no
	// profile exists for the user.
	UpdateProfileBusiness(ctx context.Context, userID, businessID string) error

	// DeleteProfileByUserID removes the user's profile. Deleting a profile
	// that does not exist is not an error.
	DeleteProfileByUserID(ctx context.Context, userID string) error
}

// EmployerProfileRepositoryFacade combines all employer-profile repository
// interfaces.
type EmployerProfileRepositoryFacade interface {
	EmployerProfileReader
	EmployerProfileWriter
}
