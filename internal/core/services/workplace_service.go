package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/workmapr/employer_directory_app/internal/apperrors"
	portsrepo "github.com/workmapr/employer_directory_app/internal/core/ports/repositories"
	portssvc "github.com/workmapr/employer_directory_app/internal/core/ports/services"
	"github.com/workmapr/employer_directory_app/internal/utils"
)

// workplaceService implements the WorkplaceSvcFacade interface. It owns the
// user's employment affiliation across two stores: the employer profile store
// and the denormalized position/state/city fields on the user row. The two
// writes share no transaction; a failure between them leaves a partial-failure
// window which is logged distinctly and surfaced to the caller.
type workplaceService struct {
	BaseService
	profileRepo  portsrepo.EmployerProfileRepositoryFacade
	businessRepo portsrepo.BusinessReader
	userRepo     portsrepo.UserEmploymentWriter

	// userLocks serializes assign/leave per user so the lookup-then-branch
	// upsert cannot interleave for the same user. Distinct users never block
	// each other. The store's unique user_id index is the second line of
	// defense.
	userLocks *utils.KeyedMutex
}

// NewWorkplaceService creates a new workplace assignment service with the provided dependencies
func NewWorkplaceService(
	profileRepo portsrepo.EmployerProfileRepositoryFacade,
	businessRepo portsrepo.BusinessReader,
	userRepo portsrepo.UserEmploymentWriter,
) portssvc.WorkplaceSvcFacade {
	return &workplaceService{
		profileRepo:  profileRepo,
		businessRepo: businessRepo,
		userRepo:     userRepo,
		userLocks:    utils.NewKeyedMutex(),
	}
}

// Ensure workplaceService implements the WorkplaceSvcFacade interface
var _ portssvc.WorkplaceSvcFacade = (*workplaceService)(nil)

// AssignWorkplace joins targetUserID to businessID, or transfers an existing
// affiliation. Checks run in order: authentication, self-service ownership,
// business existence. Only then are any writes issued.
func (s *workplaceService) AssignWorkplace(ctx context.Context, requestorID, targetUserID, businessID, state, city string) error {
	if requestorID == "" {
		return apperrors.ErrUnauthorized
	}
	if requestorID != targetUserID {
		s.LogWarn(ctx, "Workplace assignment rejected: caller is not the target user",
			slog.String("target_user_id", targetUserID))
		return apperrors.ErrForbidden
	}

	if _, err := s.businessRepo.FindBusinessByID(ctx, businessID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: %s", apperrors.ErrBusinessNotFound, businessID)
		}
		s.LogError(ctx, err, "Failed to check business existence",
			slog.String("business_id", businessID))
		return fmt.Errorf("failed to validate business: %w", err)
	}

	s.userLocks.Lock(targetUserID)
	defer s.userLocks.Unlock(targetUserID)

	// Upsert-by-lookup: at most one profile exists per user, so the branch
	// decides between transferring the existing affiliation and creating the
	// first one. The per-user lock above makes the two steps atomic with
	// respect to other assign/leave calls for this user.
	existing, err := s.profileRepo.FindProfileByUserID(ctx, targetUserID)
	switch {
	case err == nil:
		if err := s.profileRepo.UpdateProfileBusiness(ctx, targetUserID, businessID); err != nil {
			s.LogError(ctx, err, "Failed to transfer employer profile",
				slog.String("profile_id", existing.ProfileID),
				slog.String("business_id", businessID))
			return err
		}
		s.LogInfo(ctx, "Employer profile transferred",
			slog.String("profile_id", existing.ProfileID),
			slog.String("from_business_id", existing.BusinessID),
			slog.String("to_business_id", businessID))
	case errors.Is(err, apperrors.ErrNotFound):
		created, err := s.profileRepo.InsertProfile(ctx, targetUserID, businessID)
		if err != nil {
			s.LogError(ctx, err, "Failed to create employer profile",
				slog.String("business_id", businessID))
			return err
		}
		s.LogInfo(ctx, "Employer profile created",
			slog.String("profile_id", created.ProfileID),
			slog.String("business_id", businessID))
	default:
		s.LogError(ctx, err, "Failed to look up employer profile")
		return err
	}

	// Second write of the pair. If this fails the profile store already holds
	// the new affiliation while the user row keeps the old location: log it as
	// a partial failure so operators can reconcile, and report the failure.
	if err := s.userRepo.UpdateEmploymentLocation(ctx, targetUserID, state, city); err != nil {
		s.LogError(ctx, err, "Partial failure: employer profile written but user location not updated",
			slog.String("business_id", businessID),
			slog.String("state", state),
			slog.String("city", city))
		return err
	}

	s.LogInfo(ctx, "Workplace assigned",
		slog.String("business_id", businessID),
		slog.String("state", state),
		slog.String("city", city))
	return nil
}

// LeaveWorkplace drops the caller's affiliation. The profile delete is
// idempotent; the user-row clear runs unconditionally afterwards, whether or
// not a profile existed.
func (s *workplaceService) LeaveWorkplace(ctx context.Context, requestorID string) error {
	if requestorID == "" {
		return apperrors.ErrUnauthorized
	}

	s.userLocks.Lock(requestorID)
	defer s.userLocks.Unlock(requestorID)

	// Delete failure short-circuits: do not clear the user row while the
	// profile may still exist.
	if err := s.profileRepo.DeleteProfileByUserID(ctx, requestorID); err != nil {
		s.LogError(ctx, err, "Failed to delete employer profile")
		return err
	}

	if err := s.userRepo.ClearEmployment(ctx, requestorID); err != nil {
		s.LogError(ctx, err, "Partial failure: employer profile deleted but user employment fields not cleared")
		return err
	}

	s.LogInfo(ctx, "Workplace left")
	return nil
}

// UpdatePosition sets the caller's position. An empty position clears the
// field to absent rather than storing an empty string. No business or profile
// lookups happen here: position is a free-standing attribute.
func (s *workplaceService) UpdatePosition(ctx context.Context, requestorID, position string) error {
	if requestorID == "" {
		return apperrors.ErrUnauthorized
	}

	var positionPtr *string
	if position != "" {
		positionPtr = &position
	}

	if err := s.userRepo.UpdateUserPosition(ctx, requestorID, positionPtr); err != nil {
		s.LogError(ctx, err, "Failed to update position")
		return err
	}

	if positionPtr == nil {
		s.LogInfo(ctx, "Position cleared")
	} else {
		s.LogInfo(ctx, "Position updated", slog.String("position", position))
	}
	return nil
}
