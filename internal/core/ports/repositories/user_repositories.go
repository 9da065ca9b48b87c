package repositories

import (
	"context"
	"time"

	"github.com/workmapr/employer_directory_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a specific user by their username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUsers retrieves a paginated list of users.
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's details.
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserEmploymentWriter defines the denormalized employment-field writes used by
// the workplace assignment flow. These touch only position/state/city, never
// the rest of the user row.
type UserEmploymentWriter interface {
	// UpdateEmploymentLocation sets the user's state and city to the given values.
	UpdateEmploymentLocation(ctx context.Context, userID, state, city string) error

	// UpdateUserPosition sets the user's position, or clears it when position is nil.
	UpdateUserPosition(ctx context.Context, userID string, position *string) error

	// ClearEmployment clears position, state and city in one write.
	ClearEmployment(ctx context.Context, userID string) error
}

// UserLifecycleManager defines operations for managing user lifecycle
type UserLifecycleManager interface {
	// MarkUserDeleted marks a user as deleted (soft delete).
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
// This is a facade for clients that need access to all operations
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserEmploymentWriter
	UserLifecycleManager
}
