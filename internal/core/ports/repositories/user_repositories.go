package repositories

import (
	"context"

	"github.com/campuskit/university_portal_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByLogin retrieves a user by username or email (either may match).
	FindUserByLogin(ctx context.Context, login string) (*domain.User, error)

	// FindUserByProviderDetails retrieves a user by external auth provider identity.
	FindUserByProviderDetails(ctx context.Context, authProvider, providerUserID string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. Returns apperrors.ErrDuplicate when the
	// email or username is already taken.
	SaveUser(ctx context.Context, user domain.User) error
}

// ProfileReader defines read operations for user profile data
type ProfileReader interface {
	// FindProfileByUserID retrieves the profile joined with directory names.
	// Returns apperrors.ErrNotFound when no profile row exists yet.
	FindProfileByUserID(ctx context.Context, userID string) (*domain.ProfileView, error)
}

// ProfileWriter defines write operations for user profile data
type ProfileWriter interface {
	// UpsertProfile creates or updates the single profile row for a user.
	UpsertProfile(ctx context.Context, profile domain.Profile) error
}

// UserRepositoryFacade combines all user-related repository interfaces
// This is a facade for clients that need access to all operations
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	ProfileReader
	ProfileWriter
}
