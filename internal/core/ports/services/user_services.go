package services

import (
	"context"

	"github.com/campuskit/university_portal_app/internal/core/domain"
	"github.com/campuskit/university_portal_app/internal/dto"
)

// UserReaderSvc defines read operations for user and profile data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByLogin retrieves a user by username or email.
	GetUserByLogin(ctx context.Context, login string) (*domain.User, error)

	// GetProfile retrieves the joined profile view, nil when none exists yet.
	GetProfile(ctx context.Context, userID string) (*domain.ProfileView, error)
}

// UserWriterSvc defines write operations for user and profile data
type UserWriterSvc interface {
	// RegisterUser creates a new local account with a bcrypt password hash.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// FindOrCreateProviderUser looks up an account by external provider
	// identity and creates one on first sign-in.
	FindOrCreateProviderUser(ctx context.Context, authProvider, providerUserID, email, fullName string) (*domain.User, error)

	// SaveProfile creates or updates the caller's profile, recomputing the
	// completion percentage and code number. Returns the stored completion.
	SaveProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (int, error)
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates by username or email plus password.
	AuthenticateUser(ctx context.Context, login, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
