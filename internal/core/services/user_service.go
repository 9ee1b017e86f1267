package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campuskit/university_portal_app/internal/apperrors"
	"github.com/campuskit/university_portal_app/internal/core/domain"
	portsrepo "github.com/campuskit/university_portal_app/internal/core/ports/repositories"
	portssvc "github.com/campuskit/university_portal_app/internal/core/ports/services"
	"github.com/campuskit/university_portal_app/internal/dto"
	"github.com/campuskit/university_portal_app/internal/middleware"
	"github.com/campuskit/university_portal_app/internal/utils"
)

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

// Ensure userService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) GetUserByLogin(ctx context.Context, login string) (*domain.User, error) {
	return s.userRepo.FindUserByLogin(ctx, login)
}

// GetProfile returns the joined profile view, or nil when the user has not
// saved a profile yet. Absence is not an error at this layer.
func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.ProfileView, error) {
	profile, err := s.userRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load profile for user %s: %w", userID, err)
	}
	return profile, nil
}

// RegisterUser creates a new local account. The email and username uniqueness
// is enforced by the database; a violation surfaces as apperrors.ErrDuplicate.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUserID := uuid.NewString()
	now := time.Now().UTC()
	user := domain.User{
		UserID:       newUserID,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: passwordHash,
		FullName:     req.FullName,
		Age:          req.Age,
		Gender:       req.Gender,
		Location:     req.Location,
		AuthProvider: "local",
		IsActive:     true,
		// self-registration: the new user is its own creator
		AuditFields: domain.NewAuditFields(newUserID, now),
	}
	if req.Birthday != "" {
		birthday, err := time.Parse("2006-01-02", req.Birthday)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid birthday", apperrors.ErrValidation)
		}
		user.Birthday = &birthday
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email or username already registered", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	logger.Info("User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

// FindOrCreateProviderUser resolves an external identity to a portal account,
// creating one on first sign-in. Provider accounts carry no password hash and
// are marked verified because the provider already verified the email.
func (s *userService) FindOrCreateProviderUser(ctx context.Context, authProvider, providerUserID, email, fullName string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByProviderDetails(ctx, authProvider, providerUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up provider user: %w", err)
	}

	newUserID := uuid.NewString()
	created := domain.User{
		UserID:         newUserID,
		Email:          strings.ToLower(email),
		Username:       usernameFromEmail(email),
		FullName:       fullName,
		AuthProvider:   authProvider,
		ProviderUserID: providerUserID,
		IsActive:       true,
		IsVerified:     true,
		AuditFields:    domain.NewAuditFields(newUserID, time.Now().UTC()),
	}
	if err := s.userRepo.SaveUser(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to create provider user: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Provider user created",
		slog.String("user_id", created.UserID),
		slog.String("provider", authProvider),
	)
	return &created, nil
}

// AuthenticateUser checks credentials for a local account. Provider accounts
// have no password and cannot authenticate this way.
func (s *userService) AuthenticateUser(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account is disabled", apperrors.ErrUnauthorized)
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}
	return user, nil
}

// SaveProfile upserts the caller's profile, recomputing the completion
// percentage and deriving the code number from the identification number that
// matches the chosen user type.
func (s *userService) SaveProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (int, error) {
	userType := domain.UserType(req.UserType)

	profile := domain.Profile{
		ProfileID:      uuid.NewString(),
		UserID:         userID,
		FocalPerson:    req.FocalPerson,
		UserType:       userType,
		EmployeeNumber: req.EmployeeNumber,
		StudentNumber:  req.StudentNumber,
		DepartmentID:   req.DepartmentID,
		CampusID:       req.CampusID,
		PositionTitle:  req.PositionTitle,
		SupervisorID:   req.SupervisorID,
		AuditFields:    domain.NewAuditFields(userID, time.Now().UTC()),
	}
	profile.CodeNumber = codeNumberFor(userType, req.EmployeeNumber, req.StudentNumber)
	profile.CompletionPercentage = completionPercentage(profile)

	if err := s.userRepo.UpsertProfile(ctx, profile); err != nil {
		return 0, fmt.Errorf("failed to save profile for user %s: %w", userID, err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Profile saved",
		slog.String("user_id", userID),
		slog.Int("completion", profile.CompletionPercentage),
	)
	return profile.CompletionPercentage, nil
}

// completionPercentage scores how much of the profile is filled in. A bare
// profile with a user type starts at 40; directory placement and a matching
// identification number raise it, capped at 100.
func completionPercentage(p domain.Profile) int {
	score := 40
	if p.FocalPerson != "" {
		score += 5
	}
	if p.DepartmentID != nil && *p.DepartmentID != "" {
		score += 10
	}
	if p.CampusID != nil && *p.CampusID != "" {
		score += 10
	}
	switch p.UserType {
	case domain.UserTypeEmployee:
		if p.EmployeeNumber != "" {
			score += 10
		}
	case domain.UserTypeStudent:
		if p.StudentNumber != "" {
			score += 10
		}
	}
	if p.PositionTitle != "" {
		score += 10
	}
	if p.SupervisorID != nil && *p.SupervisorID != "" {
		score += 10
	}
	if score > 100 {
		score = 100
	}
	return score
}

// codeNumberFor prefixes the identification number matching the user type.
func codeNumberFor(userType domain.UserType, employeeNumber, studentNumber string) string {
	switch userType {
	case domain.UserTypeEmployee:
		if employeeNumber != "" {
			return "EMP-" + employeeNumber
		}
	case domain.UserTypeStudent:
		if studentNumber != "" {
			return "STU-" + studentNumber
		}
	}
	return ""
}

// usernameFromEmail derives a default username for provider sign-ins. A
// random suffix keeps first sign-ins from colliding on common local parts.
func usernameFromEmail(email string) string {
	local := email
	if at := strings.Index(email, "@"); at > 0 {
		local = email[:at]
	}
	suffix, err := utils.GenerateSecureRandomString(4)
	if err != nil {
		suffix = uuid.NewString()[:4]
	}
	return strings.ToLower(local) + "-" + suffix
}
