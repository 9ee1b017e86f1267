package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/campuskit/university_portal_app/internal/apperrors"
	"github.com/campuskit/university_portal_app/internal/core/domain"
	portsrepo "github.com/campuskit/university_portal_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxUserRepository struct {
	pool *pgxpool.Pool
}

// newPgxUserRepository creates a new repository for user and profile data.
func newPgxUserRepository(pool *pgxpool.Pool) *pgxUserRepository {
	return &pgxUserRepository{pool: pool}
}

// Ensure pgxUserRepository implements the facade
var _ portsrepo.UserRepositoryFacade = (*pgxUserRepository)(nil)

const userColumns = `user_id, email, username, password_hash, full_name, age, birthday, gender, location,
	auth_provider, provider_user_id, is_active, is_verified, created_at, created_by, last_updated_at, last_updated_by`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.FullName,
		&user.Age,
		&user.Birthday,
		&user.Gender,
		&user.Location,
		&user.AuthProvider,
		&user.ProviderUserID,
		&user.IsActive,
		&user.IsVerified,
		&user.CreatedAt,
		&user.CreatedBy,
		&user.LastUpdatedAt,
		&user.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *pgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
        INSERT INTO users (` + userColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
    `
	_, err := r.pool.Exec(ctx, query,
		user.UserID,
		user.Email,
		user.Username,
		user.PasswordHash,
		user.FullName,
		user.Age,
		user.Birthday,
		user.Gender,
		user.Location,
		user.AuthProvider,
		user.ProviderUserID,
		user.IsActive,
		user.IsVerified,
		user.CreatedAt,
		user.CreatedBy,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		// 23505 = unique_violation (email or username already taken)
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *pgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	user, err := scanUser(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

func (r *pgxUserRepository) FindUserByLogin(ctx context.Context, login string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $1;`
	user, err := scanUser(r.pool.QueryRow(ctx, query, login))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by login: %w", err)
	}
	return user, nil
}

func (r *pgxUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider, providerUserID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE auth_provider = $1 AND provider_user_id = $2;`
	user, err := scanUser(r.pool.QueryRow(ctx, query, authProvider, providerUserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by provider details: %w", err)
	}
	return user, nil
}

func (r *pgxUserRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.ProfileView, error) {
	query := `
        SELECT p.profile_id, p.user_id, p.focal_person, p.user_type, p.employee_number, p.student_number,
               p.code_number, p.department_id, p.campus_id, p.position_title, p.supervisor_id,
               p.profile_completion_percentage,
               p.created_at, p.created_by, p.last_updated_at, p.last_updated_by,
               COALESCE(d.department_name, ''), COALESCE(d.department_code, ''),
               COALESCE(c.campus_name, ''), COALESCE(c.campus_code, ''),
               COALESCE(su.full_name, '')
        FROM user_profiles p
        LEFT JOIN departments d ON p.department_id = d.department_id
        LEFT JOIN campuses c ON p.campus_id = c.campus_id
        LEFT JOIN users su ON p.supervisor_id = su.user_id
        WHERE p.user_id = $1;
    `
	var view domain.ProfileView
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&view.ProfileID,
		&view.UserID,
		&view.FocalPerson,
		&view.UserType,
		&view.EmployeeNumber,
		&view.StudentNumber,
		&view.CodeNumber,
		&view.DepartmentID,
		&view.CampusID,
		&view.PositionTitle,
		&view.SupervisorID,
		&view.CompletionPercentage,
		&view.CreatedAt,
		&view.CreatedBy,
		&view.LastUpdatedAt,
		&view.LastUpdatedBy,
		&view.DepartmentName,
		&view.DepartmentCode,
		&view.CampusName,
		&view.CampusCode,
		&view.SupervisorName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile for user %s: %w", userID, err)
	}
	return &view, nil
}

func (r *pgxUserRepository) UpsertProfile(ctx context.Context, profile domain.Profile) error {
	query := `
        INSERT INTO user_profiles (profile_id, user_id, focal_person, user_type, employee_number, student_number,
            code_number, department_id, campus_id, position_title, supervisor_id,
            profile_completion_percentage, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
        ON CONFLICT (user_id) DO UPDATE SET
            focal_person = EXCLUDED.focal_person,
            user_type = EXCLUDED.user_type,
            employee_number = EXCLUDED.employee_number,
            student_number = EXCLUDED.student_number,
            code_number = EXCLUDED.code_number,
            department_id = EXCLUDED.department_id,
            campus_id = EXCLUDED.campus_id,
            position_title = EXCLUDED.position_title,
            supervisor_id = EXCLUDED.supervisor_id,
            profile_completion_percentage = EXCLUDED.profile_completion_percentage,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err := r.pool.Exec(ctx, query,
		profile.ProfileID,
		profile.UserID,
		profile.FocalPerson,
		profile.UserType,
		profile.EmployeeNumber,
		profile.StudentNumber,
		profile.CodeNumber,
		profile.DepartmentID,
		profile.CampusID,
		profile.PositionTitle,
		profile.SupervisorID,
		profile.CompletionPercentage,
		profile.CreatedAt,
		profile.CreatedBy,
		profile.LastUpdatedAt,
		profile.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile for user %s: %w", profile.UserID, err)
	}
	return nil
}
