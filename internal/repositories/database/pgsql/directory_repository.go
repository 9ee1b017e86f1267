package pgsql

import (
	"context"
	"fmt"

	"github.com/campuskit/university_portal_app/internal/core/domain"
	portsrepo "github.com/campuskit/university_portal_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgxDirectoryRepository struct {
	pool *pgxpool.Pool
}

// newPgxDirectoryRepository creates a new repository for campus and department reads.
func newPgxDirectoryRepository(pool *pgxpool.Pool) *pgxDirectoryRepository {
	return &pgxDirectoryRepository{pool: pool}
}

// Ensure pgxDirectoryRepository implements the facade
var _ portsrepo.DirectoryRepositoryFacade = (*pgxDirectoryRepository)(nil)

func (r *pgxDirectoryRepository) ListCampuses(ctx context.Context) ([]domain.CampusView, error) {
	query := `
        SELECT c.campus_id, c.campus_name, c.campus_code, c.location, c.is_active,
               COUNT(DISTINCT d.department_id) AS total_departments,
               COUNT(DISTINCT p.user_id) AS total_users
        FROM campuses c
        LEFT JOIN departments d ON c.campus_id = d.campus_id AND d.is_active = TRUE
        LEFT JOIN user_profiles p ON c.campus_id = p.campus_id
        WHERE c.is_active = TRUE
        GROUP BY c.campus_id
        ORDER BY c.campus_name;
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query campuses: %w", err)
	}
	defer rows.Close()

	campuses := []domain.CampusView{}
	for rows.Next() {
		var c domain.CampusView
		if err := rows.Scan(
			&c.CampusID,
			&c.CampusName,
			&c.CampusCode,
			&c.Location,
			&c.IsActive,
			&c.TotalDepartments,
			&c.TotalUsers,
		); err != nil {
			return nil, fmt.Errorf("failed to scan campus row: %w", err)
		}
		campuses = append(campuses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading campus rows: %w", err)
	}
	return campuses, nil
}

func (r *pgxDirectoryRepository) ListDepartments(ctx context.Context) ([]domain.DepartmentView, error) {
	query := `
        SELECT d.department_id, d.department_name, d.department_code, d.campus_id, d.is_active,
               COALESCE(c.campus_name, ''), COALESCE(c.location, ''),
               COALESCE(h.full_name, ''),
               COUNT(DISTINCT p.user_id) AS total_members
        FROM departments d
        LEFT JOIN campuses c ON d.campus_id = c.campus_id
        LEFT JOIN users h ON d.department_head_id = h.user_id
        LEFT JOIN user_profiles p ON d.department_id = p.department_id
        WHERE d.is_active = TRUE
        GROUP BY d.department_id, c.campus_name, c.location, h.full_name
        ORDER BY d.department_name;
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments: %w", err)
	}
	defer rows.Close()

	departments := []domain.DepartmentView{}
	for rows.Next() {
		var d domain.DepartmentView
		if err := rows.Scan(
			&d.DepartmentID,
			&d.DepartmentName,
			&d.DepartmentCode,
			&d.CampusID,
			&d.IsActive,
			&d.CampusName,
			&d.CampusLocation,
			&d.DepartmentHeadName,
			&d.TotalMembers,
		); err != nil {
			return nil, fmt.Errorf("failed to scan department row: %w", err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading department rows: %w", err)
	}
	return departments, nil
}

func (r *pgxDirectoryRepository) ListDepartmentsByCampus(ctx context.Context, campusID string) ([]domain.DepartmentView, error) {
	query := `
        SELECT d.department_id, d.department_name, d.department_code, d.campus_id, d.is_active,
               COALESCE(c.campus_name, ''),
               COUNT(DISTINCT CASE WHEN p.user_type = 'employee' THEN p.user_id END) AS total_employees,
               COUNT(DISTINCT CASE WHEN p.user_type = 'student' THEN p.user_id END) AS total_students
        FROM departments d
        LEFT JOIN campuses c ON d.campus_id = c.campus_id
        LEFT JOIN user_profiles p ON d.department_id = p.department_id
        WHERE d.campus_id = $1 AND d.is_active = TRUE
        GROUP BY d.department_id, c.campus_name
        ORDER BY d.department_name;
    `
	rows, err := r.pool.Query(ctx, query, campusID)
	if err != nil {
		return nil, fmt.Errorf("failed to query departments for campus %s: %w", campusID, err)
	}
	defer rows.Close()

	departments := []domain.DepartmentView{}
	for rows.Next() {
		var d domain.DepartmentView
		if err := rows.Scan(
			&d.DepartmentID,
			&d.DepartmentName,
			&d.DepartmentCode,
			&d.CampusID,
			&d.IsActive,
			&d.CampusName,
			&d.TotalEmployees,
			&d.TotalStudents,
		); err != nil {
			return nil, fmt.Errorf("failed to scan department row: %w", err)
		}
		d.TotalMembers = d.TotalEmployees + d.TotalStudents
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading department rows: %w", err)
	}
	return departments, nil
}
