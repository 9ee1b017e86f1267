package services

import (
	"context"

	"github.com/campuskit/university_portal_app/internal/core/domain"
)

// DirectorySvcFacade exposes the campus and department directory.
type DirectorySvcFacade interface {
	// ListCampuses retrieves active campuses with aggregate counts.
	ListCampuses(ctx context.Context) ([]domain.CampusView, error)

	// ListDepartments retrieves active departments with joined names and counts.
	ListDepartments(ctx context.Context) ([]domain.DepartmentView, error)

	// ListDepartmentsByCampus retrieves active departments for one campus.
	ListDepartmentsByCampus(ctx context.Context, campusID string) ([]domain.DepartmentView, error)
}
