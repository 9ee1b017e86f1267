package repositories

import (
	"context"

	"github.com/campuskit/university_portal_app/internal/core/domain"
)

// DirectoryReader defines read operations for campus and department data.
// The directory is reference data; there are no write operations here, rows
// are managed by administrators outside this service.
type DirectoryReader interface {
	// ListCampuses retrieves active campuses with department/user counts.
	ListCampuses(ctx context.Context) ([]domain.CampusView, error)

	// ListDepartments retrieves active departments with campus, head and member counts.
	ListDepartments(ctx context.Context) ([]domain.DepartmentView, error)

	// ListDepartmentsByCampus retrieves active departments for one campus with
	// employee/student membership counts.
	ListDepartmentsByCampus(ctx context.Context, campusID string) ([]domain.DepartmentView, error)
}

// DirectoryRepositoryFacade combines directory repository interfaces.
type DirectoryRepositoryFacade interface {
	DirectoryReader
}
