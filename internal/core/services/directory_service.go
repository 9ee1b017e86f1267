package services

import (
	"context"

	"github.com/campuskit/university_portal_app/internal/core/domain"
	portsrepo "github.com/campuskit/university_portal_app/internal/core/ports/repositories"
	portssvc "github.com/campuskit/university_portal_app/internal/core/ports/services"
)

// directoryService exposes the campus and department reference data. Thin
// pass-through; the aggregate counts are computed in SQL.
type directoryService struct {
	directoryRepo portsrepo.DirectoryRepositoryFacade
}

// NewDirectoryService creates a new directory service.
func NewDirectoryService(directoryRepo portsrepo.DirectoryRepositoryFacade) portssvc.DirectorySvcFacade {
	return &directoryService{directoryRepo: directoryRepo}
}

var _ portssvc.DirectorySvcFacade = (*directoryService)(nil)

func (s *directoryService) ListCampuses(ctx context.Context) ([]domain.CampusView, error) {
	return s.directoryRepo.ListCampuses(ctx)
}

func (s *directoryService) ListDepartments(ctx context.Context) ([]domain.DepartmentView, error) {
	return s.directoryRepo.ListDepartments(ctx)
}

func (s *directoryService) ListDepartmentsByCampus(ctx context.Context, campusID string) ([]domain.DepartmentView, error) {
	return s.directoryRepo.ListDepartmentsByCampus(ctx, campusID)
}
