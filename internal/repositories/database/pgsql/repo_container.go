package pgsql

import (
	portsrepo "github.com/campuskit/university_portal_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires all pgx repositories over a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	directoryRepo := newPgxDirectoryRepository(dbPool)
	leaveRepo := newPgxLeaveRepository(dbPool)
	dashboardRepo := newPgxDashboardRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:      userRepo,
		DirectoryRepo: directoryRepo,
		LeaveRepo:     leaveRepo,
		DashboardRepo: dashboardRepo,
	}
}
