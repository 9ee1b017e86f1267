package services

import (
	portsrepo "github.com/campuskit/university_portal_app/internal/core/ports/repositories"
	portssvc "github.com/campuskit/university_portal_app/internal/core/ports/services"
	"github.com/campuskit/university_portal_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Directory = NewDirectoryService(repos.DirectoryRepo)
	container.Leave = NewLeaveService(
		repos.LeaveRepo,
		WithAllowBackdatedLeave(cfg.AllowBackdatedLeave),
	)
	container.Dashboard = NewDashboardService(repos.UserRepo, repos.DashboardRepo)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}
