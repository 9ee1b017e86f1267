package repositories

import (
	"context"

	"github.com/campuskit/university_portal_app/internal/core/domain"
)

// DashboardReader defines the aggregate read operations behind the dashboard
// and statistics endpoints. Pure reads, no side effects.
type DashboardReader interface {
	// FindRecentRequests retrieves the user's most recently submitted leave
	// requests joined with type names, newest first.
	FindRecentRequests(ctx context.Context, userID string, limit int) ([]domain.LeaveRequestView, error)

	// FindNotifications retrieves unexpired notifications for a user, newest first.
	FindNotifications(ctx context.Context, userID string, limit int) ([]domain.Notification, error)

	// FindUpcomingHolidays retrieves holidays from today onward, soonest first.
	FindUpcomingHolidays(ctx context.Context, limit int) ([]domain.Holiday, error)

	// FindStatistics retrieves system-wide counts.
	FindStatistics(ctx context.Context) (*domain.Statistics, error)
}

// DashboardRepositoryFacade combines dashboard repository interfaces.
type DashboardRepositoryFacade interface {
	DashboardReader
}
