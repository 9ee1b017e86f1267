package services

import (
	"context"

	"github.com/campuskit/university_portal_app/internal/core/domain"
	"github.com/campuskit/university_portal_app/internal/dto"
)

// DashboardSvcFacade aggregates the data behind the dashboard and statistics
// endpoints.
type DashboardSvcFacade interface {
	// GetDashboard assembles the user's dashboard view.
	GetDashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error)

	// GetStatistics retrieves system-wide counts.
	GetStatistics(ctx context.Context) (*domain.Statistics, error)
}
