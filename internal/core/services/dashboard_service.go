package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/campuskit/university_portal_app/internal/apperrors"
	"github.com/campuskit/university_portal_app/internal/core/domain"
	portsrepo "github.com/campuskit/university_portal_app/internal/core/ports/repositories"
	portssvc "github.com/campuskit/university_portal_app/internal/core/ports/services"
	"github.com/campuskit/university_portal_app/internal/dto"
)

const (
	recentLeavesLimit  = 5
	notificationsLimit = 10
	holidaysLimit      = 5
)

// dashboardService assembles the aggregate dashboard view from the user,
// leave and dashboard repositories.
type dashboardService struct {
	userRepo      portsrepo.UserRepositoryFacade
	dashboardRepo portsrepo.DashboardRepositoryFacade
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(userRepo portsrepo.UserRepositoryFacade, dashboardRepo portsrepo.DashboardRepositoryFacade) portssvc.DashboardSvcFacade {
	return &dashboardService{
		userRepo:      userRepo,
		dashboardRepo: dashboardRepo,
	}
}

var _ portssvc.DashboardSvcFacade = (*dashboardService)(nil)

func (s *dashboardService) GetDashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.userRepo.FindProfileByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load profile: %w", err)
		}
		// no profile yet, the dashboard renders without one
		profile = nil
	}

	recent, err := s.dashboardRepo.FindRecentRequests(ctx, userID, recentLeavesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent leave requests: %w", err)
	}
	notifications, err := s.dashboardRepo.FindNotifications(ctx, userID, notificationsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load notifications: %w", err)
	}
	holidays, err := s.dashboardRepo.FindUpcomingHolidays(ctx, holidaysLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load holidays: %w", err)
	}

	unread := 0
	for _, n := range notifications {
		if !n.IsRead {
			unread++
		}
	}

	recentLeaves := make([]dto.LeaveRequestResponse, len(recent))
	for i, r := range recent {
		recentLeaves[i] = dto.ToLeaveRequestResponse(r)
	}

	return &dto.DashboardResponse{
		User:             dto.ToUserProfile(user, profile),
		RecentLeaves:     recentLeaves,
		Notifications:    dto.ToNotificationResponses(notifications),
		UpcomingHolidays: dto.ToHolidayResponses(holidays),
		Stats: dto.DashboardStats{
			TotalLeaves:         len(recent),
			UnreadNotifications: unread,
			UpcomingHolidays:    len(holidays),
		},
	}, nil
}

func (s *dashboardService) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	return s.dashboardRepo.FindStatistics(ctx)
}
