package dto

import (
	"time"

	"github.com/campuskit/university_portal_app/internal/core/domain"
)

// DashboardResponse is the payload of GET /dashboard.
type DashboardResponse struct {
	User             UserProfile            `json:"user"`
	RecentLeaves     []LeaveRequestResponse `json:"recentLeaves"`
	Notifications    []NotificationResponse `json:"notifications"`
	UpcomingHolidays []HolidayResponse      `json:"upcomingHolidays"`
	Stats            DashboardStats         `json:"stats"`
}

// DashboardStats are the small counters shown on the dashboard header.
type DashboardStats struct {
	TotalLeaves         int `json:"totalLeaves"`
	UnreadNotifications int `json:"unreadNotifications"`
	UpcomingHolidays    int `json:"upcomingHolidays"`
}

// NotificationResponse is one dashboard notification.
type NotificationResponse struct {
	NotificationID string `json:"notificationId"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	Type           string `json:"type"`
	IsRead         bool   `json:"isRead"`
	CreatedAt      string `json:"createdAt"`
}

// HolidayResponse is one upcoming holiday.
type HolidayResponse struct {
	HolidayName string `json:"holidayName"`
	HolidayDate string `json:"holidayDate"`
	HolidayType string `json:"holidayType"`
}

// ToNotificationResponses converts domain notifications.
func ToNotificationResponses(notifications []domain.Notification) []NotificationResponse {
	out := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		out[i] = NotificationResponse{
			NotificationID: n.NotificationID,
			Title:          n.Title,
			Message:        n.Message,
			Type:           n.Type,
			IsRead:         n.IsRead,
			CreatedAt:      n.CreatedAt.Format(time.RFC3339),
		}
	}
	return out
}

// ToHolidayResponses converts domain holidays.
func ToHolidayResponses(holidays []domain.Holiday) []HolidayResponse {
	out := make([]HolidayResponse, len(holidays))
	for i, h := range holidays {
		out[i] = HolidayResponse{
			HolidayName: h.HolidayName,
			HolidayDate: h.HolidayDate.Format(dateLayout),
			HolidayType: h.HolidayType,
		}
	}
	return out
}

// StatisticsResponse is the payload of GET /statistics.
type StatisticsResponse struct {
	Statistics domain.Statistics `json:"statistics"`
}
