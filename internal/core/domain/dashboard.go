package domain

import "time"

// Notification is a message shown on the user's dashboard.
type Notification struct {
	NotificationID string     `json:"notificationID"`
	UserID         string     `json:"userID"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	Type           string     `json:"type"`
	IsRead         bool       `json:"isRead"`
	CreatedAt      time.Time  `json:"createdAt"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
}

// Holiday is a university-wide non-working day.
type Holiday struct {
	HolidayID   string    `json:"holidayID"`
	HolidayName string    `json:"holidayName"`
	HolidayDate time.Time `json:"holidayDate"`
	HolidayType string    `json:"holidayType"`
}

// Statistics holds system-wide counts for the admin statistics endpoint.
type Statistics struct {
	TotalUsers           int     `json:"totalUsers"`
	TotalDepartments     int     `json:"totalDepartments"`
	TotalCampuses        int     `json:"totalCampuses"`
	PendingLeaves        int     `json:"pendingLeaves"`
	AvgProfileCompletion float64 `json:"avgProfileCompletion"`
	VerifiedUsers        int     `json:"verifiedUsers"`
}
