package domain

import "time"

// UserType distinguishes the two kinds of portal accounts.
type UserType string

const (
	UserTypeEmployee UserType = "employee"
	UserTypeStudent  UserType = "student"
)

// User represents a portal account. Password-less accounts (Google sign-in)
// have an empty PasswordHash and a non-empty AuthProvider/ProviderUserID pair.
type User struct {
	UserID         string     `json:"userID"` // Primary key (UUID)
	Email          string     `json:"email"`
	Username       string     `json:"username"`
	PasswordHash   string     `json:"-"`
	FullName       string     `json:"fullName"`
	Age            *int       `json:"age,omitempty"`
	Birthday       *time.Time `json:"birthday,omitempty"`
	Gender         string     `json:"gender,omitempty"`
	Location       string     `json:"location,omitempty"`
	AuthProvider   string     `json:"authProvider,omitempty"`
	ProviderUserID string     `json:"-"`
	IsActive       bool       `json:"isActive"`
	IsVerified     bool       `json:"isVerified"`
	AuditFields
}

// Profile holds directory placement and identification details for a user.
// One row per user, created lazily on first profile save.
type Profile struct {
	ProfileID            string   `json:"profileID"`
	UserID               string   `json:"userID"`
	FocalPerson          string   `json:"focalPerson,omitempty"`
	UserType             UserType `json:"userType"`
	EmployeeNumber       string   `json:"employeeNumber,omitempty"`
	StudentNumber        string   `json:"studentNumber,omitempty"`
	CodeNumber           string   `json:"codeNumber,omitempty"`
	DepartmentID         *string  `json:"departmentID,omitempty"`
	CampusID             *string  `json:"campusID,omitempty"`
	PositionTitle        string   `json:"positionTitle,omitempty"`
	SupervisorID         *string  `json:"supervisorID,omitempty"`
	CompletionPercentage int      `json:"profileCompletionPercentage"`
	AuditFields
}

// ProfileView is a Profile joined with directory and supervisor names.
type ProfileView struct {
	Profile
	DepartmentName string `json:"departmentName,omitempty"`
	DepartmentCode string `json:"departmentCode,omitempty"`
	CampusName     string `json:"campusName,omitempty"`
	CampusCode     string `json:"campusCode,omitempty"`
	SupervisorName string `json:"supervisorName,omitempty"`
}
