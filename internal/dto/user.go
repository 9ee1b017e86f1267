package dto

import (
	"github.com/campuskit/university_portal_app/internal/core/domain"
)

// UpdateProfileRequest defines the data allowed when saving a profile.
type UpdateProfileRequest struct {
	FocalPerson    string  `json:"focal_person"`
	UserType       string  `json:"user_type" binding:"required,oneof=employee student"`
	EmployeeNumber string  `json:"employee_number"`
	StudentNumber  string  `json:"student_number"`
	DepartmentID   *string `json:"department_id"`
	CampusID       *string `json:"campus_id"`
	PositionTitle  string  `json:"position_title"`
	SupervisorID   *string `json:"supervisor_id"`
}

// UpdateProfileResponse reports the recomputed completion percentage.
type UpdateProfileResponse struct {
	Message           string `json:"message"`
	ProfileCompletion int    `json:"profileCompletion"`
}

// ProfileResponse wraps the joined profile view for the profile endpoint.
type ProfileResponse struct {
	User UserProfile `json:"user"`
}

// UserProfile merges account fields with the profile view.
type UserProfile struct {
	UserID               string  `json:"userId"`
	Email                string  `json:"email"`
	Username             string  `json:"username"`
	FullName             string  `json:"fullName"`
	Age                  *int    `json:"age,omitempty"`
	Gender               string  `json:"gender,omitempty"`
	Location             string  `json:"location,omitempty"`
	UserType             string  `json:"userType,omitempty"`
	FocalPerson          string  `json:"focalPerson,omitempty"`
	EmployeeNumber       string  `json:"employeeNumber,omitempty"`
	StudentNumber        string  `json:"studentNumber,omitempty"`
	CodeNumber           string  `json:"codeNumber,omitempty"`
	DepartmentID         *string `json:"departmentId,omitempty"`
	DepartmentName       string  `json:"departmentName,omitempty"`
	DepartmentCode       string  `json:"departmentCode,omitempty"`
	CampusID             *string `json:"campusId,omitempty"`
	CampusName           string  `json:"campusName,omitempty"`
	CampusCode           string  `json:"campusCode,omitempty"`
	PositionTitle        string  `json:"positionTitle,omitempty"`
	SupervisorName       string  `json:"supervisorName,omitempty"`
	ProfileCompletion    int     `json:"profileCompletionPercentage"`
	IsVerified           bool    `json:"isVerified"`
}

// ToUserProfile converts an account and its (possibly nil) profile view.
func ToUserProfile(user *domain.User, profile *domain.ProfileView) UserProfile {
	up := UserProfile{
		UserID:     user.UserID,
		Email:      user.Email,
		Username:   user.Username,
		FullName:   user.FullName,
		Age:        user.Age,
		Gender:     user.Gender,
		Location:   user.Location,
		IsVerified: user.IsVerified,
	}
	if profile != nil {
		up.UserType = string(profile.UserType)
		up.FocalPerson = profile.FocalPerson
		up.EmployeeNumber = profile.EmployeeNumber
		up.StudentNumber = profile.StudentNumber
		up.CodeNumber = profile.CodeNumber
		up.DepartmentID = profile.DepartmentID
		up.DepartmentName = profile.DepartmentName
		up.DepartmentCode = profile.DepartmentCode
		up.CampusID = profile.CampusID
		up.CampusName = profile.CampusName
		up.CampusCode = profile.CampusCode
		up.PositionTitle = profile.PositionTitle
		up.SupervisorName = profile.SupervisorName
		up.ProfileCompletion = profile.CompletionPercentage
	}
	return up
}
