package dto

import "github.com/campuskit/university_portal_app/internal/core/domain"

// RegisterRequest is the payload for creating a new portal account.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"required"`
	Age      *int   `json:"age" binding:"omitempty,gte=15,lte=120"`
	Birthday string `json:"birthday" binding:"omitempty,datetime=2006-01-02"`
	Gender   string `json:"gender" binding:"omitempty,oneof=male female other"`
	Location string `json:"location"`
}

// RegisterResponse confirms account creation.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// LoginRequest carries credentials; Username accepts username or email.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    LoginedUser `json:"user"`
}

// LoginedUser is the subset of account data returned on login.
type LoginedUser struct {
	UserID          string `json:"userId"`
	Email           string `json:"email"`
	Username        string `json:"username"`
	FullName        string `json:"fullName"`
	UserType        string `json:"userType,omitempty"`
	Department      string `json:"department,omitempty"`
	Campus          string `json:"campus,omitempty"`
	ProfileComplete bool   `json:"profileComplete"`
}

// ToLoginedUser converts a user and optional profile view into the login DTO.
func ToLoginedUser(user *domain.User, profile *domain.ProfileView) LoginedUser {
	lu := LoginedUser{
		UserID:   user.UserID,
		Email:    user.Email,
		Username: user.Username,
		FullName: user.FullName,
	}
	if profile != nil {
		lu.UserType = string(profile.UserType)
		lu.Department = profile.DepartmentName
		lu.Campus = profile.CampusName
		lu.ProfileComplete = profile.CompletionPercentage == 100
	}
	return lu
}
