package dto

import "time"

// UpdateProfileRequest contains updatable profile attributes
type UpdateProfileRequest struct {
	Username    *string `json:"username" validate:"omitempty,min=3,max=50"`
	PhoneNumber *string `json:"phoneNumber" validate:"omitempty,phone"`
	Gender      *string `json:"gender" validate:"omitempty,gender"`
}

// ChangePasswordRequest contains password change data
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// UpdateUserRoleRequest contains an administrative role change
type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,user_role"`
}

// UserResponse represents a user profile
type UserResponse struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListUsersResponse represents an administrative user listing
type ListUsersResponse struct {
	Users      []UserResponse `json:"users"`
	Pagination PaginationInfo `json:"pagination"`
}
