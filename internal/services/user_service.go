package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"eyesonplants/internal/dto"
	"eyesonplants/internal/models"
	"eyesonplants/internal/repositories"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidRole     = errors.New("invalid role")
	ErrSelfRoleChange  = errors.New("cannot change your own role")
	ErrUsernameTaken   = errors.New("username is already taken")
	ErrNothingToUpdate = errors.New("no fields to update")
)

// UserService handles profile and account management
type UserService struct {
	userRepo  repositories.UserRepositoryInterface
	auditRepo repositories.AuditLogRepositoryInterface
	metrics   MetricsRecorderInterface
	logger    *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(
	userRepo repositories.UserRepositoryInterface,
	auditRepo repositories.AuditLogRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) UserServiceInterface {
	return &UserService{
		userRepo:  userRepo,
		auditRepo: auditRepo,
		metrics:   metrics,
		logger:    logger,
	}
}

// GetProfile returns the profile of the given user
func (s *UserService) GetProfile(userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

// UpdateProfile applies the provided profile changes. Only set fields are
// touched.
func (s *UserService) UpdateProfile(userID int64, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	fields := map[string]interface{}{}

	if req.Username != nil && *req.Username != user.Username {
		existing, err := s.userRepo.GetByUsername(*req.Username)
		if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to check username: %w", err)
		}
		if existing != nil {
			return nil, ErrUsernameTaken
		}
		fields["username"] = *req.Username
	}

	if req.PhoneNumber != nil {
		fields["phone_number"] = *req.PhoneNumber
	}

	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}

	if len(fields) == 0 {
		return nil, ErrNothingToUpdate
	}

	if err := s.userRepo.UpdateFields(userID, fields); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	user, err = s.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}

	resp := ToUserResponse(user)
	return &resp, nil
}

// DeleteAccount soft deletes the user's account. Outstanding tokens become
// useless immediately because the per-request account check stops matching.
func (s *UserService) DeleteAccount(userID int64, ipAddress, userAgent string) error {
	if err := s.userRepo.Delete(userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.createAuditLog(&userID, models.AuditActionUserDeleted, "user", strconv.FormatInt(userID, 10), ipAddress, userAgent, nil)

	return nil
}

// ListUsers returns a paginated listing of all accounts
func (s *UserService) ListUsers(params dto.PaginationParams) (*dto.ListUsersResponse, error) {
	params.Normalize()

	users, total, err := s.userRepo.ListUsers(params.Offset(), params.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	// The unfiltered total is the live account count.
	s.metrics.RecordGauge("active_users", float64(total), nil)

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, ToUserResponse(user))
	}

	return &dto.ListUsersResponse{
		Users:      responses,
		Pagination: dto.NewPaginationInfo(params, total),
	}, nil
}

// SearchUsers returns accounts whose username or email matches the query
func (s *UserService) SearchUsers(query string, params dto.PaginationParams) (*dto.ListUsersResponse, error) {
	params.Normalize()

	users, total, err := s.userRepo.SearchUsers(query, params.Offset(), params.Size)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, ToUserResponse(user))
	}

	return &dto.ListUsersResponse{
		Users:      responses,
		Pagination: dto.NewPaginationInfo(params, total),
	}, nil
}

// UpdateUserRole changes a user's role (admin operation)
func (s *UserService) UpdateUserRole(userID int64, req *dto.UpdateUserRoleRequest, performedBy int64, ipAddress, userAgent string) (*dto.UserResponse, error) {
	if userID == performedBy {
		return nil, ErrSelfRoleChange
	}

	role := models.Role(req.Role)
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	oldRole := user.Role
	if err := s.userRepo.UpdateRole(userID, role); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}

	metadata := map[string]interface{}{
		"old_role":     string(oldRole),
		"new_role":     string(role),
		"performed_by": performedBy,
	}
	s.createAuditLog(&userID, models.AuditActionUpdate, "user_role", strconv.FormatInt(userID, 10), ipAddress, userAgent, metadata)

	user.Role = role
	resp := ToUserResponse(user)
	return &resp, nil
}

func (s *UserService) createAuditLog(userID *int64, action, resource, resourceID, ipAddress, userAgent string, metadata map[string]interface{}) {
	log := &models.AuditLog{
		UserID:     userID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata:   metadata,
	}

	if err := s.auditRepo.Create(log); err != nil {
		s.logger.Error("failed to create audit log",
			"error", err,
			"action", action,
			"resource", resource,
			"resource_id", resourceID)
	}
}

// ToUserResponse converts a user model to its API representation.
func ToUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Gender:      string(user.Gender),
		Role:        string(user.Role),
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}
