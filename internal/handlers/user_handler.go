package handlers

import (
	"net/http"

	"eyesonplants/internal/dto"
	"eyesonplants/internal/errors"
	"eyesonplants/internal/services"

	"github.com/labstack/echo/v4"
)

// UserHandler handles profile and account endpoints
type UserHandler struct {
	userService     services.UserServiceInterface
	passwordService services.PasswordServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	userService services.UserServiceInterface,
	passwordService services.PasswordServiceInterface,
) *UserHandler {
	return &UserHandler{
		userService:     userService,
		passwordService: passwordService,
	}
}

// GetProfile returns the authenticated user's profile
// @Summary Get own profile
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Failure 404 {object} errors.ErrorResponse "User not found - USER_001"
// @Router /users/me [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	profile, err := h.userService.GetProfile(userID)
	if err != nil {
		if err == services.ErrUserNotFound {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile updates the authenticated user's profile attributes
// @Summary Update own profile
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile changes"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Router /users/me [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	profile, err := h.userService.UpdateProfile(userID, &req)
	if err != nil {
		switch err {
		case services.ErrUserNotFound:
			return SendError(c, errors.UserNotFound)
		case services.ErrUsernameTaken:
			return SendError(c, errors.UserAlreadyExists)
		case services.ErrNothingToUpdate:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("No fields to update"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}

// ChangePassword changes the authenticated user's password
// @Summary Change own password
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Password change"
// @Success 200 {object} SuccessResponse{message=string}
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "Wrong current password - AUTH_001"
// @Router /users/me/password [put]
func (h *UserHandler) ChangePassword(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.passwordService.ChangePassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		switch err {
		case services.ErrCurrentPasswordWrong:
			return SendError(c, errors.AuthInvalidCredentials)
		case services.ErrUserNotFound:
			return SendError(c, errors.UserNotFound)
		case services.ErrSamePassword:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("New password must be different"))
		case services.ErrPasswordTooShort, services.ErrPasswordTooLong, services.ErrPasswordEmpty:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Password changed successfully",
	})
}

// DeleteAccount soft-deletes the authenticated user's account. Already-issued
// tokens stop working on the next request because the gate re-checks the
// account.
// @Summary Delete own account
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{message=string}
// @Failure 401 {object} errors.ErrorResponse "Unauthorized - AUTH_002"
// @Router /users/me [delete]
func (h *UserHandler) DeleteAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	ipAddress := getClientIP(c)
	userAgent := c.Request().UserAgent()

	if err := h.userService.DeleteAccount(userID, ipAddress, userAgent); err != nil {
		if err == services.ErrUserNotFound {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Account deleted successfully",
	})
}

// ListUsers returns a paginated user listing for administrators
// @Summary List users (admin)
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.ListUsersResponse
// @Failure 403 {object} errors.ErrorResponse "Forbidden - AUTH_004"
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	var params dto.PaginationParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid pagination parameters"))
	}

	var users *dto.ListUsersResponse
	var err error
	if query := c.QueryParam("q"); query != "" {
		users, err = h.userService.SearchUsers(query, params)
	} else {
		users, err = h.userService.ListUsers(params)
	}
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, users)
}

// UpdateUserRole changes another user's role. Admin only; admins cannot
// change their own role.
// @Summary Update user role (admin)
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.UpdateUserRoleRequest true "New role"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} errors.ErrorResponse "Validation error - VALIDATION_001"
// @Failure 404 {object} errors.ErrorResponse "User not found - USER_001"
// @Router /users/{id}/role [put]
func (h *UserHandler) UpdateUserRole(c echo.Context) error {
	adminID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	targetID, err := getIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.UserInvalidID)
	}

	var req dto.UpdateUserRoleRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	ipAddress := getClientIP(c)
	userAgent := c.Request().UserAgent()

	profile, err := h.userService.UpdateUserRole(targetID, &req, adminID, ipAddress, userAgent)
	if err != nil {
		switch err {
		case services.ErrUserNotFound:
			return SendError(c, errors.UserNotFound)
		case services.ErrInvalidRole:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid role"))
		case services.ErrSelfRoleChange:
			return SendError(c, errors.AuthInsufficientPermission, errors.WithDetails("Cannot change your own role"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}
