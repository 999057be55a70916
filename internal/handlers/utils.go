package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"eyesonplants/internal/models"

	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getUserIDFromContext extracts the authenticated user's id from context.
// Returns ErrUnauthorized if no principal was attached to the request.
func getUserIDFromContext(c echo.Context) (int64, error) {
	userIDValue := c.Get("user_id")
	if userIDValue == nil {
		return 0, ErrUnauthorized
	}

	userID, ok := userIDValue.(int64)
	if !ok {
		return 0, ErrUnauthorized
	}

	return userID, nil
}

// getRoleFromContext extracts the authenticated user's role from context.
// Returns the empty role for anonymous requests.
func getRoleFromContext(c echo.Context) models.Role {
	roleValue := c.Get("user_role")
	if roleValue == nil {
		return ""
	}

	role, ok := roleValue.(models.Role)
	if !ok {
		return ""
	}

	return role
}

// getIsAdminFromContext extracts the is_admin boolean from context
// Returns false if the value is not set or not a boolean
func getIsAdminFromContext(c echo.Context) bool {
	isAdminValue := c.Get("is_admin")
	if isAdminValue == nil {
		return false
	}

	isAdmin, ok := isAdminValue.(bool)
	if !ok {
		return false
	}

	return isAdmin
}

// getIDParam parses a numeric path parameter.
func getIDParam(c echo.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return id, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}
