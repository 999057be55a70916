package handlers

import (
	"net/http"

	"eyesonplants/internal/dto"
	"eyesonplants/internal/errors"
	"eyesonplants/internal/services"

	"github.com/labstack/echo/v4"
)

// NotificationHandler handles device registration and push notification
// endpoints
type NotificationHandler struct {
	notificationService services.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService services.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// RegisterDevice registers (or refreshes) a push device token for the user
func (h *NotificationHandler) RegisterDevice(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	device, err := h.notificationService.RegisterDevice(userID, &req)
	if err != nil {
		if err == services.ErrInvalidDeviceType {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid device type"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, device)
}

// UnregisterDevice removes one of the user's device tokens
func (h *NotificationHandler) UnregisterDevice(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	token := c.Param("token")
	if token == "" {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Device token is required"))
	}

	if err := h.notificationService.UnregisterDevice(userID, token); err != nil {
		if err == services.ErrDeviceTokenNotFound {
			return SendError(c, errors.DeviceTokenNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Device unregistered",
	})
}

// ListDevices returns the user's registered devices
func (h *NotificationHandler) ListDevices(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	devices, err := h.notificationService.ListDevices(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"devices": devices,
	})
}

// SendToUser pushes a notification to every device of one user. Admin only.
func (h *NotificationHandler) SendToUser(c echo.Context) error {
	var req dto.SendNotificationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := h.notificationService.SendToUser(c.Request().Context(), &req)
	if err != nil {
		switch err {
		case services.ErrNoRegisteredDevices:
			return SendError(c, errors.NotificationNoRecipient)
		case services.ErrPushDisabled:
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Push notifications are disabled"))
		}
		return SendError(c, errors.NotificationSendFailed)
	}

	return c.JSON(http.StatusOK, result)
}

// SendToTopic pushes a notification to a topic. Admin only.
func (h *NotificationHandler) SendToTopic(c echo.Context) error {
	var req dto.TopicNotificationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.notificationService.SendToTopic(c.Request().Context(), &req); err != nil {
		if err == services.ErrPushDisabled {
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Push notifications are disabled"))
		}
		return SendError(c, errors.NotificationSendFailed)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Notification sent",
	})
}

// SubscribeToTopic subscribes one of the user's devices to a topic
func (h *NotificationHandler) SubscribeToTopic(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.TopicSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.notificationService.SubscribeToTopic(c.Request().Context(), &req); err != nil {
		if err == services.ErrDeviceTokenNotFound {
			return SendError(c, errors.DeviceTokenNotFound)
		}
		return SendError(c, errors.NotificationSendFailed)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Subscribed to topic",
	})
}

// UnsubscribeFromTopic unsubscribes one of the user's devices from a topic
func (h *NotificationHandler) UnsubscribeFromTopic(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.TopicSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.notificationService.UnsubscribeFromTopic(c.Request().Context(), &req); err != nil {
		if err == services.ErrDeviceTokenNotFound {
			return SendError(c, errors.DeviceTokenNotFound)
		}
		return SendError(c, errors.NotificationSendFailed)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Unsubscribed from topic",
	})
}
