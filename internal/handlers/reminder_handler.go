package handlers

import (
	"net/http"
	"strconv"

	"eyesonplants/internal/dto"
	"eyesonplants/internal/errors"
	"eyesonplants/internal/services"

	"github.com/labstack/echo/v4"
)

// ReminderHandler handles care reminder endpoints
type ReminderHandler struct {
	reminderService services.ReminderServiceInterface
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(reminderService services.ReminderServiceInterface) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// CreateReminder schedules a care reminder for one of the user's plants
func (h *ReminderHandler) CreateReminder(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateReminderRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	reminder, err := h.reminderService.CreateReminder(userID, &req)
	if err != nil {
		switch err {
		case services.ErrPlantNotFound:
			return SendError(c, errors.PlantNotFound)
		case services.ErrPlantNotOwned:
			return SendError(c, errors.PlantNotOwned)
		case services.ErrInvalidReminderType:
			return SendError(c, errors.ReminderInvalidType)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, reminder)
}

// ListReminders returns all of the user's reminders
func (h *ReminderHandler) ListReminders(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var reminders *dto.ListRemindersResponse
	if raw := c.QueryParam("plant_id"); raw != "" {
		plantID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil || plantID <= 0 {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid plant_id filter"))
		}
		reminders, err = h.reminderService.ListPlantReminders(userID, plantID)
	} else {
		reminders, err = h.reminderService.ListReminders(userID)
	}
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, reminders)
}

// UpdateReminder reschedules or retypes a reminder
func (h *ReminderHandler) UpdateReminder(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	reminderID, err := getIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid reminder ID"))
	}

	var req dto.UpdateReminderRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	reminder, err := h.reminderService.UpdateReminder(userID, reminderID, &req)
	if err != nil {
		switch err {
		case services.ErrReminderNotFound:
			return SendError(c, errors.ReminderNotFound)
		case services.ErrReminderNotOwned:
			return SendError(c, errors.ReminderNotFound)
		case services.ErrInvalidReminderType:
			return SendError(c, errors.ReminderInvalidType)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, reminder)
}

// DeleteReminder cancels a reminder
func (h *ReminderHandler) DeleteReminder(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	reminderID, err := getIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid reminder ID"))
	}

	if err := h.reminderService.DeleteReminder(userID, reminderID); err != nil {
		switch err {
		case services.ErrReminderNotFound:
			return SendError(c, errors.ReminderNotFound)
		case services.ErrReminderNotOwned:
			return SendError(c, errors.ReminderNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Reminder deleted successfully",
	})
}
