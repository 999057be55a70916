package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"eyesonplants/internal/dto"
	"eyesonplants/internal/models"
	"eyesonplants/internal/repositories"
)

var (
	ErrDeviceTokenNotFound = errors.New("device token not found")
	ErrNoRegisteredDevices = errors.New("no registered devices for this user")
	ErrInvalidDeviceType   = errors.New("invalid device type")
)

// NotificationService handles device registration and push delivery. Tokens
// that the provider reports as dead are pruned on the spot.
type NotificationService struct {
	deviceRepo repositories.DeviceTokenRepositoryInterface
	sender     PushSenderInterface
	logger     *slog.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	deviceRepo repositories.DeviceTokenRepositoryInterface,
	sender PushSenderInterface,
	logger *slog.Logger,
) NotificationServiceInterface {
	return &NotificationService{
		deviceRepo: deviceRepo,
		sender:     sender,
		logger:     logger,
	}
}

// RegisterDevice stores or reassigns a push token for the user. A token
// previously bound to another account moves to this one.
func (s *NotificationService) RegisterDevice(userID int64, req *dto.RegisterDeviceRequest) (*dto.DeviceTokenResponse, error) {
	deviceType := models.DeviceType(req.DeviceType)
	if !deviceType.Valid() {
		return nil, ErrInvalidDeviceType
	}

	token := &models.DeviceToken{
		UserID:      userID,
		Token:       req.Token,
		DeviceType:  deviceType,
		DeviceModel: req.DeviceModel,
		AppVersion:  req.AppVersion,
	}

	if err := s.deviceRepo.Upsert(token); err != nil {
		return nil, fmt.Errorf("failed to register device: %w", err)
	}

	stored, err := s.deviceRepo.GetByToken(req.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to reload device token: %w", err)
	}

	s.logger.Info("device registered",
		"user_id", userID,
		"device_type", deviceType,
		"device_id", stored.ID)

	resp := toDeviceTokenResponse(stored)
	return &resp, nil
}

// UnregisterDevice removes one of the user's push tokens
func (s *NotificationService) UnregisterDevice(userID int64, token string) error {
	stored, err := s.deviceRepo.GetByToken(token)
	if err != nil {
		if errors.Is(err, repositories.ErrDeviceTokenNotFound) {
			return ErrDeviceTokenNotFound
		}
		return fmt.Errorf("failed to get device token: %w", err)
	}

	if stored.UserID != userID {
		return ErrDeviceTokenNotFound
	}

	if err := s.deviceRepo.DeleteByToken(token); err != nil {
		return fmt.Errorf("failed to unregister device: %w", err)
	}

	return nil
}

// ListDevices returns the user's registered devices
func (s *NotificationService) ListDevices(userID int64) ([]dto.DeviceTokenResponse, error) {
	tokens, err := s.deviceRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	responses := make([]dto.DeviceTokenResponse, 0, len(tokens))
	for _, token := range tokens {
		responses = append(responses, toDeviceTokenResponse(token))
	}

	return responses, nil
}

// SendToUser delivers a notification to every device the user has
// registered. Delivery is best effort per device.
func (s *NotificationService) SendToUser(ctx context.Context, req *dto.SendNotificationRequest) (*dto.NotificationResult, error) {
	tokens, err := s.deviceRepo.GetByUserID(req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get device tokens: %w", err)
	}

	if len(tokens) == 0 {
		return nil, ErrNoRegisteredDevices
	}

	result := &dto.NotificationResult{}
	for _, token := range tokens {
		message := &PushMessage{
			To: token.Token,
			Notification: PushNotification{
				Title: req.Title,
				Body:  req.Body,
			},
			Data: req.Data,
		}

		if err := s.sender.Send(ctx, message); err != nil {
			result.Failed++

			if errors.Is(err, ErrTokenUnregistered) {
				if delErr := s.deviceRepo.DeleteByToken(token.Token); delErr != nil {
					s.logger.Warn("failed to prune dead device token",
						"error", delErr,
						"device_id", token.ID)
				}
				continue
			}

			s.logger.Warn("push delivery failed",
				"error", err,
				"user_id", req.UserID,
				"device_id", token.ID)
			continue
		}

		result.Delivered++
	}

	return result, nil
}

// SendToTopic delivers a notification to a topic
func (s *NotificationService) SendToTopic(ctx context.Context, req *dto.TopicNotificationRequest) error {
	if err := s.sender.SendToTopic(ctx, req.Topic, PushNotification{
		Title: req.Title,
		Body:  req.Body,
	}, req.Data); err != nil {
		return fmt.Errorf("failed to send topic notification: %w", err)
	}

	return nil
}

// SubscribeToTopic adds a registered device to a topic
func (s *NotificationService) SubscribeToTopic(ctx context.Context, req *dto.TopicSubscriptionRequest) error {
	if _, err := s.deviceRepo.GetByToken(req.Token); err != nil {
		if errors.Is(err, repositories.ErrDeviceTokenNotFound) {
			return ErrDeviceTokenNotFound
		}
		return fmt.Errorf("failed to get device token: %w", err)
	}

	if err := s.sender.Subscribe(ctx, req.Token, req.Topic); err != nil {
		return fmt.Errorf("failed to subscribe to topic: %w", err)
	}

	return nil
}

// UnsubscribeFromTopic removes a registered device from a topic
func (s *NotificationService) UnsubscribeFromTopic(ctx context.Context, req *dto.TopicSubscriptionRequest) error {
	if _, err := s.deviceRepo.GetByToken(req.Token); err != nil {
		if errors.Is(err, repositories.ErrDeviceTokenNotFound) {
			return ErrDeviceTokenNotFound
		}
		return fmt.Errorf("failed to get device token: %w", err)
	}

	if err := s.sender.Unsubscribe(ctx, req.Token, req.Topic); err != nil {
		return fmt.Errorf("failed to unsubscribe from topic: %w", err)
	}

	return nil
}

func toDeviceTokenResponse(token *models.DeviceToken) dto.DeviceTokenResponse {
	return dto.DeviceTokenResponse{
		ID:          token.ID,
		Token:       token.Token,
		DeviceType:  string(token.DeviceType),
		DeviceModel: token.DeviceModel,
		AppVersion:  token.AppVersion,
		CreatedAt:   token.CreatedAt,
	}
}
