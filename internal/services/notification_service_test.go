package services_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"eyesonplants/internal/dto"
	"eyesonplants/internal/models"
	"eyesonplants/internal/repositories"
	"eyesonplants/internal/repositories/repository_mocks"
	"eyesonplants/internal/services"
	"eyesonplants/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type NotificationServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	deviceRepo *repository_mocks.MockDeviceTokenRepositoryInterface
	sender     *service_mocks.MockPushSenderInterface
	service    services.NotificationServiceInterface
	ctx        context.Context
}

func (s *NotificationServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.deviceRepo = repository_mocks.NewMockDeviceTokenRepositoryInterface(s.ctrl)
	s.sender = service_mocks.NewMockPushSenderInterface(s.ctrl)
	s.service = services.NewNotificationService(s.deviceRepo, s.sender, slog.Default())
	s.ctx = context.Background()
}

func (s *NotificationServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestNotificationServiceSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}

func (s *NotificationServiceTestSuite) TestRegisterDevice_Success() {
	req := &dto.RegisterDeviceRequest{
		Token:       "fcm-token-1",
		DeviceType:  "android",
		DeviceModel: "Pixel 9",
		AppVersion:  "2.4.0",
	}

	s.deviceRepo.EXPECT().Upsert(gomock.Any()).Return(nil).Times(1)
	s.deviceRepo.EXPECT().GetByToken(req.Token).Return(&models.DeviceToken{
		ID:          5,
		UserID:      101,
		Token:       req.Token,
		DeviceType:  models.DeviceAndroid,
		DeviceModel: req.DeviceModel,
		AppVersion:  req.AppVersion,
	}, nil).Times(1)

	resp, err := s.service.RegisterDevice(101, req)
	s.NoError(err)
	s.Equal(int64(5), resp.ID)
	s.Equal("android", resp.DeviceType)
}

func (s *NotificationServiceTestSuite) TestRegisterDevice_InvalidType() {
	resp, err := s.service.RegisterDevice(101, &dto.RegisterDeviceRequest{Token: "t", DeviceType: "toaster"})
	s.ErrorIs(err, services.ErrInvalidDeviceType)
	s.Nil(resp)
}

func (s *NotificationServiceTestSuite) TestUnregisterDevice_Success() {
	s.deviceRepo.EXPECT().GetByToken("fcm-token-1").Return(&models.DeviceToken{ID: 5, UserID: 101, Token: "fcm-token-1"}, nil).Times(1)
	s.deviceRepo.EXPECT().DeleteByToken("fcm-token-1").Return(nil).Times(1)

	s.NoError(s.service.UnregisterDevice(101, "fcm-token-1"))
}

func (s *NotificationServiceTestSuite) TestUnregisterDevice_ForeignTokenHidden() {
	s.deviceRepo.EXPECT().GetByToken("fcm-token-1").Return(&models.DeviceToken{ID: 5, UserID: 202, Token: "fcm-token-1"}, nil).Times(1)

	err := s.service.UnregisterDevice(101, "fcm-token-1")
	s.ErrorIs(err, services.ErrDeviceTokenNotFound)
}

func (s *NotificationServiceTestSuite) TestUnregisterDevice_NotFound() {
	s.deviceRepo.EXPECT().GetByToken("unknown").Return(nil, repositories.ErrDeviceTokenNotFound).Times(1)

	s.ErrorIs(s.service.UnregisterDevice(101, "unknown"), services.ErrDeviceTokenNotFound)
}

func (s *NotificationServiceTestSuite) TestListDevices() {
	tokens := []*models.DeviceToken{
		{ID: 5, UserID: 101, Token: "fcm-token-1", DeviceType: models.DeviceAndroid},
		{ID: 6, UserID: 101, Token: "fcm-token-2", DeviceType: models.DeviceIOS},
	}

	s.deviceRepo.EXPECT().GetByUserID(int64(101)).Return(tokens, nil).Times(1)

	resp, err := s.service.ListDevices(101)
	s.NoError(err)
	s.Len(resp, 2)
	s.Equal("ios", resp[1].DeviceType)
}

func (s *NotificationServiceTestSuite) TestSendToUser_AllDelivered() {
	tokens := []*models.DeviceToken{
		{ID: 5, UserID: 101, Token: "fcm-token-1"},
		{ID: 6, UserID: 101, Token: "fcm-token-2"},
	}

	s.deviceRepo.EXPECT().GetByUserID(int64(101)).Return(tokens, nil).Times(1)
	s.sender.EXPECT().Send(s.ctx, gomock.Any()).Return(nil).Times(2)

	result, err := s.service.SendToUser(s.ctx, &dto.SendNotificationRequest{UserID: 101, Title: "Hi", Body: "There"})
	s.NoError(err)
	s.Equal(2, result.Delivered)
	s.Zero(result.Failed)
}

func (s *NotificationServiceTestSuite) TestSendToUser_NoDevices() {
	s.deviceRepo.EXPECT().GetByUserID(int64(101)).Return(nil, nil).Times(1)

	result, err := s.service.SendToUser(s.ctx, &dto.SendNotificationRequest{UserID: 101, Title: "Hi", Body: "There"})
	s.ErrorIs(err, services.ErrNoRegisteredDevices)
	s.Nil(result)
}

func (s *NotificationServiceTestSuite) TestSendToUser_PrunesDeadTokens() {
	tokens := []*models.DeviceToken{
		{ID: 5, UserID: 101, Token: "fcm-dead"},
		{ID: 6, UserID: 101, Token: "fcm-live"},
	}

	s.deviceRepo.EXPECT().GetByUserID(int64(101)).Return(tokens, nil).Times(1)
	s.sender.EXPECT().Send(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msg *services.PushMessage) error {
		if msg.To == "fcm-dead" {
			return services.ErrTokenUnregistered
		}
		return nil
	}).Times(2)
	s.deviceRepo.EXPECT().DeleteByToken("fcm-dead").Return(nil).Times(1)

	result, err := s.service.SendToUser(s.ctx, &dto.SendNotificationRequest{UserID: 101, Title: "Hi", Body: "There"})
	s.NoError(err)
	s.Equal(1, result.Delivered)
	s.Equal(1, result.Failed)
}

func (s *NotificationServiceTestSuite) TestSendToUser_PartialFailure() {
	tokens := []*models.DeviceToken{
		{ID: 5, UserID: 101, Token: "fcm-token-1"},
		{ID: 6, UserID: 101, Token: "fcm-token-2"},
	}

	s.deviceRepo.EXPECT().GetByUserID(int64(101)).Return(tokens, nil).Times(1)
	first := s.sender.EXPECT().Send(s.ctx, gomock.Any()).Return(errors.New("provider unavailable")).Times(1)
	s.sender.EXPECT().Send(s.ctx, gomock.Any()).Return(nil).Times(1).After(first)

	result, err := s.service.SendToUser(s.ctx, &dto.SendNotificationRequest{UserID: 101, Title: "Hi", Body: "There"})
	s.NoError(err)
	s.Equal(1, result.Delivered)
	s.Equal(1, result.Failed)
}

func (s *NotificationServiceTestSuite) TestSendToTopic() {
	req := &dto.TopicNotificationRequest{Topic: "plant-tips", Title: "Tip", Body: "Water less in winter."}

	s.sender.EXPECT().SendToTopic(s.ctx, req.Topic, services.PushNotification{Title: req.Title, Body: req.Body}, nil).Return(nil).Times(1)

	s.NoError(s.service.SendToTopic(s.ctx, req))
}

func (s *NotificationServiceTestSuite) TestSubscribeToTopic_RequiresRegisteredDevice() {
	s.deviceRepo.EXPECT().GetByToken("unknown").Return(nil, repositories.ErrDeviceTokenNotFound).Times(1)

	err := s.service.SubscribeToTopic(s.ctx, &dto.TopicSubscriptionRequest{Token: "unknown", Topic: "plant-tips"})
	s.ErrorIs(err, services.ErrDeviceTokenNotFound)
}

func (s *NotificationServiceTestSuite) TestSubscribeToTopic_Success() {
	s.deviceRepo.EXPECT().GetByToken("fcm-token-1").Return(&models.DeviceToken{ID: 5, UserID: 101, Token: "fcm-token-1"}, nil).Times(1)
	s.sender.EXPECT().Subscribe(s.ctx, "fcm-token-1", "plant-tips").Return(nil).Times(1)

	s.NoError(s.service.SubscribeToTopic(s.ctx, &dto.TopicSubscriptionRequest{Token: "fcm-token-1", Topic: "plant-tips"}))
}

func (s *NotificationServiceTestSuite) TestUnsubscribeFromTopic_Success() {
	s.deviceRepo.EXPECT().GetByToken("fcm-token-1").Return(&models.DeviceToken{ID: 5, UserID: 101, Token: "fcm-token-1"}, nil).Times(1)
	s.sender.EXPECT().Unsubscribe(s.ctx, "fcm-token-1", "plant-tips").Return(nil).Times(1)

	s.NoError(s.service.UnsubscribeFromTopic(s.ctx, &dto.TopicSubscriptionRequest{Token: "fcm-token-1", Topic: "plant-tips"}))
}
