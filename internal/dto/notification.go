package dto

import "time"

// RegisterDeviceRequest contains data for registering a push device token
type RegisterDeviceRequest struct {
	Token       string `json:"token" validate:"required,min=1,max=512"`
	DeviceType  string `json:"deviceType" validate:"required,device_type"`
	DeviceModel string `json:"deviceModel" validate:"omitempty,max=100"`
	AppVersion  string `json:"appVersion" validate:"omitempty,max=20"`
}

// SendNotificationRequest contains a direct push notification to a user
type SendNotificationRequest struct {
	UserID int64             `json:"userId" validate:"required,min=1"`
	Title  string            `json:"title" validate:"required,min=1,max=200"`
	Body   string            `json:"body" validate:"required,min=1,max=1000"`
	Data   map[string]string `json:"data"`
}

// TopicNotificationRequest contains a push notification to a topic
type TopicNotificationRequest struct {
	Topic string            `json:"topic" validate:"required,min=1,max=100"`
	Title string            `json:"title" validate:"required,min=1,max=200"`
	Body  string            `json:"body" validate:"required,min=1,max=1000"`
	Data  map[string]string `json:"data"`
}

// TopicSubscriptionRequest contains a device topic (un)subscription
type TopicSubscriptionRequest struct {
	Token string `json:"token" validate:"required,min=1,max=512"`
	Topic string `json:"topic" validate:"required,min=1,max=100"`
}

// DeviceTokenResponse represents a registered push device
type DeviceTokenResponse struct {
	ID          int64     `json:"id"`
	Token       string    `json:"token"`
	DeviceType  string    `json:"deviceType"`
	DeviceModel string    `json:"deviceModel,omitempty"`
	AppVersion  string    `json:"appVersion,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NotificationResult summarizes a push delivery attempt
type NotificationResult struct {
	Delivered int `json:"delivered"`
	Failed    int `json:"failed"`
}
