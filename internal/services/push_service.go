package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"eyesonplants/internal/config"
)

var (
	ErrPushDisabled      = errors.New("push notifications are disabled")
	ErrPushSendFailed    = errors.New("push delivery failed")
	ErrTokenUnregistered = errors.New("device token is no longer registered")
)

type authTransport struct {
	serverKey string
	base      http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("Authorization", "key="+t.serverKey)
	req.Header.Set("Content-Type", "application/json")

	return t.base.RoundTrip(req)
}

// PushNotification is the visible part of a push message.
type PushNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// PushMessage is a delivery addressed to a single device token.
type PushMessage struct {
	To           string            `json:"to"`
	Notification PushNotification  `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

type pushSendResponse struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
	Results []struct {
		Error string `json:"error,omitempty"`
	} `json:"results,omitempty"`
}

// FCMPushSender delivers push messages over the FCM legacy HTTP API.
type FCMPushSender struct {
	config  *config.PushConfig
	client  *http.Client
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewFCMPushSender creates a new FCM push sender
func NewFCMPushSender(cfg *config.PushConfig, metrics MetricsRecorderInterface, logger *slog.Logger) PushSenderInterface {
	transport := &authTransport{
		serverKey: cfg.ServerKey,
		base:      http.DefaultTransport,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}

	return &FCMPushSender{
		config:  cfg,
		client:  client,
		metrics: metrics,
		logger:  logger,
	}
}

// Send delivers a message to one device token
func (s *FCMPushSender) Send(ctx context.Context, message *PushMessage) error {
	if err := s.send(ctx, message); err != nil {
		if !errors.Is(err, ErrPushDisabled) {
			s.metrics.IncrementCounter("push_failed", nil)
		}
		return err
	}

	s.metrics.IncrementCounter("push_delivered", nil)
	return nil
}

func (s *FCMPushSender) send(ctx context.Context, message *PushMessage) error {
	if !s.config.Enabled {
		return ErrPushDisabled
	}

	req, err := s.buildRequest(ctx, http.MethodPost, "/send", message)
	if err != nil {
		return err
	}

	resp, body, err := s.do(req)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("push send rejected",
			"status", resp.StatusCode,
			"body", string(body))
		return ErrPushSendFailed
	}

	var result pushSendResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("decode push response: %w", err)
	}

	if result.Failure > 0 {
		for _, r := range result.Results {
			if r.Error == "NotRegistered" || r.Error == "InvalidRegistration" {
				return ErrTokenUnregistered
			}
		}
		return ErrPushSendFailed
	}

	return nil
}

// SendToTopic delivers a message to every device subscribed to a topic
func (s *FCMPushSender) SendToTopic(ctx context.Context, topic string, notification PushNotification, data map[string]string) error {
	if !s.config.Enabled {
		return ErrPushDisabled
	}

	message := &PushMessage{
		To:           "/topics/" + topic,
		Notification: notification,
		Data:         data,
	}

	req, err := s.buildRequest(ctx, http.MethodPost, "/send", message)
	if err != nil {
		return err
	}

	resp, body, err := s.do(req)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("topic push rejected",
			"status", resp.StatusCode,
			"topic", topic,
			"body", string(body))
		return ErrPushSendFailed
	}

	return nil
}

// Subscribe adds a device token to a topic
func (s *FCMPushSender) Subscribe(ctx context.Context, token, topic string) error {
	return s.manageTopic(ctx, token, topic, "/iid/v1/%s/rel/topics/%s", http.MethodPost)
}

// Unsubscribe removes a device token from a topic
func (s *FCMPushSender) Unsubscribe(ctx context.Context, token, topic string) error {
	return s.manageTopic(ctx, token, topic, "/iid/v1/%s/rel/topics/%s", http.MethodDelete)
}

func (s *FCMPushSender) manageTopic(ctx context.Context, token, topic, pathFormat, method string) error {
	if !s.config.Enabled {
		return ErrPushDisabled
	}

	req, err := s.buildRequest(ctx, method, fmt.Sprintf(pathFormat, token, topic), nil)
	if err != nil {
		return err
	}

	resp, body, err := s.do(req)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("topic membership change rejected",
			"status", resp.StatusCode,
			"topic", topic,
			"body", string(body))
		return ErrPushSendFailed
	}

	return nil
}

func (s *FCMPushSender) buildRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.config.BaseURL+path, buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return req, nil
}

func (s *FCMPushSender) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error("push request failed",
			"method", req.Method,
			"url", req.URL.String(),
			"error", err)
		return nil, nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()

	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp, body, nil
}
