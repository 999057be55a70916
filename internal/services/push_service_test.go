package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eyesonplants/internal/config"

	"github.com/stretchr/testify/suite"
)

type PushServiceTestSuite struct {
	suite.Suite
	server   *httptest.Server
	requests []*http.Request
	respond  func(w http.ResponseWriter, r *http.Request)
	sender   PushSenderInterface
	counts   *countingRecorder
	ctx      context.Context
}

// countingRecorder tallies counter increments by name. The generated mock
// lives in a package that imports this one, so in-package tests use a local
// recorder instead.
type countingRecorder struct {
	counters map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{counters: map[string]int{}}
}

func (r *countingRecorder) IncrementCounter(name string, tags map[string]string) {
	r.counters[name]++
}

func (r *countingRecorder) RecordProcessingTime(name string, duration time.Duration) {}

func (r *countingRecorder) RecordGauge(name string, value float64, tags map[string]string) {}

func (s *PushServiceTestSuite) SetupTest() {
	s.requests = nil
	s.respond = func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(pushSendResponse{Success: 1})
	}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests = append(s.requests, r.Clone(r.Context()))
		s.respond(w, r)
	}))

	s.counts = newCountingRecorder()
	s.sender = NewFCMPushSender(&config.PushConfig{
		Enabled:   true,
		BaseURL:   s.server.URL,
		ServerKey: "test-server-key",
		Timeout:   5 * time.Second,
	}, s.counts, slog.Default())
	s.ctx = context.Background()
}

func (s *PushServiceTestSuite) TearDownTest() {
	s.server.Close()
}

func TestPushServiceSuite(t *testing.T) {
	suite.Run(t, new(PushServiceTestSuite))
}

func (s *PushServiceTestSuite) TestSend_Success() {
	err := s.sender.Send(s.ctx, &PushMessage{
		To:           "fcm-token-1",
		Notification: PushNotification{Title: "Hi", Body: "There"},
	})
	s.NoError(err)

	s.Require().Len(s.requests, 1)
	req := s.requests[0]
	s.Equal(http.MethodPost, req.Method)
	s.Equal("/send", req.URL.Path)
	s.Equal("key=test-server-key", req.Header.Get("Authorization"))
	s.Equal("application/json", req.Header.Get("Content-Type"))
	s.Equal(1, s.counts.counters["push_delivered"])
}

func (s *PushServiceTestSuite) TestSend_UnregisteredToken() {
	s.respond = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":0,"failure":1,"results":[{"error":"NotRegistered"}]}`))
	}

	err := s.sender.Send(s.ctx, &PushMessage{To: "fcm-dead"})
	s.ErrorIs(err, ErrTokenUnregistered)
	s.Equal(1, s.counts.counters["push_failed"])
}

func (s *PushServiceTestSuite) TestSend_ProviderFailure() {
	s.respond = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":0,"failure":1,"results":[{"error":"InternalServerError"}]}`))
	}

	err := s.sender.Send(s.ctx, &PushMessage{To: "fcm-token-1"})
	s.ErrorIs(err, ErrPushSendFailed)
}

func (s *PushServiceTestSuite) TestSend_Non200Status() {
	s.respond = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}

	err := s.sender.Send(s.ctx, &PushMessage{To: "fcm-token-1"})
	s.ErrorIs(err, ErrPushSendFailed)
}

func (s *PushServiceTestSuite) TestSend_Disabled() {
	disabled := NewFCMPushSender(&config.PushConfig{Enabled: false, BaseURL: s.server.URL}, s.counts, slog.Default())

	err := disabled.Send(s.ctx, &PushMessage{To: "fcm-token-1"})
	s.ErrorIs(err, ErrPushDisabled)
	s.Empty(s.requests)
	s.Zero(s.counts.counters["push_failed"])
}

func (s *PushServiceTestSuite) TestSendToTopic_PrefixesTopicAddress() {
	err := s.sender.SendToTopic(s.ctx, "plant-tips", PushNotification{Title: "Tip", Body: "Water less."}, nil)
	s.NoError(err)

	s.Require().Len(s.requests, 1)
	s.Equal("/send", s.requests[0].URL.Path)
}

func (s *PushServiceTestSuite) TestSubscribe() {
	err := s.sender.Subscribe(s.ctx, "fcm-token-1", "plant-tips")
	s.NoError(err)

	s.Require().Len(s.requests, 1)
	req := s.requests[0]
	s.Equal(http.MethodPost, req.Method)
	s.Equal("/iid/v1/fcm-token-1/rel/topics/plant-tips", req.URL.Path)
}

func (s *PushServiceTestSuite) TestUnsubscribe() {
	err := s.sender.Unsubscribe(s.ctx, "fcm-token-1", "plant-tips")
	s.NoError(err)

	s.Require().Len(s.requests, 1)
	s.Equal(http.MethodDelete, s.requests[0].Method)
}
