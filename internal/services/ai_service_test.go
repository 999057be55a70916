package services_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"eyesonplants/internal/config"
	"eyesonplants/internal/services"
	"eyesonplants/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type AIScanServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	breaker *service_mocks.MockCircuitBreakerInterface
	metrics *service_mocks.MockMetricsRecorderInterface
	server  *httptest.Server
	respond func(w http.ResponseWriter, r *http.Request)
	service services.AIScanServiceInterface
	ctx     context.Context
}

func (s *AIScanServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.breaker = service_mocks.NewMockCircuitBreakerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	s.respond = func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"prediction":"leaf_spot","confidence":0.93,"advice":"Remove affected leaves."}`))
	}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.respond(w, r)
	}))

	s.service = services.NewAIScanService(&config.AIConfig{
		PredictURL: s.server.URL,
		Timeout:    5 * time.Second,
	}, s.breaker, s.metrics, slog.Default())
	s.ctx = context.Background()
}

func (s *AIScanServiceTestSuite) TearDownTest() {
	s.server.Close()
	s.ctrl.Finish()
}

func TestAIScanServiceSuite(t *testing.T) {
	suite.Run(t, new(AIScanServiceTestSuite))
}

func (s *AIScanServiceTestSuite) TestScanImage_Success() {
	s.breaker.EXPECT().IsOpen().Return(false).Times(1)
	s.breaker.EXPECT().RecordSuccess().Times(1)
	s.metrics.EXPECT().IncrementCounter("ai_scan_completed", nil).Times(1)
	s.metrics.EXPECT().RecordProcessingTime("ai_scan", gomock.Any()).Times(1)

	resp, err := s.service.ScanImage(s.ctx, "leaf.jpg", strings.NewReader("fake image bytes"))
	s.NoError(err)
	s.Equal("leaf_spot", resp.Prediction)
	s.InDelta(0.93, resp.Confidence, 0.001)
	s.Equal("Remove affected leaves.", resp.Advice)
}

func (s *AIScanServiceTestSuite) TestScanImage_SendsMultipartForm() {
	s.respond = func(w http.ResponseWriter, r *http.Request) {
		err := r.ParseMultipartForm(1 << 20)
		s.NoError(err)
		_, header, err := r.FormFile("file")
		s.NoError(err)
		s.Equal("leaf.jpg", header.Filename)
		_, _ = w.Write([]byte(`{"prediction":"healthy","confidence":0.99,"advice":""}`))
	}

	s.breaker.EXPECT().IsOpen().Return(false).Times(1)
	s.breaker.EXPECT().RecordSuccess().Times(1)
	s.metrics.EXPECT().IncrementCounter("ai_scan_completed", nil).Times(1)
	s.metrics.EXPECT().RecordProcessingTime("ai_scan", gomock.Any()).Times(1)

	resp, err := s.service.ScanImage(s.ctx, "leaf.jpg", strings.NewReader("fake image bytes"))
	s.NoError(err)
	s.Equal("healthy", resp.Prediction)
}

func (s *AIScanServiceTestSuite) TestScanImage_InvalidInput() {
	resp, err := s.service.ScanImage(s.ctx, "", strings.NewReader("data"))
	s.ErrorIs(err, services.ErrInvalidImage)
	s.Nil(resp)

	resp, err = s.service.ScanImage(s.ctx, "leaf.jpg", nil)
	s.ErrorIs(err, services.ErrInvalidImage)
	s.Nil(resp)
}

func (s *AIScanServiceTestSuite) TestScanImage_BreakerOpen() {
	s.breaker.EXPECT().IsOpen().Return(true).Times(1)
	s.metrics.EXPECT().IncrementCounter("ai_scan_rejected", map[string]string{"reason": "breaker_open"}).Times(1)

	resp, err := s.service.ScanImage(s.ctx, "leaf.jpg", strings.NewReader("data"))
	s.ErrorIs(err, services.ErrScanUnavailable)
	s.Nil(resp)
}

func (s *AIScanServiceTestSuite) TestScanImage_ServiceDown() {
	s.server.Close()

	s.breaker.EXPECT().IsOpen().Return(false).Times(1)
	s.breaker.EXPECT().RecordFailure().Times(1)
	s.metrics.EXPECT().IncrementCounter("ai_scan_failed", map[string]string{"reason": "transport"}).Times(1)

	resp, err := s.service.ScanImage(s.ctx, "leaf.jpg", strings.NewReader("data"))
	s.ErrorIs(err, services.ErrScanUnavailable)
	s.Nil(resp)
}

func (s *AIScanServiceTestSuite) TestScanImage_ModelRejects() {
	s.respond = func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unsupported image", http.StatusBadRequest)
	}

	s.breaker.EXPECT().IsOpen().Return(false).Times(1)
	s.breaker.EXPECT().RecordFailure().Times(1)
	s.metrics.EXPECT().IncrementCounter("ai_scan_failed", map[string]string{"reason": "status"}).Times(1)

	resp, err := s.service.ScanImage(s.ctx, "leaf.jpg", strings.NewReader("data"))
	s.ErrorIs(err, services.ErrScanFailed)
	s.Nil(resp)
}
