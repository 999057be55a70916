package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"

	"eyesonplants/internal/config"
	"eyesonplants/internal/dto"
)

var (
	ErrScanUnavailable = errors.New("plant scan service is unavailable")
	ErrScanFailed      = errors.New("plant scan failed")
	ErrInvalidImage    = errors.New("invalid or missing image")
)

type predictResponse struct {
	Prediction string  `json:"prediction"`
	Confidence float64 `json:"confidence"`
	Advice     string  `json:"advice"`
}

// AIScanService proxies leaf images to the disease prediction model. The
// breaker keeps a flapping model process from stalling every request.
type AIScanService struct {
	config  *config.AIConfig
	client  *http.Client
	breaker CircuitBreakerInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewAIScanService creates a new AI scan service
func NewAIScanService(
	cfg *config.AIConfig,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AIScanServiceInterface {
	client := &http.Client{
		Timeout: cfg.Timeout,
	}

	return &AIScanService{
		config:  cfg,
		client:  client,
		breaker: breaker,
		metrics: metrics,
		logger:  logger,
	}
}

// ScanImage forwards the uploaded image to the prediction service and
// returns its verdict.
func (s *AIScanService) ScanImage(ctx context.Context, filename string, image io.Reader) (*dto.ScanResponse, error) {
	if image == nil || filename == "" {
		return nil, ErrInvalidImage
	}

	if s.breaker.IsOpen() {
		s.metrics.IncrementCounter("ai_scan_rejected", map[string]string{"reason": "breaker_open"})
		return nil, ErrScanUnavailable
	}

	start := time.Now()

	req, err := s.buildMultipartRequest(ctx, filename, image)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.breaker.RecordFailure()
		s.metrics.IncrementCounter("ai_scan_failed", map[string]string{"reason": "transport"})
		s.logger.Error("prediction request failed",
			"error", err,
			"url", s.config.PredictURL)
		return nil, ErrScanUnavailable
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		s.breaker.RecordFailure()
		return nil, fmt.Errorf("read prediction response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		s.breaker.RecordFailure()
		s.metrics.IncrementCounter("ai_scan_failed", map[string]string{"reason": "status"})
		s.logger.Error("prediction service rejected scan",
			"status", resp.StatusCode,
			"body", string(body))
		return nil, ErrScanFailed
	}

	var result predictResponse
	if err := json.Unmarshal(body, &result); err != nil {
		s.breaker.RecordFailure()
		return nil, fmt.Errorf("decode prediction response: %w", err)
	}

	s.breaker.RecordSuccess()
	s.metrics.IncrementCounter("ai_scan_completed", nil)
	s.metrics.RecordProcessingTime("ai_scan", time.Since(start))

	s.logger.Info("plant scan completed",
		"prediction", result.Prediction,
		"confidence", result.Confidence,
		"duration_ms", time.Since(start).Milliseconds())

	return &dto.ScanResponse{
		Prediction: result.Prediction,
		Confidence: result.Confidence,
		Advice:     result.Advice,
	}, nil
}

func (s *AIScanService) buildMultipartRequest(ctx context.Context, filename string, image io.Reader) (*http.Request, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("create form file: %w", err)
	}

	if _, err := io.Copy(part, image); err != nil {
		return nil, fmt.Errorf("copy image data: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.PredictURL, &buf)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req, nil
}
