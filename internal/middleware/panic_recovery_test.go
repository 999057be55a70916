package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eyesonplants/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) recoverFrom(panicValue interface{}, traceID string) (*httptest.ResponseRecorder, errors.ErrorResponse) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}

	handler := PanicRecovery()(func(c echo.Context) error {
		panic(panicValue)
	})

	s.NotPanics(func() {
		_ = handler(c)
	})

	var errorResponse errors.ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &errorResponse))
	return rec, errorResponse
}

func (s *PanicRecoveryTestSuite) TestRecoversWithEnvelope() {
	rec, errorResponse := s.recoverFrom("boom", "test-trace-id")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", errorResponse.Error.Code)
	s.Equal("test-trace-id", errorResponse.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestMissingTraceIDFallsBack() {
	rec, errorResponse := s.recoverFrom("boom", "")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("unknown", errorResponse.Error.TraceID)
}

func (s *PanicRecoveryTestSuite) TestNonStringPanicValues() {
	for _, panicValue := range []interface{}{42, struct{ msg string }{"error"}, nil} {
		rec, errorResponse := s.recoverFrom(panicValue, "test-trace-id")

		s.Equal(http.StatusInternalServerError, rec.Code)
		s.Equal("SYSTEM_001", errorResponse.Error.Code)
	}
}

func (s *PanicRecoveryTestSuite) TestNormalFlowUntouched() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	handler := PanicRecovery()(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	s.NoError(handler(c))
	s.Equal(http.StatusOK, rec.Code)
}
