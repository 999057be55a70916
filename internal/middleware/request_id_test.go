package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestIDTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *RequestIDTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestRequestIDTestSuite(t *testing.T) {
	suite.Run(t, new(RequestIDTestSuite))
}

func (s *RequestIDTestSuite) run(req *http.Request, next echo.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	s.NoError(RequestID()(next)(c))
	return rec
}

func (s *RequestIDTestSuite) TestGeneratesTraceID() {
	var contextTraceID string
	rec := s.run(httptest.NewRequest(http.MethodGet, "/", nil), func(c echo.Context) error {
		contextTraceID = GetTraceID(c)
		return c.NoContent(http.StatusOK)
	})

	s.NotEmpty(contextTraceID)
	s.Equal(contextTraceID, rec.Header().Get(TraceIDHeader))
	// Generated IDs are uuids
	s.Regexp(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, contextTraceID)
}

func (s *RequestIDTestSuite) TestHonoursCallerTraceID() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(TraceIDHeader, "caller-supplied-id")

	rec := s.run(req, func(c echo.Context) error {
		s.Equal("caller-supplied-id", GetTraceID(c))
		return c.NoContent(http.StatusOK)
	})

	s.Equal("caller-supplied-id", rec.Header().Get(TraceIDHeader))
}

func (s *RequestIDTestSuite) TestGetTraceID_EmptyOutsideMiddleware() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.Empty(GetTraceID(c))
}
