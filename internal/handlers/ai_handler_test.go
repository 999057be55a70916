package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"eyesonplants/internal/dto"
	"eyesonplants/internal/services"
	"eyesonplants/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAIHandler(t *testing.T) {
	suite.Run(t, new(AIHandlerSuite))
}

type AIHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	scanService *service_mocks.MockAIScanServiceInterface
	handler     *AIHandler
	e           *echo.Echo
}

func (s *AIHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.scanService = service_mocks.NewMockAIScanServiceInterface(s.ctrl)
	s.handler = NewAIHandler(s.scanService)
	s.e = echo.New()
}

func (s *AIHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AIHandlerSuite) multipartContext(fieldName, fileName string, content []byte) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, fileName)
	s.Require().NoError(err)
	_, err = part.Write(content)
	s.Require().NoError(err)
	s.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/scan", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("user_id", int64(42))
	return c, rec
}

func (s *AIHandlerSuite) TestScanImage() {
	s.Run("returns the prediction", func() {
		result := &dto.ScanResponse{
			Prediction: "leaf_spot",
			Confidence: 0.93,
			Advice:     "Remove affected leaves and avoid overhead watering.",
		}

		s.scanService.EXPECT().
			ScanImage(gomock.Any(), "leaf.jpg", gomock.Any()).
			Return(result, nil).
			Times(1)

		c, rec := s.multipartContext("image", "leaf.jpg", []byte("fake image bytes"))

		s.NoError(s.handler.ScanImage(c))
		s.Equal(http.StatusOK, rec.Code)

		var response dto.ScanResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("leaf_spot", response.Prediction)
		s.InDelta(0.93, response.Confidence, 0.001)
	})

	s.Run("missing file part", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/scan", nil)
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)
		c.Set("user_id", int64(42))

		s.NoError(s.handler.ScanImage(c))
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "AI_003")
	})

	s.Run("wrong field name", func() {
		c, rec := s.multipartContext("photo", "leaf.jpg", []byte("fake image bytes"))

		s.NoError(s.handler.ScanImage(c))
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "AI_003")
	})

	s.Run("prediction service down", func() {
		s.scanService.EXPECT().
			ScanImage(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrScanUnavailable).
			Times(1)

		c, rec := s.multipartContext("image", "leaf.jpg", []byte("fake image bytes"))

		s.NoError(s.handler.ScanImage(c))
		s.Equal(http.StatusServiceUnavailable, rec.Code)
		s.Contains(rec.Body.String(), "AI_002")
	})

	s.Run("model rejects the image", func() {
		s.scanService.EXPECT().
			ScanImage(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrScanFailed).
			Times(1)

		c, rec := s.multipartContext("image", "blurry.jpg", []byte("fake image bytes"))

		s.NoError(s.handler.ScanImage(c))
		s.Equal(http.StatusBadGateway, rec.Code)
		s.Contains(rec.Body.String(), "AI_001")
	})

	s.Run("unauthenticated caller", func() {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, _ := writer.CreateFormFile("image", "leaf.jpg")
		_, _ = part.Write([]byte("fake image bytes"))
		_ = writer.Close()

		req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/scan", &buf)
		req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
		rec := httptest.NewRecorder()
		c := s.e.NewContext(req, rec)

		s.NoError(s.handler.ScanImage(c))
		s.Equal(http.StatusUnauthorized, rec.Code)
		s.Contains(rec.Body.String(), "AUTH_002")
	})
}
