package handlers

import (
	"crypto/md5"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// docsPage is the interactive documentation shell. It loads the spec from
// /openapi.json so the page itself never needs regenerating.
const docsPage = `<!doctype html>
<html>
<head>
  <title>Eyes on Plants API</title>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
</head>
<body>
  <script id="api-reference" data-url="/openapi.json"></script>
  <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`

// DocsHandler serves the documentation page and the OpenAPI document.
type DocsHandler struct {
	pageETag string
	specPath string
}

// NewDocsHandler creates a new documentation handler
func NewDocsHandler() *DocsHandler {
	return &DocsHandler{
		pageETag: generateETag([]byte(docsPage)),
		specPath: filepath.Join("docs", "openapi.json"),
	}
}

// ServeDocsUI serves the interactive documentation page.
func (h *DocsHandler) ServeDocsUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if h.pageETag != "" {
		c.Response().Header().Set("ETag", h.pageETag)
		if match := c.Request().Header.Get("If-None-Match"); match != "" && match == h.pageETag {
			return c.NoContent(http.StatusNotModified)
		}
	}

	return c.HTML(http.StatusOK, docsPage)
}

// ServeOpenAPISpec serves the OpenAPI document the docs page loads.
func (h *DocsHandler) ServeOpenAPISpec(c echo.Context) error {
	if !fileExists(h.specPath) {
		return c.JSON(http.StatusNotFound, map[string]string{
			"message": "OpenAPI document not available",
		})
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=300")
	c.Response().Header().Set("Content-Type", "application/json; charset=utf-8")
	return c.File(h.specPath)
}

// generateETag creates an ETag hash for cache control
func generateETag(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	hash := md5.Sum(data)
	return fmt.Sprintf("\"%x\"", hash)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
