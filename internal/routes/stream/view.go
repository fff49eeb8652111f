package stream

import (
	"net/http"
	"os"
	"path/filepath"

	"mockllm-api/internal/setup"
	"mockllm-api/internal/shared"

	"github.com/labstack/echo/v4"
)

// Index serves the landing page. The document is read from disk on every
// request so edits to it show up without a restart.
func (m *Manager) Index(cc echo.Context) error {
	c := cc.(*setup.Context)

	page, err := os.ReadFile(filepath.Join(m.frontendDir, "index.html"))
	if err != nil {
		c.Log.Errorw("Failed to read landing page", "error", err.Error())
		return c.JSON(http.StatusInternalServerError, shared.APIError{
			Message: shared.ErrInternalServerError.Err.Error(),
			Object:  "error",
			Type:    "InternalError",
			Code:    http.StatusInternalServerError,
		})
	}
	return c.HTMLBlob(http.StatusOK, page)
}
