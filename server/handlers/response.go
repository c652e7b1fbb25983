// Package handlers contains the Gin HTTP handlers of the pricing server.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "pricegen/server/errors"
	"pricegen/server/middleware"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error     bool   `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
	Timestamp string `json:"timestamp"`
}

// SendJSONResponse sends a JSON response through the Gin context.
func SendJSONResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// SendJSONError sends a JSON error through the Gin context and logs it.
func SendJSONError(c *gin.Context, statusCode int, message string) {
	reqID := middleware.GetRequestIDFromGin(c)

	slog.Error("Gin HTTP error",
		"error", message,
		"status_code", statusCode,
		"request_id", reqID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	c.JSON(statusCode, ErrorResponse{
		Error:     true,
		Message:   message,
		RequestID: reqID,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// HandleError maps any error to its JSON response. AppErrors keep their
// status and user message, everything else becomes a 500.
func HandleError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}
	SendJSONError(c, http.StatusInternalServerError, "Terjadi kesalahan internal")
}

// SendArtifact streams a rendered artifact as a file download.
func SendArtifact(c *gin.Context, contentType, filename string, data []byte) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Content-Transfer-Encoding", "binary")
	c.Data(http.StatusOK, contentType, data)
}
