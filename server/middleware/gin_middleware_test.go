package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(mw)
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestGinRequestIDMiddlewareGenerates(t *testing.T) {
	router := newTestRouter(GinRequestIDMiddleware())

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header should be generated")
	}
}

func TestGinRequestIDMiddlewareEchoes(t *testing.T) {
	router := newTestRouter(GinRequestIDMiddleware())

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "req-123" {
		t.Errorf("X-Request-ID = %q, want caller-supplied id echoed", got)
	}
}

func TestGinCORSMiddlewareHeaders(t *testing.T) {
	router := newTestRouter(GinCORSMiddleware())

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	headers := map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "POST, OPTIONS, GET, PUT, DELETE, PATCH",
	}
	for header, expectedValue := range headers {
		actualValue := w.Header().Get(header)
		if actualValue != expectedValue {
			t.Errorf("Header %s = %v, want %v", header, actualValue, expectedValue)
		}
	}
}

func TestGinCORSMiddlewarePreflight(t *testing.T) {
	router := newTestRouter(GinCORSMiddleware())

	req := httptest.NewRequest("OPTIONS", "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("OPTIONS request status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Access-Control-Allow-Origin header should be set for OPTIONS request")
	}
}

func TestRequestIDContextRoundTrip(t *testing.T) {
	router := newTestRouter(GinRequestIDMiddleware())
	router.GET("/ctx", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c.Request.Context()))
	})

	req := httptest.NewRequest("GET", "/ctx", nil)
	req.Header.Set("X-Request-ID", "ctx-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Body.String() != "ctx-42" {
		t.Errorf("context request id = %q, want %q", w.Body.String(), "ctx-42")
	}
}
