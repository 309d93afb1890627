package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"todo_api/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger.InitWriter(&buf, "info", false)

	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/ping", func(c *gin.Context) {
		logger.FromContext(c.Request.Context()).Info("inside handler")
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get("X-Request-ID")
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("expected generated request id, got %q", id)
	}
	out := buf.String()
	if strings.Count(out, "request_id="+id) != 2 {
		t.Fatalf("expected handler and access log to carry request id, got %q", out)
	}
	if !strings.Contains(out, "status=204") {
		t.Fatalf("expected status in access log, got %q", out)
	}

	// a valid incoming id is kept
	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", incoming)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Header().Get("X-Request-ID") != incoming {
		t.Fatalf("expected incoming request id to be propagated")
	}
}
