package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hrms-lite/internal/middleware"
	"hrms-lite/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func setupRouter(logger *zap.Logger, seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ContextLogger(logger), middleware.AccessLog(logger))
	r.GET("/ping", func(c *gin.Context) {
		*seen = contextutil.GetRequestID(c.Request.Context())
		contextutil.GetLogger(c.Request.Context(), nil).Info("inside handler")
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequestID_EchoesHeader(t *testing.T) {
	var seen string
	r := setupRouter(zap.NewNop(), &seen)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get(middleware.HeaderRequestID))
	assert.Equal(t, "req-123", seen)
}

func TestRequestID_Generated(t *testing.T) {
	var seen string
	r := setupRouter(zap.NewNop(), &seen)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	rid := w.Header().Get(middleware.HeaderRequestID)
	assert.NotEmpty(t, rid)
	assert.Equal(t, rid, seen)
}

func TestContextLogger_TagsRequestID(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	var seen string
	r := setupRouter(zap.New(core), &seen)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-456")
	r.ServeHTTP(httptest.NewRecorder(), req)

	inside := logs.FilterMessage("inside handler").All()
	assert.Len(t, inside, 1)
	assert.Equal(t, "req-456", inside[0].ContextMap()["request_id"])

	access := logs.FilterMessage("http request").All()
	assert.Len(t, access, 1)
	assert.Equal(t, int64(http.StatusOK), access[0].ContextMap()["status"])
}
