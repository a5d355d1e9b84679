package logger_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/narwhalmedia/catalog/pkg/interfaces"
	"github.com/narwhalmedia/catalog/pkg/logger"
)

func TestZapLogger_WithContextAddsRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logger.NewFromZap(zap.New(core))

	ctx := logger.WithRequestID(context.Background(), "req-1")
	l.WithContext(ctx).Info("hello", interfaces.Uint("game_id", 3), interfaces.Error(errors.New("boom")))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "hello", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.EqualValues(t, 3, fields["game_id"])
	assert.Equal(t, "boom", fields["error"])
}

func TestFromContext_DefaultsToNoop(t *testing.T) {
	assert.IsType(t, &logger.NoopLogger{}, logger.FromContext(context.Background()))

	l := logger.NewNoop()
	ctx := logger.WithContext(context.Background(), l)
	assert.Same(t, l, logger.FromContext(ctx))
}

func TestConfig_Build(t *testing.T) {
	cfg := logger.DefaultConfig()
	cfg.Level = "warn"
	cfg.InitialFields = map[string]interface{}{"service": "catalog"}

	l, err := cfg.Build()
	require.NoError(t, err)
	assert.True(t, l.Zap().Core().Enabled(zapcore.WarnLevel))
	assert.False(t, l.Zap().Core().Enabled(zapcore.InfoLevel))
	assert.Equal(t, zapcore.InfoLevel, logger.ParseLevel("not-a-level"))
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)

	router := gin.New()
	router.Use(logger.GinMiddleware(logger.NewFromZap(zap.New(core))))
	router.GET("/ping", func(c *gin.Context) {
		assert.Equal(t, "abc", logger.RequestIDFromContext(c.Request.Context()))
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(logger.RequestIDHeader, "abc")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "abc", rec.Header().Get(logger.RequestIDHeader))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "HTTP request completed", logs.All()[0].Message)
	assert.EqualValues(t, http.StatusNoContent, logs.All()[0].ContextMap()["status"])
}
