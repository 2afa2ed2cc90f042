package server

import (
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/titipkan/internal/pkg/logger"
	"github.com/piresc/titipkan/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(t *testing.T) *logger.ZapLogger {
	zl, err := logger.NewZapLogger(models.LoggerConfig{Level: "error", Type: "stdout"})
	require.NoError(t, err)
	return zl
}

func TestNewGracefulServer(t *testing.T) {
	e := echo.New()
	zl := testLogger(t)

	gs := NewGracefulServer(e, zl, 8080, 5*time.Second)

	assert.NotNil(t, gs)
	assert.Equal(t, 5*time.Second, gs.shutdownTimeout)
}

func TestNewGracefulServer_DefaultTimeout(t *testing.T) {
	gs := NewGracefulServer(echo.New(), testLogger(t), 8080, 0)

	assert.Equal(t, 30*time.Second, gs.shutdownTimeout)
}

func TestGracefulServer_Shutdown(t *testing.T) {
	e := echo.New()
	gs := NewGracefulServer(e, testLogger(t), 0, time.Second)

	go func() {
		// Port 0 picks a free port; ErrServerClosed is the expected exit.
		_ = e.Start(":0")
	}()
	time.Sleep(100 * time.Millisecond)

	err := gs.Shutdown()

	assert.NoError(t, err)
}
