package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/piresc/titipkan/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is the application logger. It writes structured JSON either to
// stdout or to a log file depending on configuration.
type ZapLogger struct {
	*zap.Logger
	sugar *zap.SugaredLogger
	file  *os.File
}

// NewZapLogger creates a new Zap application logger
func NewZapLogger(config models.LoggerConfig) (*ZapLogger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(config.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.MessageKey = "message"
	encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	zl := &ZapLogger{}

	sink := zapcore.AddSync(os.Stdout)
	if config.Type == "file" && config.FilePath != "" {
		dir := filepath.Dir(config.FilePath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		zl.file = file
		sink = zapcore.AddSync(file)
	}

	core := zapcore.NewCore(encoder, sink, level)
	zapLogger := zap.New(core, zap.AddCaller())

	zl.Logger = zapLogger
	zl.sugar = zapLogger.Sugar()
	return zl, nil
}

// InitZapLoggerFromConfig creates the logger from application config and
// installs it as the global logger.
func InitZapLoggerFromConfig(cfg *models.Config) (*ZapLogger, error) {
	zl, err := NewZapLogger(cfg.Logger)
	if err != nil {
		return nil, err
	}
	SetGlobalLogger(zl)
	return zl, nil
}

// Close flushes buffered entries and closes the log file if one is open
func (zl *ZapLogger) Close() {
	_ = zl.Logger.Sync()
	if zl.file != nil {
		_ = zl.file.Close()
	}
}
