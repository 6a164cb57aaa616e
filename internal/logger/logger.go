package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New construye el logger estructurado del proceso.
// level acepta debug|info|warn|error; cualquier otra cosa cae en info.
func New(level string) (*zap.Logger, error) {
	zapLevel := zapcore.InfoLevel
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.EncoderConfig.MessageKey = "message"

	return zapConfig.Build()
}
