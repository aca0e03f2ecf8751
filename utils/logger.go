package utils

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logLevelSeverity = map[string]zapcore.Level{
	"debug":   zapcore.DebugLevel,
	"info":    zapcore.InfoLevel,
	"warning": zapcore.WarnLevel,
	"warn":    zapcore.WarnLevel,
	"error":   zapcore.ErrorLevel,
}

// ParseLogLevel maps a level name to its zap level
func ParseLogLevel(name string) (zapcore.Level, error) {
	level, ok := logLevelSeverity[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// NewLogger builds a JSON logger writing to stderr, keeping stdout for the report
func NewLogger(level string) (*zap.Logger, error) {
	return NewLoggerTo(os.Stderr, level)
}

// NewLoggerTo builds a JSON logger writing to w
func NewLoggerTo(w io.Writer, level string) (*zap.Logger, error) {
	minLevel, err := ParseLogLevel(level)
	if err != nil {
		return nil, err
	}

	configLog := zap.NewProductionEncoderConfig()
	configLog.EncodeTime = zapcore.RFC3339TimeEncoder
	configLog.LevelKey = "severity"
	configLog.MessageKey = "message"
	configLog.TimeKey = "time"

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(configLog),
		zapcore.Lock(zapcore.AddSync(w)),
		minLevel,
	)

	return zap.New(core), nil
}
