package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	base  *zap.Logger
	sugar *zap.SugaredLogger

	development = os.Getenv("ENVIRONMENT") == "development"
)

func init() {
	if development {
		level.SetLevel(zapcore.DebugLevel)
	}
	build(zapcore.Lock(os.Stdout))
}

func build(out zapcore.WriteSyncer) {
	var encoder zapcore.Encoder
	if development {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	} else {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(cfg)
	}

	base = zap.New(zapcore.NewCore(encoder, out, level), zap.AddCaller())
	// The package functions below add one frame.
	sugar = base.WithOptions(zap.AddCallerSkip(1)).Sugar()
}

// Configure switches between the development console format with debug
// output and the production JSON format. Called once at startup.
func Configure(isDevelopment bool) {
	development = isDevelopment
	if isDevelopment {
		level.SetLevel(zapcore.DebugLevel)
	} else {
		level.SetLevel(zapcore.InfoLevel)
	}
	build(zapcore.Lock(os.Stdout))
}

// SetOutput redirects every level to w. Used by tests to silence output.
func SetOutput(w io.Writer) {
	build(zapcore.AddSync(w))
}

// L returns the structured logger for callers that attach fields.
func L() *zap.Logger {
	return base
}

func Sync() {
	_ = base.Sync()
}

func Info(format string, v ...interface{}) {
	sugar.Infof(format, v...)
}

func Error(format string, v ...interface{}) {
	sugar.Errorf(format, v...)
}

func Debug(format string, v ...interface{}) {
	sugar.Debugf(format, v...)
}

func Warn(format string, v ...interface{}) {
	sugar.Warnf(format, v...)
}

// LogOperationError records a failed use case or repository call.
func LogOperationError(operation string, err error) {
	sugar.Errorw("operation failed", "operation", operation, "error", err)
}
