package logging

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	AppLogger     *zap.Logger = zap.NewNop()
	RequestLogger *zap.Logger = zap.NewNop()
	TimerLogger   *zap.Logger = zap.NewNop()
	ErrorLogger   *zap.Logger = zap.NewNop()
)

type traceKey struct{}

// WithTraceID tags ctx so LogDuration can correlate timings with a request.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceKey{}, id)
}

func ensureLogsDir(dir string) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		panic("Failed to create logs directory: " + err.Error())
	}
}

// InitLogger opens the four rotating log files under dir. When stdout is set
// the app and error logs are also written to stdout.
func InitLogger(dir string, stdout bool) {
	if dir == "" {
		dir = "./logs"
	}
	ensureLogsDir(dir)
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	fileCore := func(name string, maxSize, maxAge int, level zapcore.Level) zapcore.Core {
		return zapcore.NewCore(encoder,
			zapcore.AddSync(&lumberjack.Logger{
				Filename: filepath.Join(dir, name), MaxSize: maxSize, MaxAge: maxAge, Compress: true,
			}),
			level,
		)
	}
	withStdout := func(core zapcore.Core, level zapcore.Level) zapcore.Core {
		if !stdout {
			return core
		}
		return zapcore.NewTee(core, zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level))
	}

	AppLogger = zap.New(withStdout(fileCore("app.log", 100, 28, zap.InfoLevel), zap.InfoLevel))
	RequestLogger = zap.New(fileCore("request.log", 50, 7, zap.InfoLevel))
	TimerLogger = zap.New(fileCore("timer.log", 50, 7, zap.InfoLevel))
	ErrorLogger = zap.New(withStdout(fileCore("error.log", 100, 30, zap.ErrorLevel), zap.ErrorLevel))
}

// InitNop silences every logger. Used by tests.
func InitNop() {
	AppLogger = zap.NewNop()
	RequestLogger = zap.NewNop()
	TimerLogger = zap.NewNop()
	ErrorLogger = zap.NewNop()
}

func Sync() {
	for _, l := range []*zap.Logger{AppLogger, RequestLogger, TimerLogger, ErrorLogger} {
		_ = l.Sync()
	}
}

// LogDuration lets you do: defer logging.LogDuration(ctx, "FuncName")()
func LogDuration(ctx context.Context, name string) func() {
	start := time.Now()
	traceID, _ := ctx.Value(traceKey{}).(string)

	return func() {
		fields := []zap.Field{
			zap.String("func", name),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		}
		if traceID != "" {
			fields = append(fields, zap.String("trace_id", traceID))
		}
		TimerLogger.Info("Function timed", fields...)
	}
}
