package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging interface used across the service.
// Every method takes a context.Context first so request-scoped fields
// (request id) can be attached without changing call sites.
type Logger interface {
	Debug(ctx context.Context, args ...any)
	Debugf(ctx context.Context, template string, args ...any)
	Info(ctx context.Context, args ...any)
	Infof(ctx context.Context, template string, args ...any)
	Warn(ctx context.Context, args ...any)
	Warnf(ctx context.Context, template string, args ...any)
	Error(ctx context.Context, args ...any)
	Errorf(ctx context.Context, template string, args ...any)
	Fatal(ctx context.Context, args ...any)
	Fatalf(ctx context.Context, template string, args ...any)
	DPanic(ctx context.Context, args ...any)
	DPanicf(ctx context.Context, template string, args ...any)
	Panic(ctx context.Context, args ...any)
	Panicf(ctx context.Context, template string, args ...any)
}

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // development or production
	Encoding     string // console or json
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

var _ Logger = (*zapLogger)(nil)

// Init builds a Logger from the given config. It never fails: invalid
// values fall back to info-level console logging.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(cfg.Level); err == nil {
		level = parsed
	}

	var encoderCfg zapcore.EncoderConfig
	if cfg.Mode == "production" {
		encoderCfg = zap.NewProductionEncoderConfig()
	} else {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	}
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding != "json" {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == "json" {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)
	l := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return &zapLogger{sugar: l.Sugar()}
}

// requestIDKey is the context key under which a request id may be stored.
type requestIDKey struct{}

// WithRequestID returns a child context carrying the given request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// requestID extracts the request id from ctx, or "" when absent.
func requestID(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey{}).(string); ok {
		return v
	}
	return ""
}

func (z *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if rid := requestID(ctx); rid != "" {
		return z.sugar.With("request_id", rid)
	}
	return z.sugar
}

func (z *zapLogger) Debug(ctx context.Context, args ...any) {
	z.with(ctx).Debug(args...)
}

func (z *zapLogger) Debugf(ctx context.Context, template string, args ...any) {
	z.with(ctx).Debugf(template, args...)
}

func (z *zapLogger) Info(ctx context.Context, args ...any) {
	z.with(ctx).Info(args...)
}

func (z *zapLogger) Infof(ctx context.Context, template string, args ...any) {
	z.with(ctx).Infof(template, args...)
}

func (z *zapLogger) Warn(ctx context.Context, args ...any) {
	z.with(ctx).Warn(args...)
}

func (z *zapLogger) Warnf(ctx context.Context, template string, args ...any) {
	z.with(ctx).Warnf(template, args...)
}

func (z *zapLogger) Error(ctx context.Context, args ...any) {
	z.with(ctx).Error(args...)
}

func (z *zapLogger) Errorf(ctx context.Context, template string, args ...any) {
	z.with(ctx).Errorf(template, args...)
}

func (z *zapLogger) Fatal(ctx context.Context, args ...any) {
	z.with(ctx).Fatal(args...)
}

func (z *zapLogger) Fatalf(ctx context.Context, template string, args ...any) {
	z.with(ctx).Fatalf(template, args...)
}

func (z *zapLogger) DPanic(ctx context.Context, args ...any) {
	z.with(ctx).DPanic(args...)
}

func (z *zapLogger) DPanicf(ctx context.Context, template string, args ...any) {
	z.with(ctx).DPanicf(template, args...)
}

func (z *zapLogger) Panic(ctx context.Context, args ...any) {
	z.with(ctx).Panic(args...)
}

func (z *zapLogger) Panicf(ctx context.Context, template string, args ...any) {
	z.with(ctx).Panicf(template, args...)
}
