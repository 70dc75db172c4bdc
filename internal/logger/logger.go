package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envVar = "OUTLOOK_ENV"

func New() *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	opts := []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
	}

	env := strings.ToLower(os.Getenv(envVar))
	if env == "dev" || env == "test" {
		logger, err = zap.NewDevelopment(opts...)
	} else {
		opts = append(opts, zap.Fields(zap.Field{
			Key:    envVar,
			Type:   zapcore.StringType,
			String: os.Getenv(envVar),
		}))
		logger, err = zap.NewProduction(opts...)
	}

	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return logger.Sugar()
}

type contextKey string

const ContextKey contextKey = "LOGGER"

func WithLogger(ctx context.Context, lg *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ContextKey, lg)
}

func FromContext(ctx context.Context) *zap.SugaredLogger {
	lg, ok := ctx.Value(ContextKey).(*zap.SugaredLogger)
	if !ok || lg == nil {
		lg = zap.S()
	}
	return lg
}

func init() {
	logger := New()
	zap.ReplaceGlobals(logger.Desugar())
}
