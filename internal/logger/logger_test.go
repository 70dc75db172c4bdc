package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFromContext(t *testing.T) {
	t.Run("returns logger stored in ctx", func(t *testing.T) {
		lg := zap.NewNop().Sugar()
		ctx := WithLogger(context.Background(), lg)
		require.Same(t, lg, FromContext(ctx))
	})

	t.Run("falls back to global logger", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})
}
