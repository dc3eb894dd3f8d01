package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"library/pkg/logger"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
	}{
		{
			name:        "Development Environment",
			environment: logger.DevelopmentEnvironment,
		},
		{
			name:        "Production Environment",
			environment: logger.ProductionEnvironment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(tt.environment)
			})

			l := logger.Get(context.Background())
			require.NotNil(t, l)
		})
	}
}

func TestGetPrefersContextLogger(t *testing.T) {
	custom := zap.NewNop()
	ctx := logger.WithLogger(context.Background(), custom)

	require.Same(t, custom, logger.Get(ctx))
}

func TestWithFieldsReturnsDerivedLogger(t *testing.T) {
	ctx := context.Background()
	derived := logger.WithFields(ctx, zap.String("user_id", "U001"))

	require.NotNil(t, logger.Get(derived))
	require.NotSame(t, logger.Get(ctx), logger.Get(derived))
}
