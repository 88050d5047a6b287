package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/omnipos-weighing-service/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestContextInterceptor(t *testing.T) {
	interceptor := ContextInterceptor(logger.NewNop())
	info := &grpc.UnaryServerInfo{FullMethod: "/weighing.v1.RecordService/Query"}

	t.Run("propagates incoming request id and locale", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(
			MetadataRequestID, "req-1",
			MetadataAcceptLanguage, "pt-BR",
		))

		var seenID, seenLocale string
		resp, err := interceptor(ctx, "in", info, func(ctx context.Context, req interface{}) (interface{}, error) {
			seenID = RequestID(ctx)
			seenLocale = Locale(ctx)
			return "out", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "out", resp)
		assert.Equal(t, "req-1", seenID)
		assert.Equal(t, "pt-BR", seenLocale)
	})

	t.Run("generates a request id when absent", func(t *testing.T) {
		var seenID string
		_, err := interceptor(context.Background(), "in", info, func(ctx context.Context, req interface{}) (interface{}, error) {
			seenID = RequestID(ctx)
			return nil, nil
		})
		require.NoError(t, err)
		assert.Len(t, seenID, 36)
	})

	t.Run("returns handler errors untouched", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := interceptor(context.Background(), "in", info, func(ctx context.Context, req interface{}) (interface{}, error) {
			return nil, boom
		})
		assert.ErrorIs(t, err, boom)
	})
}

func TestContextFallsBackToMetadata(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(MetadataAcceptLanguage, "en"))
	assert.Equal(t, "en", Locale(ctx))
	assert.Equal(t, "", RequestID(ctx))
	assert.Equal(t, "", Locale(context.Background()))
}
