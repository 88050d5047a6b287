package middleware

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-weighing-service/internal/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// ContextInterceptor stores the request id and locale on the context, echoes
// the request id back as a response header, and logs every call.
func ContextInterceptor(log logger.ZapLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()

		reqID := firstMetadata(ctx, MetadataRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		ctx = context.WithValue(ctx, ctxKeyRequestID, reqID)
		ctx = context.WithValue(ctx, ctxKeyLocale, firstMetadata(ctx, MetadataAcceptLanguage))
		_ = grpc.SetHeader(ctx, metadata.Pairs(MetadataRequestID, reqID))

		resp, err := handler(ctx, req)

		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.String("code", status.Code(err).String()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", reqID),
		}
		if err != nil {
			log.Warn("grpc request failed", append(fields, zap.Error(err))...)
		} else {
			log.Info("grpc request", fields...)
		}
		return resp, err
	}
}
