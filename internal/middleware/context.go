package middleware

import (
	"context"

	"google.golang.org/grpc/metadata"
)

type ctxKey int

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyLocale
)

const (
	MetadataRequestID      = "x-request-id"
	MetadataAcceptLanguage = "accept-language"
)

// RequestID returns the id set by ContextInterceptor, falling back to incoming metadata.
func RequestID(ctx context.Context) string {
	if val, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		return val
	}
	return firstMetadata(ctx, MetadataRequestID)
}

// Locale returns the caller's preferred language, or "" when none was sent.
func Locale(ctx context.Context) string {
	if val, ok := ctx.Value(ctxKeyLocale).(string); ok {
		return val
	}
	return firstMetadata(ctx, MetadataAcceptLanguage)
}

func firstMetadata(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if ok {
		if val := md.Get(key); len(val) > 0 {
			return val[0]
		}
	}
	return ""
}
