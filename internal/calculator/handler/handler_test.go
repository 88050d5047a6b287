package handler

import (
	"context"
	"testing"

	"github.com/fekuna/omnipos-weighing-service/internal/i18n"
	"github.com/fekuna/omnipos-weighing-service/internal/logger"
	"github.com/fekuna/omnipos-weighing-service/internal/middleware"
	pb "github.com/fekuna/omnipos-weighing-service/internal/rpc/weighingv1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newHandler(t *testing.T) *CalculatorHandler {
	t.Helper()
	bundle, err := i18n.NewBundle()
	require.NoError(t, err)
	return NewCalculatorHandler(bundle, "en", logger.NewNop())
}

func TestCalculate(t *testing.T) {
	h := newHandler(t)

	testCases := []struct {
		name    string
		req     *pb.CalculateRequest
		value   float64
		message string
	}{
		{name: "add", req: &pb.CalculateRequest{A: 2, B: 3, Operation: "+"}, value: 5, message: "Result: 5"},
		{name: "subtract", req: &pb.CalculateRequest{A: 2, B: 3, Operation: "Subtract"}, value: -1, message: "Result: -1"},
		{name: "multiply", req: &pb.CalculateRequest{A: 1.5, B: 4, Operation: "x"}, value: 6, message: "Result: 6"},
		{name: "divide", req: &pb.CalculateRequest{A: 7, B: 2, Operation: "/"}, value: 3.5, message: "Result: 3.5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := h.Calculate(context.Background(), tc.req)
			require.NoError(t, err)
			assert.Equal(t, tc.value, resp.Value)
			assert.False(t, resp.DivisionByZero)
			assert.Equal(t, tc.message, resp.Message)
		})
	}
}

func TestCalculateDivisionByZero(t *testing.T) {
	h := newHandler(t)

	resp, err := h.Calculate(context.Background(), &pb.CalculateRequest{A: 9, B: 0, Operation: "divide"})
	require.NoError(t, err)
	assert.True(t, resp.DivisionByZero)
	assert.Equal(t, "Error: division by zero", resp.Message)

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(middleware.MetadataAcceptLanguage, "pt"))
	resp, err = h.Calculate(ctx, &pb.CalculateRequest{A: 9, B: 0, Operation: "/"})
	require.NoError(t, err)
	assert.Equal(t, "Erro: divisão por zero", resp.Message)
}

func TestCalculateUnknownOperation(t *testing.T) {
	h := newHandler(t)

	_, err := h.Calculate(context.Background(), &pb.CalculateRequest{A: 1, B: 1, Operation: "%"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
