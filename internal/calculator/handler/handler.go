package handler

import (
	"context"

	"github.com/fekuna/omnipos-weighing-service/internal/calculator"
	"github.com/fekuna/omnipos-weighing-service/internal/i18n"
	"github.com/fekuna/omnipos-weighing-service/internal/logger"
	"github.com/fekuna/omnipos-weighing-service/internal/middleware"
	pb "github.com/fekuna/omnipos-weighing-service/internal/rpc/weighingv1"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var _ pb.CalculatorServiceServer = (*CalculatorHandler)(nil)

type CalculatorHandler struct {
	pb.UnimplementedCalculatorServiceServer
	bundle        *i18n.Bundle
	defaultLocale string
	logger        logger.ZapLogger
}

func NewCalculatorHandler(bundle *i18n.Bundle, defaultLocale string, log logger.ZapLogger) *CalculatorHandler {
	return &CalculatorHandler{
		bundle:        bundle,
		defaultLocale: defaultLocale,
		logger:        log,
	}
}

func (h *CalculatorHandler) Calculate(ctx context.Context, req *pb.CalculateRequest) (*pb.CalculateResponse, error) {
	op, err := calculator.ParseOperation(req.Operation)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	res, err := calculator.Calculate(op, req.A, req.B)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	loc := h.bundle.Localizer(middleware.Locale(ctx), h.defaultLocale)
	msg := loc.T(i18n.MsgCalculationResult, map[string]interface{}{"Result": res.String()})
	if res.DivisionByZero {
		h.logger.Debug("calculator division by zero", zap.Float64("a", req.A))
		msg = loc.T(i18n.MsgDivisionByZero, nil)
	}

	return &pb.CalculateResponse{
		Value:          res.Value,
		DivisionByZero: res.DivisionByZero,
		Message:        msg,
	}, nil
}
