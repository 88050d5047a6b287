package handler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-weighing-service/internal/catalog"
	"github.com/fekuna/omnipos-weighing-service/internal/i18n"
	"github.com/fekuna/omnipos-weighing-service/internal/logger"
	"github.com/fekuna/omnipos-weighing-service/internal/middleware"
	"github.com/fekuna/omnipos-weighing-service/internal/model"
	"github.com/fekuna/omnipos-weighing-service/internal/record"
	"github.com/fekuna/omnipos-weighing-service/internal/record/dto"
	"github.com/fekuna/omnipos-weighing-service/internal/report"
	pb "github.com/fekuna/omnipos-weighing-service/internal/rpc/weighingv1"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var _ pb.RecordServiceServer = (*RecordHandler)(nil)

type RecordHandler struct {
	pb.UnimplementedRecordServiceServer
	uc            record.UseCase
	bundle        *i18n.Bundle
	defaultLocale string
	logger        logger.ZapLogger
}

func NewRecordHandler(uc record.UseCase, bundle *i18n.Bundle, defaultLocale string, log logger.ZapLogger) *RecordHandler {
	return &RecordHandler{
		uc:            uc,
		bundle:        bundle,
		defaultLocale: defaultLocale,
		logger:        log,
	}
}

func (h *RecordHandler) localizer(ctx context.Context) *i18n.Localizer {
	return h.bundle.Localizer(middleware.Locale(ctx), h.defaultLocale)
}

func (h *RecordHandler) ListCatalog(ctx context.Context, req *pb.ListCatalogRequest) (*pb.ListCatalogResponse, error) {
	entries := catalog.Entries()
	products := make([]*pb.CatalogEntry, len(entries))
	for i, e := range entries {
		products[i] = &pb.CatalogEntry{Key: e.Key, Name: e.Name}
	}
	return &pb.ListCatalogResponse{Products: products}, nil
}

func (h *RecordHandler) Submit(ctx context.Context, req *pb.SubmitRequest) (*pb.SubmitResponse, error) {
	input, err := SubmitInputFromRequest(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	res, err := h.uc.Submit(ctx, input)
	if err != nil {
		h.logger.Error("failed to submit batch", zap.String("product", input.Product), zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}

	msgID, qty, net := i18n.MsgRecordCreated, input.Quantity, res.SubmittedNet
	if !res.Created {
		msgID, qty, net = i18n.MsgRecordUpdated, res.Record.Quantity, res.Record.NetWeight
	}
	msg := h.localizer(ctx).T(msgID, map[string]interface{}{
		"Quantity":  qty,
		"Packaging": strings.ToLower(string(input.PackagingType)),
		"Product":   input.Product,
		"Net":       report.FormatWeight(net),
	})

	return &pb.SubmitResponse{
		Record:  mapRecordToProto(res.Record),
		Created: res.Created,
		Message: msg,
	}, nil
}

func (h *RecordHandler) Query(ctx context.Context, req *pb.QueryRequest) (*pb.QueryResponse, error) {
	filters, err := FiltersFromProduct(req.Product)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	res, err := h.uc.Query(ctx, filters)
	if err != nil {
		h.logger.Error("failed to query records", zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}

	records := make([]*pb.Record, len(res.Records))
	for i := range res.Records {
		records[i] = mapRecordToProto(&res.Records[i])
	}

	loc := h.localizer(ctx)
	label := res.FilterLabel
	if label == catalog.AllProducts {
		label = loc.T(i18n.MsgAllProductsLabel, nil)
	}

	return &pb.QueryResponse{
		Records:        records,
		TotalNetWeight: res.TotalNetWeight,
		FilterLabel:    res.FilterLabel,
		Message: loc.T(i18n.MsgTotalWeight, map[string]interface{}{
			"Label": label,
			"Total": report.FormatWeight(res.TotalNetWeight),
		}),
	}, nil
}

func (h *RecordHandler) ExportText(ctx context.Context, req *pb.ExportRequest) (*pb.ExportResponse, error) {
	return h.export(ctx, req, h.uc.ExportText)
}

func (h *RecordHandler) ExportPDF(ctx context.Context, req *pb.ExportRequest) (*pb.ExportResponse, error) {
	return h.export(ctx, req, h.uc.ExportPDF)
}

func (h *RecordHandler) export(ctx context.Context, req *pb.ExportRequest, fn func(context.Context, *dto.RecordFilters) (*dto.ExportResult, error)) (*pb.ExportResponse, error) {
	filters, err := FiltersFromProduct(req.Product)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	res, err := fn(ctx, filters)
	if err != nil {
		h.logger.Error("failed to export report", zap.String("product", req.Product), zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &pb.ExportResponse{
		FileName: res.FileName,
		Path:     res.Path,
		Content:  res.Content,
		Records:  int32(res.Records),
		Message:  h.localizer(ctx).T(i18n.MsgReportExported, map[string]interface{}{"Path": res.Path}),
	}, nil
}

func (h *RecordHandler) DeleteRecord(ctx context.Context, req *pb.DeleteRecordRequest) (*pb.DeleteRecordResponse, error) {
	err := h.uc.DeleteRecord(ctx, req.Id)
	if err != nil {
		if errors.Is(err, record.ErrRecordNotFound) {
			return nil, status.Error(codes.NotFound, h.localizer(ctx).T(i18n.MsgRecordNotFound, map[string]interface{}{"ID": req.Id}))
		}
		h.logger.Error("failed to delete record", zap.Int64("record_id", req.Id), zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &pb.DeleteRecordResponse{
		Message: h.localizer(ctx).T(i18n.MsgRecordDeleted, map[string]interface{}{"ID": req.Id}),
	}, nil
}

func (h *RecordHandler) DeleteAllRecords(ctx context.Context, req *pb.DeleteAllRecordsRequest) (*pb.DeleteAllRecordsResponse, error) {
	n, err := h.uc.DeleteAllRecords(ctx, req.Password)
	if err != nil {
		if errors.Is(err, record.ErrAuthenticationFailure) {
			return nil, status.Error(codes.PermissionDenied, h.localizer(ctx).T(i18n.MsgWrongPassword, nil))
		}
		h.logger.Error("failed to delete all records", zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &pb.DeleteAllRecordsResponse{
		Deleted: n,
		Message: h.localizer(ctx).T(i18n.MsgAllRecordsDeleted, map[string]interface{}{"Count": n}),
	}, nil
}

// SubmitInputFromRequest applies the form constraints the usecase relies on:
// a catalog product, a known packaging type, quantity of at least one and
// non-negative weights.
func SubmitInputFromRequest(req *pb.SubmitRequest) (*dto.SubmitInput, error) {
	product, ok := catalog.Resolve(req.Product)
	if !ok {
		return nil, fmt.Errorf("unknown product %q", req.Product)
	}
	packaging, err := model.ParsePackagingType(req.PackagingType)
	if err != nil {
		return nil, err
	}
	if req.Quantity < 1 {
		return nil, errors.New("quantity must be at least 1")
	}
	if req.GrossWeight.IsNegative() {
		return nil, errors.New("gross weight must not be negative")
	}
	if req.DeductWeight && req.Discount.IsNegative() {
		return nil, errors.New("discount must not be negative")
	}

	return &dto.SubmitInput{
		Product:       product,
		PackagingType: packaging,
		Quantity:      req.Quantity,
		GrossWeight:   req.GrossWeight,
		DeductWeight:  req.DeductWeight,
		Discount:      req.Discount,
	}, nil
}

// FiltersFromProduct turns a product filter into RecordFilters. Empty or "all"
// selects every product; anything else must resolve against the catalog by
// key or name.
func FiltersFromProduct(s string) (*dto.RecordFilters, error) {
	if catalog.IsAll(s) {
		return &dto.RecordFilters{Product: catalog.AllProducts}, nil
	}
	product, ok := catalog.Resolve(s)
	if !ok {
		return nil, fmt.Errorf("unknown product %q", s)
	}
	return &dto.RecordFilters{Product: product}, nil
}

func mapRecordToProto(m *model.ProductRecord) *pb.Record {
	if m == nil {
		return nil
	}
	return &pb.Record{
		Id:            m.ID,
		Product:       m.Product,
		PackagingType: string(m.PackagingType),
		Quantity:      m.Quantity,
		GrossWeight:   m.GrossWeight,
		Discount:      m.Discount,
		NetWeight:     m.NetWeight,
	}
}
