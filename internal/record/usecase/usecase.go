package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fekuna/omnipos-weighing-service/internal/catalog"
	"github.com/fekuna/omnipos-weighing-service/internal/logger"
	"github.com/fekuna/omnipos-weighing-service/internal/model"
	"github.com/fekuna/omnipos-weighing-service/internal/record"
	"github.com/fekuna/omnipos-weighing-service/internal/record/dto"
	"github.com/fekuna/omnipos-weighing-service/internal/report"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Options struct {
	ReportDir          string
	TextFileName       string
	PDFFileName        string
	BulkDeletePassword string
}

type recordUseCase struct {
	repo   record.Repository
	opts   Options
	logger logger.ZapLogger
}

func NewRecordUseCase(repo record.Repository, opts Options, log logger.ZapLogger) record.UseCase {
	if opts.ReportDir == "" {
		opts.ReportDir = "."
	}
	if opts.TextFileName == "" {
		opts.TextFileName = "product_report_filtered.txt"
	}
	if opts.PDFFileName == "" {
		opts.PDFFileName = "product_report_filtered.pdf"
	}
	return &recordUseCase{
		repo:   repo,
		opts:   opts,
		logger: log,
	}
}

// Submit merges one batch into the record for its (product, packaging type)
// key, creating the record on first sight. The caller is trusted to pass
// non-negative values. Weights are rounded to model.WeightScale first.
//
// NetWeight grows by the floored net of this batch only; it is never
// recomputed from the cumulative gross and discount.
func (uc *recordUseCase) Submit(ctx context.Context, input *dto.SubmitInput) (*dto.SubmitResult, error) {
	gross := input.GrossWeight.Round(model.WeightScale)
	discount := input.Discount.Round(model.WeightScale)
	if !input.DeductWeight {
		discount = decimal.Zero
	}
	net := decimal.Max(gross.Sub(discount), decimal.Zero)

	result := &dto.SubmitResult{SubmittedNet: net}

	err := uc.repo.WithinTx(ctx, func(repo record.Repository) error {
		existing, err := repo.FindByKey(ctx, input.Product, input.PackagingType)
		if err != nil {
			return err
		}

		if existing == nil {
			rec := &model.ProductRecord{
				Product:       input.Product,
				PackagingType: input.PackagingType,
				Quantity:      input.Quantity,
				GrossWeight:   gross,
				Discount:      discount,
				NetWeight:     net,
			}
			if _, err := repo.Insert(ctx, rec); err != nil {
				return err
			}
			result.Record = rec
			result.Created = true
			return nil
		}

		existing.Quantity += input.Quantity
		existing.GrossWeight = existing.GrossWeight.Add(gross)
		existing.Discount = existing.Discount.Add(discount)
		existing.NetWeight = existing.NetWeight.Add(net)
		if err := repo.Update(ctx, existing); err != nil {
			return err
		}
		result.Record = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("batch accumulated",
		zap.Int64("record_id", result.Record.ID),
		zap.String("product", result.Record.Product),
		zap.String("packaging_type", string(result.Record.PackagingType)),
		zap.Bool("created", result.Created),
		zap.String("net_submitted", net.String()),
		zap.String("net_total", result.Record.NetWeight.String()),
	)
	return result, nil
}

// Query returns the records matching filters and the sum of their net weights.
func (uc *recordUseCase) Query(ctx context.Context, filters *dto.RecordFilters) (*dto.QueryResult, error) {
	if filters == nil {
		filters = &dto.RecordFilters{}
	}

	items, err := uc.repo.FindAll(ctx, filters)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.NetWeight)
	}

	label := catalog.AllProducts
	if !catalog.IsAll(filters.Product) {
		label = filters.Product
	}

	return &dto.QueryResult{
		Records:        items,
		TotalNetWeight: total,
		FilterLabel:    label,
	}, nil
}

func (uc *recordUseCase) ExportText(ctx context.Context, filters *dto.RecordFilters) (*dto.ExportResult, error) {
	return uc.export(ctx, filters, uc.opts.TextFileName, func(r report.Report) ([]byte, error) {
		return report.RenderText(r), nil
	})
}

func (uc *recordUseCase) ExportPDF(ctx context.Context, filters *dto.RecordFilters) (*dto.ExportResult, error) {
	return uc.export(ctx, filters, uc.opts.PDFFileName, report.RenderPDF)
}

func (uc *recordUseCase) export(ctx context.Context, filters *dto.RecordFilters, fileName string, render func(report.Report) ([]byte, error)) (*dto.ExportResult, error) {
	res, err := uc.Query(ctx, filters)
	if err != nil {
		return nil, err
	}

	content, err := render(report.Report{
		Records:        res.Records,
		TotalNetWeight: res.TotalNetWeight,
		FilterLabel:    res.FilterLabel,
	})
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(uc.opts.ReportDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create report dir: %w", err)
	}
	path := filepath.Join(uc.opts.ReportDir, fileName)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write report %s: %w", path, err)
	}

	uc.logger.Info("report exported",
		zap.String("path", path),
		zap.String("filter", res.FilterLabel),
		zap.Int("records", len(res.Records)),
	)

	return &dto.ExportResult{
		FileName: fileName,
		Path:     path,
		Content:  content,
		Records:  len(res.Records),
	}, nil
}

func (uc *recordUseCase) DeleteRecord(ctx context.Context, id int64) error {
	deleted, err := uc.repo.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		uc.logger.Debug("delete of unknown record ignored", zap.Int64("record_id", id))
		return record.ErrRecordNotFound
	}
	uc.logger.Info("record deleted", zap.Int64("record_id", id))
	return nil
}

func (uc *recordUseCase) DeleteAllRecords(ctx context.Context, password string) (int64, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(uc.opts.BulkDeletePassword)) != 1 {
		uc.logger.Warn("bulk delete rejected: wrong password")
		return 0, record.ErrAuthenticationFailure
	}

	n, err := uc.repo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	uc.logger.Warn("all records deleted", zap.Int64("count", n))
	return n, nil
}
