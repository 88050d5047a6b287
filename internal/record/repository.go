package record

import (
	"context"

	"github.com/fekuna/omnipos-weighing-service/internal/model"
	"github.com/fekuna/omnipos-weighing-service/internal/record/dto"
)

type Repository interface {
	// Schema
	Initialize(ctx context.Context) error

	// Reads
	FindByKey(ctx context.Context, product string, packaging model.PackagingType) (*model.ProductRecord, error)
	FindAll(ctx context.Context, filters *dto.RecordFilters) ([]model.ProductRecord, error)

	// Writes
	Insert(ctx context.Context, rec *model.ProductRecord) (int64, error)
	Update(ctx context.Context, rec *model.ProductRecord) error
	DeleteByID(ctx context.Context, id int64) (bool, error)
	DeleteAll(ctx context.Context) (int64, error)

	// Transaction support
	WithinTx(ctx context.Context, fn func(repo Repository) error) error
}
