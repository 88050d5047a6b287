package record

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-weighing-service/internal/record/dto"
)

var (
	// ErrRecordNotFound is returned when deleting an id that does not exist.
	// The store is left unchanged.
	ErrRecordNotFound = errors.New("record not found")

	// ErrAuthenticationFailure is returned when the bulk-delete password does not match.
	ErrAuthenticationFailure = errors.New("authentication failure")
)

type UseCase interface {
	Submit(ctx context.Context, input *dto.SubmitInput) (*dto.SubmitResult, error)
	Query(ctx context.Context, filters *dto.RecordFilters) (*dto.QueryResult, error)
	ExportText(ctx context.Context, filters *dto.RecordFilters) (*dto.ExportResult, error)
	ExportPDF(ctx context.Context, filters *dto.RecordFilters) (*dto.ExportResult, error)
	DeleteRecord(ctx context.Context, id int64) error
	DeleteAllRecords(ctx context.Context, password string) (int64, error)
}
