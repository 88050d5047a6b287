package dto

import (
	"github.com/fekuna/omnipos-weighing-service/internal/model"
	"github.com/shopspring/decimal"
)

type RecordFilters struct {
	Product string // Empty or "all" selects every product
}

type SubmitResult struct {
	Record       *model.ProductRecord
	Created      bool
	SubmittedNet decimal.Decimal
}

type QueryResult struct {
	Records        []model.ProductRecord
	TotalNetWeight decimal.Decimal
	FilterLabel    string
}

type ExportResult struct {
	FileName string
	Path     string
	Content  []byte
	Records  int
}
