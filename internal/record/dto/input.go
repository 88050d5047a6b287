package dto

import (
	"github.com/fekuna/omnipos-weighing-service/internal/model"
	"github.com/shopspring/decimal"
)

type SubmitInput struct {
	Product       string
	PackagingType model.PackagingType
	Quantity      int64
	GrossWeight   decimal.Decimal
	DeductWeight  bool            // When false, Discount is ignored
	Discount      decimal.Decimal // Total kg to deduct from this batch
}
