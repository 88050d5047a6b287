package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type PackagingType string

const (
	PackagingBox PackagingType = "Box"
	PackagingBag PackagingType = "Bag"
)

// PackagingTypes lists the accepted packaging types in display order.
var PackagingTypes = []PackagingType{PackagingBox, PackagingBag}

func (p PackagingType) Valid() bool {
	return p == PackagingBox || p == PackagingBag
}

// ParsePackagingType matches s against the known packaging types, ignoring case.
func ParsePackagingType(s string) (PackagingType, error) {
	for _, p := range PackagingTypes {
		if strings.EqualFold(strings.TrimSpace(s), string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown packaging type %q", s)
}

// WeightScale is the number of decimal places kept for weights (grams). Values
// at this scale survive the REAL column unchanged.
const WeightScale = 3

// ProductRecord is the cumulative row kept per (product, packaging type) pair.
// NetWeight is the sum of per-submission floored nets, not GrossWeight - Discount.
type ProductRecord struct {
	ID            int64           `db:"id" json:"id"`
	Product       string          `db:"product" json:"product"`
	PackagingType PackagingType   `db:"packaging_type" json:"packaging_type"`
	Quantity      int64           `db:"quantity" json:"quantity"`
	GrossWeight   decimal.Decimal `db:"gross_weight" json:"gross_weight"`
	Discount      decimal.Decimal `db:"discount" json:"discount"`
	NetWeight     decimal.Decimal `db:"net_weight" json:"net_weight"`
}
