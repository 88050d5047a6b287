// Package report renders a filtered record set to the plain-text and PDF
// report formats. Renderers are pure: they never touch the record store.
package report

import (
	"github.com/fekuna/omnipos-weighing-service/internal/model"
	"github.com/shopspring/decimal"
)

type Report struct {
	Records        []model.ProductRecord
	TotalNetWeight decimal.Decimal
	FilterLabel    string
}

// FormatWeight renders a two-decimal weight. Net weights and totals go
// through it in every format so the outputs agree byte for byte.
func FormatWeight(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// formatRaw renders a weight as entered, without padding.
func formatRaw(d decimal.Decimal) string {
	return d.String()
}
