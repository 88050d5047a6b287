package report

import (
	"fmt"
	"strings"
)

// RenderText returns the UTF-8 text report: one line per record, a blank
// line, then the total line.
func RenderText(r Report) []byte {
	var b strings.Builder
	for _, rec := range r.Records {
		fmt.Fprintf(&b,
			"Product: %s | Type: %s | Quantity: %d | Gross weight: %s kg | Discount: %s kg | Net weight: %s kg\n",
			rec.Product,
			rec.PackagingType,
			rec.Quantity,
			formatRaw(rec.GrossWeight),
			formatRaw(rec.Discount),
			FormatWeight(rec.NetWeight),
		)
	}
	fmt.Fprintf(&b, "\nTotal weight (%s): %s kg", r.FilterLabel, FormatWeight(r.TotalNetWeight))
	return []byte(b.String())
}
