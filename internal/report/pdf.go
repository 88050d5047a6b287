package report

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"
)

const (
	pdfTitle   = "Filtered Products Report"
	pageMargin = 20.0
	rowHeight  = 8.0
	gridWidth  = 0.5 / 72 * 25.4 // 0.5pt in mm
)

var (
	tableHeader  = []string{"Product", "Type", "Qty", "Gross", "Discount", "Net"}
	columnWidths = []float64{40, 22, 18, 30, 30, 30}
)

// TableRows builds the tabular view of r: header, one row per record, total row.
func TableRows(r Report) [][]string {
	rows := make([][]string, 0, len(r.Records)+2)
	rows = append(rows, append([]string(nil), tableHeader...))
	for _, rec := range r.Records {
		rows = append(rows, []string{
			rec.Product,
			string(rec.PackagingType),
			strconv.FormatInt(rec.Quantity, 10),
			formatRaw(rec.GrossWeight) + " kg",
			formatRaw(rec.Discount) + " kg",
			FormatWeight(rec.NetWeight) + " kg",
		})
	}
	rows = append(rows, []string{"", "", "", "", "Total", FormatWeight(r.TotalNetWeight) + " kg"})
	return rows
}

// RenderPDF returns an A4 PDF with a title and the TableRows table. The header
// row is repeated at the top of every page.
func RenderPDF(r Report) ([]byte, error) {
	doc, err := buildPDF(r)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func buildPDF(r Report) (*fpdf.Fpdf, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(false, pageMargin)
	doc.SetTitle(pdfTitle, true)

	// Core fonts are cp1252; product names carry accents.
	tr := doc.UnicodeTranslatorFromDescriptor("")

	rows := TableRows(r)
	header, body := rows[0], rows[1:]

	doc.AddPage()
	doc.SetFont("Helvetica", "B", 18)
	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(0, 12, tr(pdfTitle), "", 1, "C", false, 0, "")
	doc.Ln(6)
	drawHeader(doc, tr, header)

	_, pageHeight := doc.GetPageSize()
	for _, row := range body {
		if doc.GetY()+rowHeight > pageHeight-pageMargin {
			doc.AddPage()
			drawHeader(doc, tr, header)
		}
		doc.SetFont("Helvetica", "", 10)
		doc.SetTextColor(0, 0, 0)
		for i, cell := range row {
			doc.CellFormat(columnWidths[i], rowHeight, tr(cell), "1", 0, "C", false, 0, "")
		}
		doc.Ln(-1)
	}

	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return doc, nil
}

func drawHeader(doc *fpdf.Fpdf, tr func(string) string, header []string) {
	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(128, 128, 128)
	doc.SetTextColor(245, 245, 245)
	doc.SetDrawColor(0, 0, 0)
	doc.SetLineWidth(gridWidth)
	for i, cell := range header {
		doc.CellFormat(columnWidths[i], rowHeight, tr(cell), "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)
}
