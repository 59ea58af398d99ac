package pdf

import "github.com/jung-kurt/gofpdf"

// sectionTitle writes a 14pt section heading at the current cursor
func sectionTitle(doc *gofpdf.Fpdf, title string) {
	doc.SetFont("Helvetica", "B", 14)
	doc.SetTextColor(0, 0, 0)
	doc.SetX(pageMargin)
	doc.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	doc.Ln(2)
}

// drawTable renders a filled-header, striped-row table. Rows page-break
// automatically through the document's auto page break.
func drawTable(doc *gofpdf.Fpdf, headers []string, widths []float64, rows [][]string) {
	doc.SetX(pageMargin)
	doc.SetFont("Helvetica", "B", 11)
	doc.SetFillColor(63, 81, 181)
	doc.SetTextColor(255, 255, 255)
	for i, header := range headers {
		doc.CellFormat(widths[i], 8, header, "1", 0, "L", true, 0, "")
	}
	doc.Ln(-1)

	doc.SetFont("Helvetica", "", 10)
	doc.SetTextColor(0, 0, 0)
	for r, row := range rows {
		if r%2 == 1 {
			doc.SetFillColor(245, 247, 250)
		} else {
			doc.SetFillColor(255, 255, 255)
		}
		doc.SetX(pageMargin)
		for i, cell := range row {
			doc.CellFormat(widths[i], 7, cell, "1", 0, "L", true, 0, "")
		}
		doc.Ln(-1)
	}
	doc.Ln(8)
}

// metricTable renders the narrow two-column metric/count summary table
func metricTable(doc *gofpdf.Fpdf, rows [][]string) {
	drawTable(doc, []string{"Metric", "Count"}, []float64{70, 30}, rows)
}
