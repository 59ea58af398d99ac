// Package pdf renders the administrative reports as paginated PDF documents.
// Layout mirrors the dashboard: logo/title header, generation timestamp and
// period line, striped tables with automatic page breaks, and a
// "Page N of M" footer on every page.
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"github.com/imdcare/reports-api/models"
)

const (
	pageMargin    = 14.0
	logoSize      = 30.0
	timestampFmt  = "02/01/2006 15:04"
	periodDateFmt = "02/01/2006"
	filenameFmt   = "02-01-2006-1504"
)

// ExportData carries the filtered snapshot a report is rendered from
type ExportData struct {
	Patients      []models.Patient
	Consultations []models.Consultation
	Appointments  []models.Appointment
	DateFilter    models.DateFilter
	GeneratedAt   time.Time
	Title         string
}

// ChartSection is a pre-rasterized chart image placed under its own title in
// the admin report. Rasterization happens in the dashboard UI; the exporter
// only does placement.
type ChartSection struct {
	Title string
	PNG   []byte
}

// Exporter builds report PDFs. The logo is fetched over HTTP once per
// document; a missing or unreachable logo is tolerated and logged.
type Exporter struct {
	LogoURL    string
	HTTPClient *http.Client
}

// Filename returns the export filename for a report kind, e.g.
// "imd-care-daily-report-07-03-2025-1430.pdf"
func Filename(kind string, at time.Time) string {
	return fmt.Sprintf("%s-report-%s.pdf", kind, at.Format(filenameFmt))
}

func (e *Exporter) httpClient() *http.Client {
	if e.HTTPClient != nil {
		return e.HTTPClient
	}
	return http.DefaultClient
}

// fetchLogo downloads the configured logo image. Any failure is logged and
// swallowed so a missing logo never blocks report generation.
func (e *Exporter) fetchLogo() []byte {
	if e.LogoURL == "" {
		return nil
	}
	resp, err := e.httpClient().Get(e.LogoURL)
	if err != nil {
		zap.S().Warnw("failed to fetch report logo", "url", e.LogoURL, "error", err)
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		zap.S().Warnw("unexpected status fetching report logo", "url", e.LogoURL, "status", resp.StatusCode)
		return nil
	}
	logo, err := io.ReadAll(resp.Body)
	if err != nil {
		zap.S().Warnw("failed to read report logo", "url", e.LogoURL, "error", err)
		return nil
	}
	return logo
}

// newDocument creates an A4 portrait document with the shared header and the
// page-number footer installed
func (e *Exporter) newDocument(title string, generatedAt time.Time, filter models.DateFilter) *gofpdf.Fpdf {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(true, 20)
	doc.AliasNbPages("")
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Helvetica", "", 10)
		doc.SetTextColor(108, 117, 125)
		doc.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", doc.PageNo()), "", 0, "C", false, 0, "")
	})
	doc.AddPage()

	if logo := e.fetchLogo(); logo != nil {
		opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
		doc.RegisterImageOptionsReader("logo", opts, bytes.NewReader(logo))
		doc.ImageOptions("logo", 15, 15, logoSize, logoSize, false, opts, 0, "")
	}

	pageWidth, _ := doc.GetPageSize()

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "B", 20)
	doc.SetXY(0, 25)
	doc.CellFormat(pageWidth, 10, title, "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 12)
	doc.CellFormat(pageWidth, 7, fmt.Sprintf("Generated on: %s", generatedAt.Format(timestampFmt)), "", 1, "C", false, 0, "")
	doc.CellFormat(pageWidth, 7,
		fmt.Sprintf("Period: %s to %s", filter.StartDate.Format(periodDateFmt), filter.EndDate.Format(periodDateFmt)),
		"", 1, "C", false, 0, "")
	doc.Ln(8)

	return doc
}

// output finalizes the document, distinguishing build failures from export
// failures
func output(doc *gofpdf.Fpdf, kind string) ([]byte, error) {
	if err := doc.Error(); err != nil {
		return nil, generationError(fmt.Sprintf("failed to generate %s report", kind), err)
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, exportError(fmt.Sprintf("failed to export %s report", kind), err)
	}
	return buf.Bytes(), nil
}
