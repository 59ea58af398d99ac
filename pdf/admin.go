package pdf

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/imdcare/reports-api/models"
)

// AdminReport renders the administrative report: the active-census summary
// table followed by the supplied chart sections, each placed under its title
// with a page break whenever the image would overflow the current page
func (e *Exporter) AdminReport(data ExportData, charts []ChartSection) ([]byte, error) {
	title := data.Title
	if title == "" {
		title = "IMD-Care Administrative Report"
	}
	doc := e.newDocument(title, data.GeneratedAt, data.DateFilter)

	sectionTitle(doc, "Summary Statistics")

	activePatients := 0
	for _, patient := range data.Patients {
		for _, admission := range patient.Admissions {
			if admission.Status == models.AdmissionStatusActive {
				activePatients++
				break
			}
		}
	}
	activeConsultations := 0
	for _, consultation := range data.Consultations {
		if consultation.Status == models.ConsultationStatusActive {
			activeConsultations++
		}
	}
	metricTable(doc, [][]string{
		{"Total Active Patients", strconv.Itoa(activePatients)},
		{"Total Active Consultations", strconv.Itoa(activeConsultations)},
		{"Total Appointments", strconv.Itoa(len(data.Appointments))},
	})

	for i, chart := range charts {
		if len(chart.PNG) == 0 {
			continue
		}
		if err := placeChart(doc, chart, i); err != nil {
			return nil, generationError(fmt.Sprintf("failed to add chart %q", chart.Title), err)
		}
	}

	return output(doc, "admin")
}

// placeChart registers the chart PNG, scales it to the content width and
// draws it below its title, advancing the cursor by the rendered height
func placeChart(doc *gofpdf.Fpdf, chart ChartSection, index int) error {
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	name := fmt.Sprintf("chart-%d", index)
	info := doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(chart.PNG))
	if err := doc.Error(); err != nil {
		return err
	}

	pageWidth, pageHeight := doc.GetPageSize()
	imgWidth := pageWidth - 2*pageMargin
	imgHeight := info.Height() * imgWidth / info.Width()

	// title + image must fit above the footer or move to a fresh page
	if doc.GetY()+8+imgHeight > pageHeight-20 {
		doc.AddPage()
	}

	sectionTitle(doc, chart.Title)
	y := doc.GetY()
	doc.ImageOptions(name, pageMargin, y, imgWidth, imgHeight, false, opts, 0, "")
	doc.SetY(y + imgHeight + 10)
	return doc.Error()
}
