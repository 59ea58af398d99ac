package pdf

import (
	"fmt"
	"strconv"
	"time"

	"github.com/imdcare/reports-api/models"
	"github.com/imdcare/reports-api/reports"
)

// LongStayReport renders the long-stay patient report: one detail row per
// patient plus the duration rollup
func (e *Exporter) LongStayReport(report reports.LongStayReport, filter models.DateFilter, generatedAt time.Time) ([]byte, error) {
	doc := e.newDocument("Long Stay Patient Report", generatedAt, filter)

	if len(report.Patients) > 0 {
		rows := make([][]string, 0, len(report.Patients))
		for _, p := range report.Patients {
			rows = append(rows, []string{
				p.Name,
				p.MRN,
				p.Department,
				p.Doctor,
				p.AdmissionDate.Format(periodDateFmt),
				fmt.Sprintf("%d days", p.DaysOfStay),
			})
		}
		drawTable(doc,
			[]string{"Patient Name", "MRN", "Department", "Doctor", "Admission Date", "Stay Duration"},
			[]float64{38, 25, 30, 32, 30, 27},
			rows)
	} else {
		doc.SetFont("Helvetica", "", 11)
		doc.SetX(pageMargin)
		doc.CellFormat(0, 8, "No long stay patients found in the selected date range", "", 1, "L", false, 0, "")
		doc.Ln(8)
	}

	sectionTitle(doc, "Summary")
	metricTable(doc, [][]string{
		{"Total Long Stay Patients", strconv.Itoa(report.Total)},
		{"Average Stay Duration (days)", strconv.Itoa(report.AverageStay)},
		{"Longest Stay (days)", strconv.Itoa(report.MaxStay)},
	})

	return output(doc, "long-stay")
}
