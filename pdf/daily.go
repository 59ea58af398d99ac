package pdf

import (
	"strconv"
	"strings"

	"github.com/imdcare/reports-api/models"
)

// DailyReport renders the daily report: consultation and appointment detail
// tables followed by a metric summary
func (e *Exporter) DailyReport(data ExportData) ([]byte, error) {
	title := data.Title
	if title == "" {
		title = "IMD-Care Daily Report"
	}
	doc := e.newDocument(title, data.GeneratedAt, data.DateFilter)

	if len(data.Consultations) > 0 {
		sectionTitle(doc, "Medical Consultations")
		rows := make([][]string, 0, len(data.Consultations))
		for _, c := range data.Consultations {
			doctorName := "Pending"
			if c.Doctor != nil && c.Doctor.Name != "" {
				doctorName = c.Doctor.Name
			}
			rows = append(rows, []string{
				c.PatientName,
				c.MRN,
				c.Specialty,
				doctorName,
				c.CreatedAt.Format(timestampFmt),
				c.Urgency,
			})
		}
		drawTable(doc,
			[]string{"Patient", "MRN", "Specialty", "Doctor", "Created", "Urgency"},
			[]float64{38, 25, 30, 32, 32, 25},
			rows)
	}

	if len(data.Appointments) > 0 {
		sectionTitle(doc, "Clinic Appointments")
		rows := make([][]string, 0, len(data.Appointments))
		for _, a := range data.Appointments {
			rows = append(rows, []string{
				a.PatientName,
				a.MedicalNumber,
				a.Specialty,
				a.AppointmentType,
				a.Status,
			})
		}
		drawTable(doc,
			[]string{"Patient", "Medical Number", "Specialty", "Type", "Status"},
			[]float64{42, 35, 35, 35, 35},
			rows)
	}

	sectionTitle(doc, "Summary")
	emergency, urgent := 0, 0
	for _, c := range data.Consultations {
		switch strings.ToLower(c.Urgency) {
		case models.UrgencyEmergency:
			emergency++
		case models.UrgencyUrgent:
			urgent++
		}
	}
	metricTable(doc, [][]string{
		{"Total Medical Consultations", strconv.Itoa(len(data.Consultations))},
		{"Total Clinic Appointments", strconv.Itoa(len(data.Appointments))},
		{"Emergency Consultations", strconv.Itoa(emergency)},
		{"Urgent Consultations", strconv.Itoa(urgent)},
	})

	return output(doc, "daily")
}
