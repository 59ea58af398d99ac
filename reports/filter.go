package reports

import (
	"strings"
	"time"

	"github.com/imdcare/reports-api/models"
)

// FilterConsultations applies the UI filter contract to a consultation
// snapshot: created_at inside the resolved date range, exact specialty match
// unless the specialty filter is "all" or empty, and a case-insensitive
// substring match of the search query against patient name or MRN.
func FilterConsultations(consultations []models.Consultation, filters models.ReportFilters, now time.Time) []models.Consultation {
	dateFilter := filters.Resolve(now)
	query := strings.ToLower(filters.SearchQuery)

	filtered := []models.Consultation{}
	for _, consultation := range consultations {
		if !withinRange(consultation.CreatedAt, dateFilter.StartDate, dateFilter.EndDate) {
			continue
		}
		if filters.Specialty != "" && filters.Specialty != "all" && consultation.Specialty != filters.Specialty {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(consultation.PatientName), query) &&
			!strings.Contains(strings.ToLower(consultation.MRN), query) {
			continue
		}
		filtered = append(filtered, consultation)
	}
	return filtered
}
