package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/imdcare/reports-api/models"
)

func TestFilterConsultationsDailyCoversTrailingDay(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	consultations := []models.Consultation{
		{ID: 1, PatientName: "Sara Ali", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: 2, PatientName: "Omar Saad", CreatedAt: now.Add(-30 * time.Hour)},
	}

	filtered := FilterConsultations(consultations, models.ReportFilters{ReportType: "daily"}, now)
	assert.Len(t, filtered, 1)
	assert.Equal(t, 1, filtered[0].ID)
}

func TestFilterConsultationsSpecialtyAndSearch(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	consultations := []models.Consultation{
		{ID: 1, PatientName: "Sara Ali", MRN: "MRN-100", Specialty: "Cardiology", CreatedAt: now.Add(-time.Hour)},
		{ID: 2, PatientName: "Omar Saad", MRN: "MRN-200", Specialty: "Neurology", CreatedAt: now.Add(-time.Hour)},
		{ID: 3, PatientName: "Lina Hadi", MRN: "MRN-300", Specialty: "Cardiology", CreatedAt: now.Add(-time.Hour)},
	}

	filtered := FilterConsultations(consultations, models.ReportFilters{
		ReportType:  "daily",
		Specialty:   "Cardiology",
		SearchQuery: "sara",
	}, now)
	assert.Len(t, filtered, 1)
	assert.Equal(t, 1, filtered[0].ID)

	byMRN := FilterConsultations(consultations, models.ReportFilters{
		ReportType:  "daily",
		Specialty:   "all",
		SearchQuery: "mrn-200",
	}, now)
	assert.Len(t, byMRN, 1)
	assert.Equal(t, 2, byMRN[0].ID)
}

func TestFilterConsultationsEmptyInput(t *testing.T) {
	filtered := FilterConsultations(nil, models.ReportFilters{ReportType: "daily"}, time.Now())
	assert.Empty(t, filtered)
}
