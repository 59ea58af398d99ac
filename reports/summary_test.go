package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/imdcare/reports-api/models"
)

func TestSummaryCountsActivePatientsAndOccupancy(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	filter := models.DateFilter{
		StartDate: now.AddDate(0, 0, -7),
		EndDate:   now,
	}

	patients := []models.Patient{
		{Admissions: []models.Admission{{
			Status:        models.AdmissionStatusActive,
			AdmissionDate: now.AddDate(0, 0, -3),
		}}},
		{Admissions: []models.Admission{{
			Status:        models.AdmissionStatusActive,
			AdmissionDate: now.AddDate(0, 0, -5),
		}}},
		// discharged admissions do not count toward occupancy
		{Admissions: []models.Admission{{
			Status:        models.AdmissionStatusDischarged,
			AdmissionDate: now.AddDate(0, 0, -3),
		}}},
		// active but admitted before the range
		{Admissions: []models.Admission{{
			Status:        models.AdmissionStatusActive,
			AdmissionDate: now.AddDate(0, 0, -20),
		}}},
	}
	consultations := []models.Consultation{
		{Status: models.ConsultationStatusActive, CreatedAt: now.AddDate(0, 0, -1)},
		{Status: models.ConsultationStatusCompleted, CreatedAt: now.AddDate(0, 0, -1)},
		{Status: models.ConsultationStatusActive, CreatedAt: now.AddDate(0, 0, -10)},
	}

	metrics := Summary(patients, consultations, filter, now, 100)

	assert.Equal(t, 2, metrics.ActivePatients)
	assert.Equal(t, 1, metrics.ActiveConsultations)
	assert.Equal(t, 2, metrics.OccupancyRate)
	assert.Equal(t, 4, metrics.AverageStay) // round((3+5)/2)
}

func TestSummaryEmptyInput(t *testing.T) {
	metrics := Summary(nil, nil, models.DateFilter{}, time.Now(), 100)
	assert.Equal(t, 0, metrics.ActivePatients)
	assert.Equal(t, 0, metrics.ActiveConsultations)
	assert.Equal(t, 0, metrics.AverageStay)
	assert.Equal(t, 0, metrics.OccupancyRate)
}

func TestSafetyStatsCountsAndRate(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	filter := models.DateFilter{
		StartDate: now.AddDate(0, 0, -7),
		EndDate:   now,
	}
	discharged := now.AddDate(0, 0, -1)

	patients := []models.Patient{
		{Admissions: []models.Admission{{
			Status:        models.AdmissionStatusActive,
			AdmissionDate: now.AddDate(0, 0, -2),
			SafetyType:    models.SafetyTypeEmergency,
		}}},
		{Admissions: []models.Admission{{
			Status:        models.AdmissionStatusActive,
			AdmissionDate: now.AddDate(0, 0, -2),
			SafetyType:    models.SafetyTypeObservation,
		}}},
		// active with no safety classification, still part of the active total
		{Admissions: []models.Admission{{
			Status:        models.AdmissionStatusActive,
			AdmissionDate: now.AddDate(0, 0, -2),
		}}},
		// discharged safety admission contributes to the average stay only
		{Admissions: []models.Admission{{
			Status:        models.AdmissionStatusDischarged,
			AdmissionDate: now.AddDate(0, 0, -4),
			DischargeDate: &discharged,
			SafetyType:    models.SafetyTypeShortStay,
		}}},
	}

	metrics := SafetyStats(patients, filter)

	assert.Equal(t, 3, metrics.TotalActiveAdmissions)
	assert.Equal(t, 2, metrics.TotalSafetyAdmissions)
	assert.Equal(t, 67, metrics.SafetyRate)
	assert.Equal(t, 1, metrics.Counts[models.SafetyTypeEmergency])
	assert.Equal(t, 1, metrics.Counts[models.SafetyTypeObservation])
	assert.Equal(t, 3, metrics.AverageStay)
}

func TestSafetyStatsOneCurrentAdmissionPerPatient(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	filter := models.DateFilter{
		StartDate: now.AddDate(0, 0, -7),
		EndDate:   now,
	}

	patients := []models.Patient{
		// two active admissions, only the first one classifies the patient
		{Admissions: []models.Admission{
			{
				Status:        models.AdmissionStatusActive,
				AdmissionDate: now.AddDate(0, 0, -3),
				SafetyType:    models.SafetyTypeEmergency,
			},
			{
				Status:        models.AdmissionStatusActive,
				AdmissionDate: now.AddDate(0, 0, -1),
				SafetyType:    models.SafetyTypeObservation,
			},
		}},
		// first active admission is unclassified, the later one is ignored
		{Admissions: []models.Admission{
			{
				Status:        models.AdmissionStatusActive,
				AdmissionDate: now.AddDate(0, 0, -2),
			},
			{
				Status:        models.AdmissionStatusActive,
				AdmissionDate: now.AddDate(0, 0, -1),
				SafetyType:    models.SafetyTypeEmergency,
			},
		}},
	}

	metrics := SafetyStats(patients, filter)

	assert.Equal(t, 2, metrics.TotalActiveAdmissions)
	assert.Equal(t, 1, metrics.TotalSafetyAdmissions)
	assert.Equal(t, 1, metrics.Counts[models.SafetyTypeEmergency])
	assert.Equal(t, 0, metrics.Counts[models.SafetyTypeObservation])
	assert.Equal(t, 50, metrics.SafetyRate)
}

func TestSafetyStatsEmptyInput(t *testing.T) {
	metrics := SafetyStats(nil, models.DateFilter{})
	assert.Equal(t, 0, metrics.SafetyRate)
	assert.Empty(t, metrics.Counts)
}
