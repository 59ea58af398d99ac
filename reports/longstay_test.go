package reports

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/imdcare/reports-api/models"
)

func TestLongStayPatientsTenDayStay(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	admitted := now.AddDate(0, 0, -10)
	filter := models.DateFilter{
		StartDate: now.AddDate(0, 0, -14),
		EndDate:   now,
	}

	patients := []models.Patient{{
		ID:            1,
		FullName:      "Sara Ali",
		MRN:           "MRN-001",
		Department:    "Internal Medicine",
		AdmissionDate: admitted,
		Admissions: []models.Admission{{
			Status:        models.AdmissionStatusActive,
			AdmissionDate: admitted,
			Diagnosis:     "Pneumonia",
		}},
	}}

	report := LongStayPatients(patients, filter, now)

	assert.Equal(t, 1, report.Total)
	assert.Equal(t, 10, report.Patients[0].DaysOfStay)
	assert.Equal(t, 10, report.AverageStay)
	assert.Equal(t, 10, report.MaxStay)
	assert.Equal(t, "Pneumonia", report.Patients[0].Diagnosis)
	assert.Equal(t, "Not Assigned", report.Patients[0].Doctor)
}

func TestLongStayPatientsExcludesShortStays(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	filter := models.DateFilter{
		StartDate: now.AddDate(0, 0, -14),
		EndDate:   now,
	}

	patients := []models.Patient{
		{ID: 1, AdmissionDate: now.AddDate(0, 0, -6)},
		{ID: 2, AdmissionDate: now.AddDate(0, 0, -7)}, // exactly at the threshold
	}

	report := LongStayPatients(patients, filter, now)
	assert.Equal(t, 1, report.Total)
	assert.Equal(t, 2, report.Patients[0].ID)
	assert.Equal(t, 7, report.Patients[0].DaysOfStay)
}

func TestLongStayPatientsSortedDescending(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	filter := models.DateFilter{
		StartDate: now.AddDate(0, 0, -30),
		EndDate:   now,
	}

	patients := []models.Patient{
		{ID: 1, AdmissionDate: now.AddDate(0, 0, -9)},
		{ID: 2, AdmissionDate: now.AddDate(0, 0, -21)},
		{ID: 3, AdmissionDate: now.AddDate(0, 0, -12)},
	}

	report := LongStayPatients(patients, filter, now)
	assert.Equal(t, []int{2, 3, 1}, []int{report.Patients[0].ID, report.Patients[1].ID, report.Patients[2].ID})
	assert.Equal(t, 21, report.MaxStay)
	assert.Equal(t, 14, report.AverageStay) // round((21+12+9)/3)
}

func TestLongStayPatientsIdempotent(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	filter := models.DateFilter{
		StartDate: now.AddDate(0, 0, -30),
		EndDate:   now,
	}

	patients := []models.Patient{
		{ID: 1, AdmissionDate: now.AddDate(0, 0, -10)},
		{ID: 2, AdmissionDate: now.AddDate(0, 0, -10)},
		{ID: 3, AdmissionDate: now.AddDate(0, 0, -15)},
	}

	first := LongStayPatients(patients, filter, now)
	second := LongStayPatients(patients, filter, now)
	assert.Equal(t, first, second)

	// equal stay durations keep input order
	assert.Equal(t, 1, first.Patients[1].ID)
	assert.Equal(t, 2, first.Patients[2].ID)
}

func TestLongStayPatientsEmptyInput(t *testing.T) {
	report := LongStayPatients(nil, models.DateFilter{}, time.Now())
	assert.Equal(t, 0, report.Total)
	assert.Equal(t, 0, report.AverageStay)
	assert.Equal(t, 0, report.MaxStay)
	assert.Empty(t, report.Patients)
}

func TestCalendarDaysBetweenIgnoresPartialDays(t *testing.T) {
	from := time.Date(2025, 3, 5, 23, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 15, 1, 0, 0, 0, time.UTC)
	// millisecond truncation would give 9 days, calendar difference gives 10
	assert.Equal(t, 10, calendarDaysBetween(from, to))
}
