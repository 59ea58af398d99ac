package pdf

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/imdcare/reports-api/models"
	"github.com/imdcare/reports-api/reports"
)

var testFilter = models.DateFilter{
	StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	EndDate:   time.Date(2025, 3, 7, 23, 59, 59, 0, time.UTC),
	Period:    "week",
}

func TestFilename(t *testing.T) {
	at := time.Date(2025, 3, 7, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "imd-care-daily-report-07-03-2025-1430.pdf", Filename("imd-care-daily", at))
	assert.Equal(t, "long-stay-report-07-03-2025-1430.pdf", Filename("long-stay", at))
}

func TestDailyReportProducesDocument(t *testing.T) {
	e := &Exporter{}
	doctorID := 4

	data := ExportData{
		Consultations: []models.Consultation{
			{
				PatientName: "Sara Ali",
				MRN:         "MRN-100",
				Specialty:   "Cardiology",
				Urgency:     "emergency",
				Status:      models.ConsultationStatusActive,
				DoctorID:    &doctorID,
				Doctor:      &models.ConsultingDoctor{ID: doctorID, Name: "Dr. Ahmed"},
				CreatedAt:   time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC),
			},
			{
				PatientName: "Omar Saad",
				MRN:         "MRN-200",
				Specialty:   "Neurology",
				Urgency:     "urgent",
				CreatedAt:   time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC),
			},
		},
		Appointments: []models.Appointment{
			{PatientName: "Lina Hadi", MedicalNumber: "MN-1", Specialty: "Dermatology", AppointmentType: "routine", Status: "scheduled"},
		},
		DateFilter:  testFilter,
		GeneratedAt: time.Date(2025, 3, 7, 14, 30, 0, 0, time.UTC),
	}

	b, err := e.DailyReport(data)
	assert.NoError(t, err)
	assert.NotEmpty(t, b)
	assert.Equal(t, "%PDF", string(b[:4]))
}

func TestDailyReportEmptyData(t *testing.T) {
	e := &Exporter{}
	b, err := e.DailyReport(ExportData{DateFilter: testFilter, GeneratedAt: time.Now()})
	assert.NoError(t, err)
	assert.NotEmpty(t, b)
}

func TestLongStayReportProducesDocument(t *testing.T) {
	e := &Exporter{}
	report := reports.LongStayReport{
		Patients: []reports.LongStayPatient{{
			Name:          "Sara Ali",
			MRN:           "MRN-100",
			Department:    "Internal Medicine",
			Doctor:        "Not Assigned",
			AdmissionDate: time.Date(2025, 2, 25, 8, 0, 0, 0, time.UTC),
			DaysOfStay:    10,
		}},
		Total:       1,
		AverageStay: 10,
		MaxStay:     10,
	}

	b, err := e.LongStayReport(report, testFilter, time.Now())
	assert.NoError(t, err)
	assert.Equal(t, "%PDF", string(b[:4]))
}

func TestAdminReportRejectsBadChartImage(t *testing.T) {
	e := &Exporter{}
	data := ExportData{DateFilter: testFilter, GeneratedAt: time.Now()}

	_, err := e.AdminReport(data, []ChartSection{{Title: "Occupancy Trend", PNG: []byte("not-a-png")}})
	assert.Error(t, err)

	var genErr *GenerationError
	assert.True(t, errors.As(err, &genErr))
	assert.Equal(t, CodeGeneration, genErr.Code)
	assert.NotNil(t, errors.Unwrap(genErr))
}

func TestAdminReportSkipsEmptyChartSections(t *testing.T) {
	e := &Exporter{}
	data := ExportData{DateFilter: testFilter, GeneratedAt: time.Now()}

	b, err := e.AdminReport(data, []ChartSection{{Title: "Occupancy Trend"}})
	assert.NoError(t, err)
	assert.Equal(t, "%PDF", string(b[:4]))
}

func TestGenerationErrorMessage(t *testing.T) {
	err := generationError("failed to generate daily report", errors.New("boom"))
	assert.Contains(t, err.Error(), CodeGeneration)
	assert.Contains(t, err.Error(), "boom")

	exp := exportError("failed to export daily report", errors.New("disk full"))
	assert.Equal(t, CodeExport, exp.Code)
}
