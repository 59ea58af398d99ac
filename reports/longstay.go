package reports

import (
	"math"
	"sort"
	"time"

	"github.com/imdcare/reports-api/models"
)

// LongStayThresholdDays is the minimum current stay duration, in days, for a
// patient to be reported as long-stay
const LongStayThresholdDays = 7

// LongStayPatient is one row of the long-stay report
type LongStayPatient struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	MRN           string    `json:"mrn"`
	Department    string    `json:"department"`
	AdmissionDate time.Time `json:"admissionDate"`
	DaysOfStay    int       `json:"daysOfStay"`
	Doctor        string    `json:"doctor"`
	Diagnosis     string    `json:"diagnosis,omitempty"`
}

// LongStayReport holds the long-stay patients plus their rollup stats
type LongStayReport struct {
	Patients    []LongStayPatient `json:"patients"`
	Total       int               `json:"total"`
	AverageStay int               `json:"averageStay"`
	MaxStay     int               `json:"maxStay"`
}

// LongStayPatients selects patients admitted within the filter range whose
// current stay has lasted at least LongStayThresholdDays, sorted descending
// by stay duration. Stay duration counts whole calendar days between the
// admission day and now. The diagnosis comes from the latest admission, and
// a missing doctor defaults to "Not Assigned".
func LongStayPatients(patients []models.Patient, filter models.DateFilter, now time.Time) LongStayReport {
	selected := []LongStayPatient{}

	for _, patient := range patients {
		if !withinRange(patient.AdmissionDate, filter.StartDate, filter.EndDate) {
			continue
		}

		daysOfStay := calendarDaysBetween(patient.AdmissionDate, now)
		if daysOfStay < LongStayThresholdDays {
			continue
		}

		doctor := patient.DoctorName
		if doctor == "" {
			doctor = "Not Assigned"
		}

		diagnosis := ""
		if n := len(patient.Admissions); n > 0 {
			diagnosis = patient.Admissions[n-1].Diagnosis
		}

		selected = append(selected, LongStayPatient{
			ID:            patient.ID,
			Name:          patient.FullName,
			MRN:           patient.MRN,
			Department:    patient.Department,
			AdmissionDate: patient.AdmissionDate,
			DaysOfStay:    daysOfStay,
			Doctor:        doctor,
			Diagnosis:     diagnosis,
		})
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].DaysOfStay > selected[j].DaysOfStay
	})

	report := LongStayReport{Patients: selected, Total: len(selected)}
	if report.Total > 0 {
		totalDays := 0
		for _, p := range selected {
			totalDays += p.DaysOfStay
			if p.DaysOfStay > report.MaxStay {
				report.MaxStay = p.DaysOfStay
			}
		}
		report.AverageStay = int(math.Round(float64(totalDays) / float64(report.Total)))
	}
	return report
}
