package reports

import (
	"math"
	"time"

	"github.com/imdcare/reports-api/models"
)

// SummaryMetrics is the hospital-wide occupancy rollup
type SummaryMetrics struct {
	ActivePatients      int `json:"activePatients"`
	ActiveConsultations int `json:"activeConsultations"`
	AverageStay         int `json:"averageStay"` // days
	OccupancyRate       int `json:"occupancyRate"`
}

// Summary counts patients holding an active admission within the filter
// range, active consultations created within the range, the average current
// stay over those admissions, and the occupancy rate against the fixed
// totalBeds capacity.
func Summary(patients []models.Patient, consultations []models.Consultation, filter models.DateFilter, now time.Time, totalBeds int) SummaryMetrics {
	metrics := SummaryMetrics{}

	stayDurations := []int{}
	for _, patient := range patients {
		active := false
		for _, admission := range patient.Admissions {
			if admission.Status != models.AdmissionStatusActive {
				continue
			}
			if !withinRange(admission.AdmissionDate, filter.StartDate, filter.EndDate) {
				continue
			}
			active = true
			if days := stayDays(admission.AdmissionDate, now); days > 0 {
				stayDurations = append(stayDurations, days)
			}
		}
		if active {
			metrics.ActivePatients++
		}
	}

	for _, consultation := range consultations {
		if consultation.Status == models.ConsultationStatusActive &&
			withinRange(consultation.CreatedAt, filter.StartDate, filter.EndDate) {
			metrics.ActiveConsultations++
		}
	}

	if len(stayDurations) > 0 {
		totalDays := 0
		for _, days := range stayDurations {
			totalDays += days
		}
		metrics.AverageStay = int(math.Round(float64(totalDays) / float64(len(stayDurations))))
	}

	if totalBeds > 0 {
		metrics.OccupancyRate = int(math.Round(float64(metrics.ActivePatients) / float64(totalBeds) * 100))
	}

	return metrics
}

// SafetyMetrics is the rollup over safety-classified admissions
type SafetyMetrics struct {
	Counts                map[string]int `json:"counts"` // by safety type
	TotalSafetyAdmissions int            `json:"totalSafetyAdmissions"`
	TotalActiveAdmissions int            `json:"totalActiveAdmissions"`
	SafetyRate            int            `json:"safetyRate"`  // percent of active admissions
	AverageStay           int            `json:"averageStay"` // completed safety stays, days
}

// SafetyStats counts patients by the safety classification of their current
// admission and averages the completed stay length of discharged safety
// admissions. A patient contributes at most one active admission (the first
// one inside the range); patients whose current admission carries no safety
// type only raise the active total.
func SafetyStats(patients []models.Patient, filter models.DateFilter) SafetyMetrics {
	metrics := SafetyMetrics{Counts: map[string]int{}}

	completedStayTotal := 0
	completedStayCount := 0

	for _, patient := range patients {
		var current *models.Admission
		for i := range patient.Admissions {
			admission := &patient.Admissions[i]
			if admission.Status == models.AdmissionStatusActive &&
				withinRange(admission.AdmissionDate, filter.StartDate, filter.EndDate) {
				current = admission
				break
			}
		}
		if current != nil {
			metrics.TotalActiveAdmissions++
			if current.SafetyType != "" {
				metrics.Counts[current.SafetyType]++
				metrics.TotalSafetyAdmissions++
			}
		}

		for _, admission := range patient.Admissions {
			if admission.SafetyType != "" &&
				admission.Status == models.AdmissionStatusDischarged &&
				admission.DischargeDate != nil &&
				withinRange(admission.AdmissionDate, filter.StartDate, filter.EndDate) {
				completedStayTotal += stayDays(admission.AdmissionDate, *admission.DischargeDate)
				completedStayCount++
			}
		}
	}

	if metrics.TotalActiveAdmissions > 0 {
		metrics.SafetyRate = int(math.Round(float64(metrics.TotalSafetyAdmissions) / float64(metrics.TotalActiveAdmissions) * 100))
	}
	if completedStayCount > 0 {
		metrics.AverageStay = int(math.Round(float64(completedStayTotal) / float64(completedStayCount)))
	}
	return metrics
}
