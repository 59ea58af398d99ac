package reports

import (
	"math"
	"sort"
	"strings"

	"github.com/imdcare/reports-api/models"
)

// DoctorMetrics holds the per-doctor consultation rollup
type DoctorMetrics struct {
	DoctorName             string `json:"doctorName"`
	TotalConsultations     int    `json:"totalConsultations"`
	CompletedConsultations int    `json:"completedConsultations"`
	EmergencyCount         int    `json:"emergencyCount"`
	UrgentCount            int    `json:"urgentCount"`
	RoutineCount           int    `json:"routineCount"`
	AverageResponseTime    int    `json:"averageResponseTime"` // minutes
}

// DoctorRollup aggregates the per-doctor metrics across all doctors
type DoctorRollup struct {
	Doctors             []DoctorMetrics `json:"doctors"`
	TotalConsultations  int             `json:"totalConsultations"`
	CompletionRate      int             `json:"completionRate"` // percent
	AverageResponseTime int             `json:"averageResponseTime"`
	EmergencyTotal      int             `json:"emergencyTotal"`
}

type doctorAccumulator struct {
	DoctorMetrics
	responseTimeSumMs int64
	responseTimeCount int
}

// DoctorStats filters consultations to those created within the date range,
// groups them by doctor and computes completion, urgency and response-time
// metrics. Consultations without an assigned doctor are excluded from the
// per-doctor grouping. Doctors are sorted descending by total consultations;
// ties keep first-seen order.
func DoctorStats(consultations []models.Consultation, filter models.DateFilter) DoctorRollup {
	acc := map[int]*doctorAccumulator{}
	order := []int{}

	for _, consultation := range consultations {
		if !withinRange(consultation.CreatedAt, filter.StartDate, filter.EndDate) {
			continue
		}
		if consultation.DoctorID == nil {
			continue
		}
		id := *consultation.DoctorID

		entry, ok := acc[id]
		if !ok {
			doctorName := "Unknown"
			if consultation.Doctor != nil && consultation.Doctor.Name != "" {
				doctorName = consultation.Doctor.Name
			}
			entry = &doctorAccumulator{DoctorMetrics: DoctorMetrics{DoctorName: doctorName}}
			acc[id] = entry
			order = append(order, id)
		}

		entry.TotalConsultations++

		if consultation.Status == models.ConsultationStatusCompleted {
			entry.CompletedConsultations++
			entry.responseTimeSumMs += consultation.UpdatedAt.Sub(consultation.CreatedAt).Milliseconds()
			entry.responseTimeCount++
		}

		// unrecognized urgency values are silently uncounted
		switch strings.ToLower(consultation.Urgency) {
		case models.UrgencyEmergency:
			entry.EmergencyCount++
		case models.UrgencyUrgent:
			entry.UrgentCount++
		case models.UrgencyRoutine:
			entry.RoutineCount++
		}
	}

	doctors := make([]DoctorMetrics, 0, len(order))
	for _, id := range order {
		entry := acc[id]
		if entry.responseTimeCount > 0 {
			avgMs := float64(entry.responseTimeSumMs) / float64(entry.responseTimeCount)
			entry.AverageResponseTime = int(math.Round(avgMs / (1000 * 60)))
		}
		doctors = append(doctors, entry.DoctorMetrics)
	}

	sort.SliceStable(doctors, func(i, j int) bool {
		return doctors[i].TotalConsultations > doctors[j].TotalConsultations
	})

	rollup := DoctorRollup{Doctors: doctors}
	completedTotal := 0
	responseTimeTotal := 0
	for _, doctor := range doctors {
		rollup.TotalConsultations += doctor.TotalConsultations
		rollup.EmergencyTotal += doctor.EmergencyCount
		completedTotal += doctor.CompletedConsultations
		responseTimeTotal += doctor.AverageResponseTime
	}
	if rollup.TotalConsultations > 0 {
		rollup.CompletionRate = int(math.Round(float64(completedTotal) / float64(rollup.TotalConsultations) * 100))
	}
	if len(doctors) > 0 {
		rollup.AverageResponseTime = int(math.Round(float64(responseTimeTotal) / float64(len(doctors))))
	}
	return rollup
}
