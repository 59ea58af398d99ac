package reports

import (
	"math"

	"github.com/imdcare/reports-api/models"
)

// TimelinePoint is one calendar day on the discharge timeline
type TimelinePoint struct {
	Date       string `json:"date"`
	Discharges int    `json:"discharges"`
}

// DischargeMetrics holds the discharge and length-of-stay rollup
type DischargeMetrics struct {
	TotalDischarges      int             `json:"totalDischarges"`
	AvgLengthOfStay      float64         `json:"avgLengthOfStay"` // days, one decimal
	DepartmentDischarges map[string]int  `json:"departmentDischarges"`
	Timeline             []TimelinePoint `json:"timeline"`
}

// DischargeStats computes discharge counts, length of stay and a daily
// discharge timeline over the filter range. The end date is extended to
// 23:59:59.999 so the final day is fully included, and the timeline always
// contains every calendar day of the range even when nothing was discharged.
// Patients without admissions and admissions still active (no discharge
// date) are skipped.
func DischargeStats(patients []models.Patient, filter models.DateFilter) DischargeMetrics {
	startDate := filter.StartDate
	endDate := models.EndOfDay(filter.EndDate)

	timelineCounts := map[string]int{}
	timelineOrder := []string{}
	for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
		key := day.UTC().Format(isoDate)
		timelineCounts[key] = 0
		timelineOrder = append(timelineOrder, key)
	}

	totalDischarges := 0
	totalLengthOfStay := 0
	departmentDischarges := map[string]int{}

	for _, patient := range patients {
		for _, admission := range patient.Admissions {
			if admission.DischargeDate == nil {
				continue
			}
			dischargeDate := *admission.DischargeDate
			if !withinRange(dischargeDate, startDate, endDate) {
				continue
			}

			totalDischarges++
			totalLengthOfStay += stayDays(admission.AdmissionDate, dischargeDate)
			departmentDischarges[admission.Department]++

			key := dischargeDate.UTC().Format(isoDate)
			if _, ok := timelineCounts[key]; ok {
				timelineCounts[key]++
			}
		}
	}

	avgLengthOfStay := 0.0
	if totalDischarges > 0 {
		avgLengthOfStay = math.Round(float64(totalLengthOfStay)/float64(totalDischarges)*10) / 10
	}

	timeline := make([]TimelinePoint, 0, len(timelineOrder))
	for _, key := range timelineOrder {
		timeline = append(timeline, TimelinePoint{Date: key, Discharges: timelineCounts[key]})
	}

	return DischargeMetrics{
		TotalDischarges:      totalDischarges,
		AvgLengthOfStay:      avgLengthOfStay,
		DepartmentDischarges: departmentDischarges,
		Timeline:             timeline,
	}
}
