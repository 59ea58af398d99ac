package reports

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/imdcare/reports-api/models"
)

func dischargedPatient(department string, admitted, discharged time.Time) models.Patient {
	return models.Patient{
		Admissions: []models.Admission{{
			Status:        models.AdmissionStatusDischarged,
			AdmissionDate: admitted,
			DischargeDate: &discharged,
			Department:    department,
		}},
	}
}

func TestDischargeStatsTimelineCoversEveryDay(t *testing.T) {
	filter := models.DateFilter{
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
	}

	metrics := DischargeStats(nil, filter)

	expected := []string{"2025-03-01", "2025-03-02", "2025-03-03", "2025-03-04", "2025-03-05"}
	assert.Len(t, metrics.Timeline, len(expected))
	for i, point := range metrics.Timeline {
		assert.Equal(t, expected[i], point.Date)
		assert.Equal(t, 0, point.Discharges)
	}
	assert.Equal(t, 0, metrics.TotalDischarges)
	assert.Equal(t, 0.0, metrics.AvgLengthOfStay)
}

func TestDischargeStatsCountsAndTimelineBuckets(t *testing.T) {
	filter := models.DateFilter{
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC),
	}

	patients := []models.Patient{
		dischargedPatient("Internal Medicine",
			time.Date(2025, 2, 27, 10, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 2, 14, 0, 0, 0, time.UTC)),
		dischargedPatient("Internal Medicine",
			time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)),
		dischargedPatient("Surgery",
			time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC),
			time.Date(2025, 3, 6, 8, 0, 0, 0, time.UTC)),
	}

	metrics := DischargeStats(patients, filter)

	assert.Equal(t, 3, metrics.TotalDischarges)
	assert.Equal(t, 2, metrics.DepartmentDischarges["Internal Medicine"])
	assert.Equal(t, 1, metrics.DepartmentDischarges["Surgery"])

	byDate := map[string]int{}
	for _, point := range metrics.Timeline {
		byDate[point.Date] = point.Discharges
	}
	assert.Equal(t, 2, byDate["2025-03-02"])
	assert.Equal(t, 1, byDate["2025-03-06"])

	// stays: ceil(3d4h)=4, ceil(1d1h)=2, ceil(3d)=3 -> avg 3.0
	assert.Equal(t, 3.0, metrics.AvgLengthOfStay)
}

func TestDischargeStatsEndOfDayBoundary(t *testing.T) {
	filter := models.DateFilter{
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
	}

	justInside := dischargedPatient("Surgery",
		time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 5, 23, 59, 59, int(999*time.Millisecond), time.UTC))
	justOutside := dischargedPatient("Surgery",
		time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC))

	metrics := DischargeStats([]models.Patient{justInside, justOutside}, filter)
	assert.Equal(t, 1, metrics.TotalDischarges)
}

func TestDischargeStatsSkipsActiveAndEmptyAdmissions(t *testing.T) {
	filter := models.DateFilter{
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
	}

	patients := []models.Patient{
		{}, // no admissions at all
		{Admissions: []models.Admission{{
			Status:        models.AdmissionStatusActive,
			AdmissionDate: time.Date(2025, 3, 2, 8, 0, 0, 0, time.UTC),
		}}},
	}

	metrics := DischargeStats(patients, filter)
	assert.Equal(t, 0, metrics.TotalDischarges)
}

func TestDischargeStatsAverageRoundTrip(t *testing.T) {
	filter := models.DateFilter{
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	rawDayTotal := 0
	patients := []models.Patient{}
	stays := []int{1, 2, 3, 5, 8, 13}
	for _, days := range stays {
		admitted := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
		patients = append(patients, dischargedPatient("Surgery", admitted, admitted.AddDate(0, 0, days)))
		rawDayTotal += days
	}

	metrics := DischargeStats(patients, filter)
	total := float64(metrics.TotalDischarges)
	assert.InDelta(t, float64(rawDayTotal), metrics.AvgLengthOfStay*total, 0.05*total)
	assert.Equal(t, math.Round(metrics.AvgLengthOfStay*10)/10, metrics.AvgLengthOfStay)
}
