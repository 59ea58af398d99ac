package reports

import (
	"math"
	"sort"

	"github.com/imdcare/reports-api/models"
)

// DepartmentCapacity is the assumed per-department bed capacity used to
// normalize the occupancy rate. The rate is a reporting approximation and is
// deliberately not derived from actual bed inventory.
const DepartmentCapacity = 10

// DepartmentMetrics holds the per-department rollup
type DepartmentMetrics struct {
	Name          string `json:"name"`
	Patients      int    `json:"patients"`
	Consultations int    `json:"consultations"`
	OccupancyRate int    `json:"occupancyRate"`
}

// SpecialtyMetrics holds the consultation distribution for one specialty
type SpecialtyMetrics struct {
	Specialty  string  `json:"specialty"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// DepartmentStats groups active admissions and active consultations by
// department name. Occupancy is min(100, round(active/DepartmentCapacity*100));
// a department with no admissions reports occupancy 0.
func DepartmentStats(departments []models.Department, admissions []models.Admission, consultations []models.Consultation) []DepartmentMetrics {
	stats := make([]DepartmentMetrics, 0, len(departments))

	for _, department := range departments {
		activeAdmissions := 0
		for _, admission := range admissions {
			if admission.Status == models.AdmissionStatusActive && admission.Department == department.Name {
				activeAdmissions++
			}
		}

		deptConsultations := 0
		for _, consultation := range consultations {
			if consultation.Status == models.ConsultationStatusActive && consultation.Specialty == department.Name {
				deptConsultations++
			}
		}

		occupancyRate := int(math.Min(100, math.Round(float64(activeAdmissions)/float64(DepartmentCapacity)*100)))

		stats = append(stats, DepartmentMetrics{
			Name:          department.Name,
			Patients:      activeAdmissions,
			Consultations: deptConsultations,
			OccupancyRate: occupancyRate,
		})
	}

	return stats
}

// SpecialtyStats computes the consultation count and percentage share per
// specialty, sorted descending by count. Consultations without a specialty
// fall into an "Unspecified" bucket.
func SpecialtyStats(consultations []models.Consultation) []SpecialtyMetrics {
	counts := map[string]int{}
	order := []string{}

	for _, consultation := range consultations {
		specialty := consultation.Specialty
		if specialty == "" {
			specialty = "Unspecified"
		}
		if _, seen := counts[specialty]; !seen {
			order = append(order, specialty)
		}
		counts[specialty]++
	}

	total := len(consultations)
	stats := make([]SpecialtyMetrics, 0, len(order))
	for _, specialty := range order {
		count := counts[specialty]
		stats = append(stats, SpecialtyMetrics{
			Specialty:  specialty,
			Count:      count,
			Percentage: float64(count) / float64(total) * 100,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})
	return stats
}
