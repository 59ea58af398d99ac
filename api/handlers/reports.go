package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/imdcare/reports-api/api"
	"github.com/imdcare/reports-api/config"
	"github.com/imdcare/reports-api/databases"
	"github.com/imdcare/reports-api/models"
	"github.com/imdcare/reports-api/reports"
	"github.com/imdcare/reports-api/snapshot"
)

// SnapshotLoader is the slice of the snapshot store the report handlers need
type SnapshotLoader interface {
	Load(ctx context.Context) (*snapshot.Snapshot, error)
}

// Reports exported for testing purposes
type Reports struct {
	Store  SnapshotLoader
	DeptDB databases.DepartmentDatabase
	Config config.Config
}

// parseFilters reads the report filter query params shared by every report
// endpoint
func parseFilters(r *http.Request) models.ReportFilters {
	q := r.URL.Query()
	return models.ReportFilters{
		DateFrom:    q.Get("dateFrom"),
		DateTo:      q.Get("dateTo"),
		ReportType:  q.Get("reportType"),
		Specialty:   q.Get("specialty"),
		SearchQuery: q.Get("searchQuery"),
	}
}

// loadSnapshot fetches the current snapshot, writing the error response
// itself when the fetch fails
func (rep Reports) loadSnapshot(w http.ResponseWriter, r *http.Request) *snapshot.Snapshot {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	snap, err := rep.Store.Load(ctx)
	if err != nil {
		config.ErrorStatus("failed to load report snapshot", http.StatusInternalServerError, w, err)
		return nil
	}
	return snap
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// SummaryHandler returns the hospital-wide census rollup
func (rep Reports) SummaryHandler(w http.ResponseWriter, r *http.Request) {
	snap := rep.loadSnapshot(w, r)
	if snap == nil {
		return
	}
	now := time.Now()
	filter := parseFilters(r).Resolve(now)
	writeJSON(w, reports.Summary(snap.Patients, snap.Consultations, filter, now, rep.Config.TotalBeds))
}

// DoctorStatsHandler returns per-doctor consultation workload metrics
func (rep Reports) DoctorStatsHandler(w http.ResponseWriter, r *http.Request) {
	snap := rep.loadSnapshot(w, r)
	if snap == nil {
		return
	}
	now := time.Now()
	filters := parseFilters(r)
	filtered := reports.FilterConsultations(snap.Consultations, filters, now)
	writeJSON(w, reports.DoctorStats(filtered, filters.Resolve(now)))
}

// DischargeStatsHandler returns discharge counts and the per-day timeline
func (rep Reports) DischargeStatsHandler(w http.ResponseWriter, r *http.Request) {
	snap := rep.loadSnapshot(w, r)
	if snap == nil {
		return
	}
	filter := parseFilters(r).Resolve(time.Now())
	writeJSON(w, reports.DischargeStats(snap.Patients, filter))
}

// LongStayHandler returns patients admitted for a week or longer
func (rep Reports) LongStayHandler(w http.ResponseWriter, r *http.Request) {
	snap := rep.loadSnapshot(w, r)
	if snap == nil {
		return
	}
	now := time.Now()
	filter := parseFilters(r).Resolve(now)
	writeJSON(w, reports.LongStayPatients(snap.Patients, filter, now))
}

// DepartmentStatsHandler returns per-department census and occupancy
func (rep Reports) DepartmentStatsHandler(w http.ResponseWriter, r *http.Request) {
	snap := rep.loadSnapshot(w, r)
	if snap == nil {
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()
	departments, err := rep.DeptDB.Find(ctx, bson.M{})
	if err != nil {
		config.ErrorStatus("failed to get departments", http.StatusInternalServerError, w, err)
		return
	}

	var admissions []models.Admission
	for _, patient := range snap.Patients {
		admissions = append(admissions, patient.Admissions...)
	}
	writeJSON(w, reports.DepartmentStats(departments, admissions, snap.Consultations))
}

// SpecialtyStatsHandler returns the consultation distribution across specialties
func (rep Reports) SpecialtyStatsHandler(w http.ResponseWriter, r *http.Request) {
	snap := rep.loadSnapshot(w, r)
	if snap == nil {
		return
	}
	filtered := reports.FilterConsultations(snap.Consultations, parseFilters(r), time.Now())
	writeJSON(w, reports.SpecialtyStats(filtered))
}

// SafetyStatsHandler returns safety admission counts by category
func (rep Reports) SafetyStatsHandler(w http.ResponseWriter, r *http.Request) {
	snap := rep.loadSnapshot(w, r)
	if snap == nil {
		return
	}
	filter := parseFilters(r).Resolve(time.Now())
	writeJSON(w, reports.SafetyStats(snap.Patients, filter))
}
