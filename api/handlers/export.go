package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/imdcare/reports-api/config"
	"github.com/imdcare/reports-api/models"
	"github.com/imdcare/reports-api/pdf"
	"github.com/imdcare/reports-api/reports"
	"github.com/imdcare/reports-api/snapshot"
)

// Exports exported for testing purposes
type Exports struct {
	Store    SnapshotLoader
	Exporter *pdf.Exporter
}

// chartPayload is one pre-rasterized chart posted by the dashboard for the
// admin export. PNG arrives base64-encoded in the JSON body.
type chartPayload struct {
	Title string `json:"title"`
	PNG   []byte `json:"png"`
}

// DailyExportHandler streams the daily report PDF. Without an explicit
// reportType the export covers the trailing 24 hours.
func (ex Exports) DailyExportHandler(w http.ResponseWriter, r *http.Request) {
	jobID := uuid.New().String()

	snap := ex.loadSnapshot(w, r)
	if snap == nil {
		return
	}

	now := time.Now()
	filters := parseFilters(r)
	if filters.ReportType == "" {
		filters.ReportType = "daily"
	}
	filter := filters.Resolve(now)

	data := pdf.ExportData{
		Patients:      snap.Patients,
		Consultations: reports.FilterConsultations(snap.Consultations, filters, now),
		Appointments:  appointmentsWithin(snap.Appointments, filter),
		DateFilter:    filter,
		GeneratedAt:   now,
	}

	b, err := ex.Exporter.DailyReport(data)
	if err != nil {
		config.ErrorStatus("failed to generate daily report", http.StatusInternalServerError, w, err)
		return
	}
	ex.serve(w, b, pdf.Filename("imd-care-daily", now), jobID, "daily")
}

// LongStayExportHandler streams the long-stay patient report PDF
func (ex Exports) LongStayExportHandler(w http.ResponseWriter, r *http.Request) {
	jobID := uuid.New().String()

	snap := ex.loadSnapshot(w, r)
	if snap == nil {
		return
	}

	now := time.Now()
	filter := parseFilters(r).Resolve(now)
	report := reports.LongStayPatients(snap.Patients, filter, now)

	b, err := ex.Exporter.LongStayReport(report, filter, now)
	if err != nil {
		config.ErrorStatus("failed to generate long stay report", http.StatusInternalServerError, w, err)
		return
	}
	ex.serve(w, b, pdf.Filename("long-stay", now), jobID, "long-stay")
}

// AdminExportHandler streams the administrative report PDF. A POST body may
// carry pre-rasterized chart sections to embed; a plain GET exports the
// summary tables only.
func (ex Exports) AdminExportHandler(w http.ResponseWriter, r *http.Request) {
	jobID := uuid.New().String()

	var charts []pdf.ChartSection
	if r.Method == http.MethodPost {
		var payload []chartPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			config.ErrorStatus("failed to decode chart sections", http.StatusBadRequest, w, err)
			return
		}
		for _, c := range payload {
			charts = append(charts, pdf.ChartSection{Title: c.Title, PNG: c.PNG})
		}
	}

	snap := ex.loadSnapshot(w, r)
	if snap == nil {
		return
	}

	now := time.Now()
	filters := parseFilters(r)
	filter := filters.Resolve(now)

	data := pdf.ExportData{
		Patients:      snap.Patients,
		Consultations: reports.FilterConsultations(snap.Consultations, filters, now),
		Appointments:  appointmentsWithin(snap.Appointments, filter),
		DateFilter:    filter,
		GeneratedAt:   now,
	}

	b, err := ex.Exporter.AdminReport(data, charts)
	if err != nil {
		config.ErrorStatus("failed to generate admin report", http.StatusInternalServerError, w, err)
		return
	}
	ex.serve(w, b, pdf.Filename("imd-care-admin", now), jobID, "admin")
}

// loadSnapshot mirrors Reports.loadSnapshot for the export handlers
func (ex Exports) loadSnapshot(w http.ResponseWriter, r *http.Request) *snapshot.Snapshot {
	rep := Reports{Store: ex.Store}
	return rep.loadSnapshot(w, r)
}

func (ex Exports) serve(w http.ResponseWriter, report []byte, filename, jobID, kind string) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(report)
	zap.S().Infow("report exported",
		"jobId", jobID,
		"kind", kind,
		"filename", filename,
		"bytes", len(report),
	)
}

// appointmentsWithin keeps only appointments created inside the report range
func appointmentsWithin(appointments []models.Appointment, filter models.DateFilter) []models.Appointment {
	within := []models.Appointment{}
	for _, a := range appointments {
		if !a.CreatedAt.Before(filter.StartDate) && !a.CreatedAt.After(filter.EndDate) {
			within = append(within, a)
		}
	}
	return within
}
