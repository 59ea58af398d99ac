// Package scheduler runs the periodic background jobs: the snapshot refresh
// that keeps report data at most five minutes stale, and the daily report
// email delivery.
package scheduler

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/imdcare/reports-api/config"
	"github.com/imdcare/reports-api/models"
	"github.com/imdcare/reports-api/pdf"
	"github.com/imdcare/reports-api/reports"
	"github.com/imdcare/reports-api/snapshot"
	templates "github.com/imdcare/reports-api/templates/html"
)

// refresh cadence and delivery schedule, both in UTC
const (
	refreshSpec = "*/5 * * * *"
	deliverSpec = "0 6 * * *"
)

// Scheduler handles the periodic snapshot refresh and daily report delivery
type Scheduler struct {
	cron     *cron.Cron
	store    *snapshot.Store
	exporter *pdf.Exporter
	cfg      config.Config
}

// New creates a new scheduler instance
func New(store *snapshot.Store, exporter *pdf.Exporter, cfg config.Config) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		store:    store,
		exporter: exporter,
		cfg:      cfg,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	_, err := s.cron.AddFunc(refreshSpec, s.refreshSnapshot)
	if err != nil {
		zap.S().Errorw("failed to register snapshot refresh job", "error", err)
	}

	_, err = s.cron.AddFunc(deliverSpec, s.deliverDailyReport)
	if err != nil {
		zap.S().Errorw("failed to register daily report delivery job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("report scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("report scheduler stopped")
}

// refreshSnapshot re-fetches the collections backing every report. An
// overlapping run is skipped by the store's in-flight guard, so a slow fetch
// never stacks refreshes behind itself.
func (s *Scheduler) refreshSnapshot() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.store.Refresh(ctx); err != nil {
		zap.S().Errorw("scheduled snapshot refresh failed", "error", err)
		return
	}
	zap.S().Debugw("scheduled snapshot refresh complete", "lastRefresh", s.store.LastRefresh())
}

// deliverDailyReport generates the trailing-24h daily report and emails it to
// the configured recipients. Skipped entirely when delivery is unconfigured.
func (s *Scheduler) deliverDailyReport() {
	if s.cfg.SendgridAPIKey == "" || s.cfg.ReportRecipients == "" {
		zap.S().Debug("report delivery not configured, skipping daily report email")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	snap, err := s.store.Load(ctx)
	if err != nil {
		zap.S().Errorw("failed to load snapshot for daily report delivery", "error", err)
		return
	}

	now := time.Now().UTC()
	filters := models.ReportFilters{ReportType: "daily"}
	filter := filters.Resolve(now)

	consultations := reports.FilterConsultations(snap.Consultations, filters, now)
	appointments := []models.Appointment{}
	for _, a := range snap.Appointments {
		if !a.CreatedAt.Before(filter.StartDate) && !a.CreatedAt.After(filter.EndDate) {
			appointments = append(appointments, a)
		}
	}

	report, err := s.exporter.DailyReport(pdf.ExportData{
		Patients:      snap.Patients,
		Consultations: consultations,
		Appointments:  appointments,
		DateFilter:    filter,
		GeneratedAt:   now,
	})
	if err != nil {
		zap.S().Errorw("failed to generate daily report for delivery", "error", err)
		return
	}

	if err := s.sendReportEmail(report, now, len(consultations), len(appointments)); err != nil {
		zap.S().Errorw("failed to send daily report email", "error", err)
		return
	}
	zap.S().Infow("daily report emailed",
		"recipients", s.cfg.ReportRecipients,
		"bytes", len(report),
	)
}

func (s *Scheduler) sendReportEmail(report []byte, at time.Time, consultations, appointments int) error {
	reportDate := at.Format("02/01/2006")

	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail("IMD-Care Reports", "no-reply@imd-care.com"))
	m.Subject = fmt.Sprintf("IMD-Care Daily Report %s", reportDate)

	p := mail.NewPersonalization()
	for _, rcpt := range strings.Split(s.cfg.ReportRecipients, ",") {
		rcpt = strings.TrimSpace(rcpt)
		if rcpt == "" {
			continue
		}
		p.AddTos(mail.NewEmail("", rcpt))
	}
	m.AddPersonalizations(p)

	m.AddContent(
		mail.NewContent("text/plain", fmt.Sprintf("The IMD-Care daily report for %s is attached.", reportDate)),
		mail.NewContent("text/html", templates.RenderDailyReportEmail(reportDate, consultations, appointments)),
	)

	attachment := mail.NewAttachment()
	attachment.SetContent(base64.StdEncoding.EncodeToString(report))
	attachment.SetType("application/pdf")
	attachment.SetFilename(pdf.Filename("imd-care-daily", at))
	attachment.SetDisposition("attachment")
	m.AddAttachment(attachment)

	client := sendgrid.NewSendClient(s.cfg.SendgridAPIKey)
	response, err := client.Send(m)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
	}
	return nil
}
