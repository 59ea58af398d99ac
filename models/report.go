package models

import "time"

// DateFilter is the resolved start/end pair handed to every aggregator
type DateFilter struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Period    string    `json:"period"` // today|week|month|custom
}

// ReportFilters is the raw filter contract coming from the UI. Dates arrive
// as yyyy-mm-dd strings and are resolved into a DateFilter by Resolve.
type ReportFilters struct {
	DateFrom    string `json:"dateFrom"`
	DateTo      string `json:"dateTo"`
	ReportType  string `json:"reportType"` // daily|weekly|monthly|custom
	Specialty   string `json:"specialty"`
	SearchQuery string `json:"searchQuery"`
}

// dateLayout is the wire format for dateFrom/dateTo
const dateLayout = "2006-01-02"

// Resolve turns the raw filters into an effective date range. A daily report
// always covers the trailing 24 hours ending at now, overriding any explicit
// dateFrom/dateTo. Every other report type anchors the end date to
// 23:59:59.999 so the final calendar day is fully included.
func (f ReportFilters) Resolve(now time.Time) DateFilter {
	if f.ReportType == "daily" {
		return DateFilter{
			StartDate: now.Add(-24 * time.Hour),
			EndDate:   now,
			Period:    "today",
		}
	}

	start := defaultStart(f.ReportType, now)
	if t, err := time.Parse(dateLayout, f.DateFrom); err == nil {
		start = t.UTC()
	}

	end := now
	if t, err := time.Parse(dateLayout, f.DateTo); err == nil {
		end = t.UTC()
	}
	end = EndOfDay(end)

	return DateFilter{
		StartDate: start,
		EndDate:   end,
		Period:    periodFor(f.ReportType),
	}
}

func defaultStart(reportType string, now time.Time) time.Time {
	switch reportType {
	case "weekly":
		return now.AddDate(0, 0, -7)
	case "monthly":
		return now.AddDate(0, -1, 0)
	default:
		return StartOfDay(now)
	}
}

func periodFor(reportType string) string {
	switch reportType {
	case "weekly":
		return "week"
	case "monthly":
		return "month"
	default:
		return "custom"
	}
}

// StartOfDay returns t anchored to 00:00:00.000 of its calendar day in UTC
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns t anchored to 23:59:59.999 of its calendar day in UTC
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), time.UTC)
}
