package reports

import (
	"math"
	"time"

	"github.com/imdcare/reports-api/models"
)

const millisPerDay = 24 * 60 * 60 * 1000

// isoDate is the timeline bucket key format
const isoDate = "2006-01-02"

// stayDays returns the length of a completed stay in whole days, any partial
// day counting as a full one
func stayDays(admission, discharge time.Time) int {
	ms := discharge.Sub(admission).Milliseconds()
	return int(math.Ceil(float64(ms) / float64(millisPerDay)))
}

// calendarDaysBetween returns the number of whole calendar days between two
// instants, anchored to the start of each day. Unlike millisecond truncation
// this never loses a day to a partial-day offset.
func calendarDaysBetween(from, to time.Time) int {
	start := models.StartOfDay(from)
	end := models.StartOfDay(to)
	return int(end.Sub(start).Hours() / 24)
}

// withinRange reports whether t falls inside [start, end] inclusive
func withinRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
