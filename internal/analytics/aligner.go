package analytics

import (
	"sort"
	"time"

	"pika_mood/internal/models"
)

// Default lookback windows, in days.
const (
	WindowSummary = 30
	WindowMetrics = 60
	WindowChart   = 14
	WindowGalaxy  = 40
)

// AlignedSeries joins two per-user record lists into date-keyed form.
// Day keys are "2006-01-02" strings taken from each record's own
// location, so each side keeps its own calendar-day boundary.
type AlignedSeries struct {
	SelfByDay    map[string]models.MoodRecord
	PartnerByDay map[string]models.MoodRecord
	SharedDays   []string
	AllDays      []string
}

// Align filters both lists to the lookback window ending at now,
// resolves one record per calendar day per side, and computes the
// shared and union day sets. Key slices come back sorted ascending.
func Align(self, partner []models.MoodRecord, windowDays int, now time.Time) AlignedSeries {
	cutoff := now.AddDate(0, 0, -windowDays)

	aligned := AlignedSeries{
		SelfByDay:    recordsByDay(self, cutoff),
		PartnerByDay: recordsByDay(partner, cutoff),
	}

	daySet := make(map[string]struct{}, len(aligned.SelfByDay)+len(aligned.PartnerByDay))
	for day := range aligned.SelfByDay {
		daySet[day] = struct{}{}
		if _, ok := aligned.PartnerByDay[day]; ok {
			aligned.SharedDays = append(aligned.SharedDays, day)
		}
	}
	for day := range aligned.PartnerByDay {
		daySet[day] = struct{}{}
	}
	for day := range daySet {
		aligned.AllDays = append(aligned.AllDays, day)
	}

	sort.Strings(aligned.SharedDays)
	sort.Strings(aligned.AllDays)

	return aligned
}

// recordsByDay keeps one record per calendar day. When raw input holds
// duplicates for a day, the latest UpdatedAt wins; on equal timestamps
// the record seen first in input order is kept.
func recordsByDay(records []models.MoodRecord, cutoff time.Time) map[string]models.MoodRecord {
	byDay := make(map[string]models.MoodRecord)
	for _, rec := range records {
		if rec.Date.Before(cutoff) {
			continue
		}
		day := rec.DayKey()
		existing, ok := byDay[day]
		if !ok || rec.UpdatedAt.After(existing.UpdatedAt) {
			byDay[day] = rec
		}
	}
	return byDay
}
