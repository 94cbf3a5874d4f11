package analytics

import (
	"math"
	"time"

	"pika_mood/internal/models"
)

// weekdayOrder fixes Mon..Sun tie-breaking for weekday aggregations.
var weekdayOrder = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// TrendPoint is one day of the trend chart. Score 0 is a "no entry"
// sentinel, distinct from any real mood score (the lowest is 1.5).
type TrendPoint struct {
	Day   string  `json:"day"`
	Score float64 `json:"score"`
}

// SelfSummary bundles every single-user metric for one owner.
type SelfSummary struct {
	OverallScore *float64                    `json:"overall_score,omitempty"`
	SummaryLabel *SummaryLabel               `json:"summary_label,omitempty"`
	InsightLabel *InsightLabel               `json:"insight_label,omitempty"`
	Trend        []TrendPoint                `json:"trend"`
	MoodCounts   map[models.MoodCategory]int `json:"mood_counts"`
	DominantMood *models.MoodCategory        `json:"dominant_mood,omitempty"`
	BestWeekday  *string                     `json:"best_weekday,omitempty"`
}

// BuildSelfSummary computes the full single-user bundle with the
// default windows.
func BuildSelfSummary(records []models.MoodRecord, now time.Time) SelfSummary {
	summary := SelfSummary{
		OverallScore: OverallScore(records, now, WindowSummary),
		Trend:        TrendSeries(records, now, WindowSummary),
		MoodCounts:   MoodCounts(records),
		DominantMood: DominantMood(records),
		BestWeekday:  BestWeekday(records),
	}
	if summary.OverallScore != nil {
		sl := SummaryLabelFor(*summary.OverallScore)
		il := InsightLabelFor(*summary.OverallScore)
		summary.SummaryLabel = &sl
		summary.InsightLabel = &il
	}
	return summary
}

// OverallScore is the average trend score over the window, rescaled to
// 0..100. Nil means no records in the window, which is not the same
// thing as a score of zero.
func OverallScore(records []models.MoodRecord, now time.Time, windowDays int) *float64 {
	cutoff := now.AddDate(0, 0, -windowDays)

	var sum float64
	var count int
	for _, rec := range records {
		if rec.Date.Before(cutoff) {
			continue
		}
		sum += TrendScore(rec.Mood)
		count++
	}
	if count == 0 {
		return nil
	}

	score := (sum / float64(count)) / 5.0 * 100.0
	return &score
}

// TrendSeries returns exactly windowDays points, oldest first, one per
// calendar day ending today. Days without a record score 0.
func TrendSeries(records []models.MoodRecord, now time.Time, windowDays int) []TrendPoint {
	byDay := recordsByDay(records, now.AddDate(0, 0, -windowDays))

	start := now.AddDate(0, 0, -(windowDays - 1))
	points := make([]TrendPoint, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		day := start.AddDate(0, 0, i).Format("2006-01-02")
		point := TrendPoint{Day: day}
		if rec, ok := byDay[day]; ok {
			point.Score = TrendScore(rec.Mood)
		}
		points = append(points, point)
	}
	return points
}

// MoodCounts counts occurrences per category over all provided records,
// with every category present even at zero.
func MoodCounts(records []models.MoodRecord) map[models.MoodCategory]int {
	counts := make(map[models.MoodCategory]int, len(models.CanonicalMoods))
	for _, m := range models.CanonicalMoods {
		counts[m] = 0
	}
	for _, rec := range records {
		counts[rec.Mood]++
	}
	return counts
}

// DominantMood is the most frequent category, nil when nothing is
// logged. Ties break toward the earliest category in canonical order.
func DominantMood(records []models.MoodRecord) *models.MoodCategory {
	counts := MoodCounts(records)

	var best *models.MoodCategory
	bestCount := 0
	for _, m := range models.CanonicalMoods {
		if counts[m] > bestCount {
			m := m
			best = &m
			bestCount = counts[m]
		}
	}
	return best
}

// BestWeekday is the short weekday name with the most records, nil when
// there are none. Ties break toward Monday-first order.
func BestWeekday(records []models.MoodRecord) *string {
	counts := make(map[string]int, len(weekdayOrder))
	for _, rec := range records {
		counts[rec.Date.Format("Mon")]++
	}
	return topWeekday(counts)
}

func topWeekday(counts map[string]int) *string {
	var best *string
	bestCount := 0
	for _, day := range weekdayOrder {
		if counts[day] > bestCount {
			day := day
			best = &day
			bestCount = counts[day]
		}
	}
	return best
}

// roundPercent applies round-half-away-from-zero once, at the end of a
// percent computation.
func roundPercent(v float64) int {
	return int(math.Round(v))
}
