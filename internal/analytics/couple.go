package analytics

import (
	"time"

	"pika_mood/internal/models"
)

// lowMoods are the categories counted as emotionally low days.
var lowMoods = map[models.MoodCategory]bool{
	models.MoodSad:   true,
	models.MoodTired: true,
	models.MoodAngry: true,
}

type SupportBalance string

const (
	SupportNone    SupportBalance = "none"
	SupportPartner SupportBalance = "partner-needs-support"
	SupportSelf    SupportBalance = "self-needs-support"
	SupportBoth    SupportBalance = "balanced"
)

// PairPoint is one shared day of the paired "galaxy" feed, carrying
// both sides' trend scores.
type PairPoint struct {
	Day          string  `json:"day"`
	SelfScore    float64 `json:"self_score"`
	PartnerScore float64 `json:"partner_score"`
}

// CoupleReport bundles every cross-user metric. Absent fields mean "no
// data to judge", never zero.
type CoupleReport struct {
	SyncPercent        *int                 `json:"sync_percent,omitempty"`
	AlignmentPercent   *int                 `json:"alignment_percent,omitempty"`
	BestSharedWeekday  *string              `json:"best_shared_weekday,omitempty"`
	SharedDominantMood *models.MoodCategory `json:"shared_dominant_mood,omitempty"`
	HarmonyScore       *float64             `json:"harmony_score,omitempty"`
	HarmonyLabel       *HarmonyLabel        `json:"harmony_label,omitempty"`
	SelfLowDays        int                  `json:"self_low_days"`
	PartnerLowDays     int                  `json:"partner_low_days"`
	SupportBalance     *SupportBalance      `json:"support_balance,omitempty"`
	Chart              []PairPoint          `json:"chart"`
	Galaxy             []PairPoint          `json:"galaxy"`
}

// BuildCoupleReport computes the full couple bundle: the 60-day metric
// window for scores, the 14-day window for the short chart and the
// 40-day window for the paired feed.
func BuildCoupleReport(self, partner []models.MoodRecord, now time.Time) CoupleReport {
	aligned := Align(self, partner, WindowMetrics, now)

	report := CoupleReport{
		SyncPercent:        SyncPercent(aligned),
		AlignmentPercent:   AlignmentPercent(aligned),
		BestSharedWeekday:  BestSharedWeekday(aligned),
		SharedDominantMood: SharedDominantMood(aligned),
		HarmonyScore:       HarmonyValue(aligned),
		SelfLowDays:        LowMoodDayCount(aligned.SelfByDay),
		PartnerLowDays:     LowMoodDayCount(aligned.PartnerByDay),
		SupportBalance:     SupportBalanceFor(aligned),
		Chart:              PairedSeries(Align(self, partner, WindowChart, now)),
		Galaxy:             PairedSeries(Align(self, partner, WindowGalaxy, now)),
	}
	if report.HarmonyScore != nil {
		label := HarmonyLabelFor(*report.HarmonyScore)
		report.HarmonyLabel = &label
	}
	return report
}

// SyncPercent is the share of all logged days on which both sides
// logged. Nil only when nobody logged anything in the window.
func SyncPercent(aligned AlignedSeries) *int {
	if len(aligned.AllDays) == 0 {
		return nil
	}
	percent := roundPercent(100 * float64(len(aligned.SharedDays)) / float64(len(aligned.AllDays)))
	return &percent
}

// AlignmentPercent averages per-day similarity on the -3..3 ordinal
// scale over shared days. Nil when there are no shared days.
func AlignmentPercent(aligned AlignedSeries) *int {
	if len(aligned.SharedDays) == 0 {
		return nil
	}

	var total float64
	for _, day := range aligned.SharedDays {
		diff := OrdinalScore(aligned.SelfByDay[day].Mood) - OrdinalScore(aligned.PartnerByDay[day].Mood)
		if diff < 0 {
			diff = -diff
		}
		sim := 1 - float64(diff)/6.0
		if sim < 0 {
			sim = 0
		}
		total += sim
	}

	percent := roundPercent(100 * total / float64(len(aligned.SharedDays)))
	return &percent
}

// BestSharedWeekday is the weekday on which the couple most often
// logged together. Ties break toward Monday-first order.
func BestSharedWeekday(aligned AlignedSeries) *string {
	counts := make(map[string]int, len(weekdayOrder))
	for _, day := range aligned.SharedDays {
		counts[weekdayOfKey(day)]++
	}
	return topWeekday(counts)
}

// SharedDominantMood is the most frequent category among shared days
// where both sides logged the identical mood. Nil when no shared day
// matches exactly.
func SharedDominantMood(aligned AlignedSeries) *models.MoodCategory {
	counts := make(map[models.MoodCategory]int)
	for _, day := range aligned.SharedDays {
		mood := aligned.SelfByDay[day].Mood
		if mood == aligned.PartnerByDay[day].Mood {
			counts[mood]++
		}
	}

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

// HarmonyValue averages per-day similarity on the 0..4 harmony scale
// over shared days, yielding 0..1. Nil when there are no shared days.
// This deliberately uses a different mood scale than AlignmentPercent.
func HarmonyValue(aligned AlignedSeries) *float64 {
	if len(aligned.SharedDays) == 0 {
		return nil
	}

	var total float64
	for _, day := range aligned.SharedDays {
		diff := HarmonyScore(aligned.SelfByDay[day].Mood) - HarmonyScore(aligned.PartnerByDay[day].Mood)
		if diff < 0 {
			diff = -diff
		}
		dayScore := 1 - float64(diff)/4.0
		if dayScore < 0 {
			dayScore = 0
		}
		total += dayScore
	}

	score := total / float64(len(aligned.SharedDays))
	return &score
}

// LowMoodDayCount counts distinct resolved days with a low mood.
func LowMoodDayCount(byDay map[string]models.MoodRecord) int {
	count := 0
	for _, rec := range byDay {
		if lowMoods[rec.Mood] {
			count++
		}
	}
	return count
}

// SupportBalanceFor judges which side has had more low days. Nil when
// neither side has any record in the window; SupportNone when records
// exist but nobody had a rough patch.
func SupportBalanceFor(aligned AlignedSeries) *SupportBalance {
	if len(aligned.SelfByDay) == 0 && len(aligned.PartnerByDay) == 0 {
		return nil
	}

	selfLow := LowMoodDayCount(aligned.SelfByDay)
	partnerLow := LowMoodDayCount(aligned.PartnerByDay)

	var balance SupportBalance
	switch {
	case selfLow == 0 && partnerLow == 0:
		balance = SupportNone
	case partnerLow > selfLow:
		balance = SupportPartner
	case selfLow > partnerLow:
		balance = SupportSelf
	default:
		balance = SupportBoth
	}
	return &balance
}

// PairedSeries lists both sides' trend scores for every shared day,
// oldest first, for the paired visualization feed.
func PairedSeries(aligned AlignedSeries) []PairPoint {
	points := make([]PairPoint, 0, len(aligned.SharedDays))
	for _, day := range aligned.SharedDays {
		points = append(points, PairPoint{
			Day:          day,
			SelfScore:    TrendScore(aligned.SelfByDay[day].Mood),
			PartnerScore: TrendScore(aligned.PartnerByDay[day].Mood),
		})
	}
	return points
}

func weekdayOfKey(day string) string {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		return ""
	}
	return t.Format("Mon")
}
