package analytics

import (
	"fmt"

	"pika_mood/internal/models"
)

// Two separate ordinal projections of the mood set coexist on purpose:
// OrdinalScore feeds the alignment diff, HarmonyScore feeds the harmony
// metric. They must never be merged into a single "mood value".

// OrdinalScore maps a mood onto the -3..3 scale used for couple
// alignment diffs.
func OrdinalScore(m models.MoodCategory) int {
	switch m {
	case models.MoodVeryHappy:
		return 3
	case models.MoodHappy:
		return 2
	case models.MoodCalm:
		return 1
	case models.MoodOkay:
		return 0
	case models.MoodTired:
		return -1
	case models.MoodSad:
		return -2
	case models.MoodAngry:
		return -3
	}
	panic(fmt.Sprintf("analytics: unknown mood category %q", m))
}

// HarmonyScore maps a mood onto the 0..4 scale used by the harmony
// computation. okay and calm share rank 2, sad and angry share rank 0;
// the ties are intentional bucketing.
func HarmonyScore(m models.MoodCategory) int {
	switch m {
	case models.MoodVeryHappy:
		return 4
	case models.MoodHappy:
		return 3
	case models.MoodOkay, models.MoodCalm:
		return 2
	case models.MoodTired:
		return 1
	case models.MoodSad, models.MoodAngry:
		return 0
	}
	panic(fmt.Sprintf("analytics: unknown mood category %q", m))
}

// TrendScore maps a mood onto the 1.5..5.0 scale used by single-user
// trend charts.
func TrendScore(m models.MoodCategory) float64 {
	switch m {
	case models.MoodVeryHappy:
		return 5.0
	case models.MoodHappy:
		return 4.0
	case models.MoodCalm:
		return 3.5
	case models.MoodOkay:
		return 3.0
	case models.MoodTired:
		return 2.5
	case models.MoodSad:
		return 2.0
	case models.MoodAngry:
		return 1.5
	}
	panic(fmt.Sprintf("analytics: unknown mood category %q", m))
}
