package analytics

// Categorical labels are picked by fixed thresholds, inclusive on the
// lower bound and exclusive on the upper.

type HarmonyLabel string

const (
	HarmonyPerfect HarmonyLabel = "perfect"
	HarmonyGood    HarmonyLabel = "good"
	HarmonySoft    HarmonyLabel = "soft"
	HarmonyMix     HarmonyLabel = "mix"
	HarmonyJourney HarmonyLabel = "journey"
)

// HarmonyLabelFor buckets a 0..1 harmony score. Both 0.85 and 1.0 map
// to perfect.
func HarmonyLabelFor(score float64) HarmonyLabel {
	switch {
	case score >= 0.85:
		return HarmonyPerfect
	case score >= 0.65:
		return HarmonyGood
	case score >= 0.45:
		return HarmonySoft
	case score >= 0.25:
		return HarmonyMix
	default:
		return HarmonyJourney
	}
}

// SummaryLabel buckets the 0..100 overall score for the monthly
// summary card.
type SummaryLabel string

const (
	SummaryBright SummaryLabel = "bright"
	SummaryGood   SummaryLabel = "good"
	SummaryMixed  SummaryLabel = "mixed"
	SummaryTough  SummaryLabel = "tough"
)

func SummaryLabelFor(score float64) SummaryLabel {
	switch {
	case score >= 80:
		return SummaryBright
	case score >= 60:
		return SummaryGood
	case score >= 40:
		return SummaryMixed
	default:
		return SummaryTough
	}
}

// InsightLabel buckets the overall score for the insight card, on its
// own thresholds.
type InsightLabel string

const (
	InsightPositive InsightLabel = "positive"
	InsightSteady   InsightLabel = "steady"
	InsightGentle   InsightLabel = "gentle"
)

func InsightLabelFor(score float64) InsightLabel {
	switch {
	case score >= 75:
		return InsightPositive
	case score >= 55:
		return InsightSteady
	default:
		return InsightGentle
	}
}
