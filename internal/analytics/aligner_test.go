package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pika_mood/internal/models"
)

var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

// rec builds a record dated daysAgo days before testNow.
func rec(owner string, daysAgo int, mood models.MoodCategory) models.MoodRecord {
	date := testNow.AddDate(0, 0, -daysAgo)
	return models.MoodRecord{
		OwnerID:   owner,
		Date:      date,
		Mood:      mood,
		UpdatedAt: date,
	}
}

func TestAlignBasicJoin(t *testing.T) {
	self := []models.MoodRecord{
		rec("alice", 0, models.MoodHappy),
		rec("alice", 1, models.MoodOkay),
		rec("alice", 2, models.MoodCalm),
	}
	partner := []models.MoodRecord{
		rec("bob", 1, models.MoodHappy),
		rec("bob", 3, models.MoodTired),
	}

	aligned := Align(self, partner, WindowMetrics, testNow)

	assert.Len(t, aligned.SelfByDay, 3)
	assert.Len(t, aligned.PartnerByDay, 2)
	assert.Len(t, aligned.AllDays, 4)
	require.Len(t, aligned.SharedDays, 1)
	assert.Equal(t, testNow.AddDate(0, 0, -1).Format("2006-01-02"), aligned.SharedDays[0])
}

func TestAlignSharedIsSubsetOfAll(t *testing.T) {
	self := []models.MoodRecord{rec("alice", 0, models.MoodHappy), rec("alice", 5, models.MoodSad)}
	partner := []models.MoodRecord{rec("bob", 0, models.MoodHappy), rec("bob", 9, models.MoodCalm)}

	aligned := Align(self, partner, WindowMetrics, testNow)

	all := make(map[string]bool, len(aligned.AllDays))
	for _, day := range aligned.AllDays {
		all[day] = true
	}
	for _, day := range aligned.SharedDays {
		assert.True(t, all[day], "shared day %s missing from all days", day)
	}
	assert.Len(t, all, len(aligned.SelfByDay)+len(aligned.PartnerByDay)-len(aligned.SharedDays))
}

func TestAlignEmptySideMeansNoSharedDays(t *testing.T) {
	self := []models.MoodRecord{rec("alice", 0, models.MoodHappy)}

	aligned := Align(self, nil, WindowMetrics, testNow)

	assert.Empty(t, aligned.SharedDays)
	assert.Len(t, aligned.AllDays, 1)
}

func TestAlignFiltersToWindow(t *testing.T) {
	self := []models.MoodRecord{
		rec("alice", 0, models.MoodHappy),
		rec("alice", 61, models.MoodSad),
	}

	aligned := Align(self, nil, WindowMetrics, testNow)

	assert.Len(t, aligned.SelfByDay, 1)
}

func TestAlignLatestWriteWinsPerDay(t *testing.T) {
	older := rec("alice", 0, models.MoodSad)
	older.UpdatedAt = testNow.Add(-2 * time.Hour)
	newer := rec("alice", 0, models.MoodHappy)
	newer.UpdatedAt = testNow.Add(-1 * time.Hour)

	// order in the input list must not matter
	for _, input := range [][]models.MoodRecord{{older, newer}, {newer, older}} {
		aligned := Align(input, nil, WindowMetrics, testNow)
		require.Len(t, aligned.SelfByDay, 1)
		for _, kept := range aligned.SelfByDay {
			assert.Equal(t, models.MoodHappy, kept.Mood)
		}
	}
}

func TestAlignDayKeysUseRecordLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// 23:30 UTC on the 30th is already the 31st in Tokyo; each side
	// keeps its own calendar-day boundary.
	selfRec := models.MoodRecord{
		OwnerID:   "alice",
		Date:      time.Date(2026, 8, 30, 23, 30, 0, 0, time.UTC),
		Mood:      models.MoodHappy,
		UpdatedAt: testNow,
	}
	partnerRec := models.MoodRecord{
		OwnerID:   "bob",
		Date:      time.Date(2026, 8, 30, 23, 30, 0, 0, time.UTC).In(tokyo),
		Mood:      models.MoodHappy,
		UpdatedAt: testNow,
	}

	aligned := Align([]models.MoodRecord{selfRec}, []models.MoodRecord{partnerRec}, WindowMetrics, testNow)

	assert.Contains(t, aligned.SelfByDay, "2026-08-30")
	assert.Contains(t, aligned.PartnerByDay, "2026-08-31")
	assert.Empty(t, aligned.SharedDays)
}

func TestAlignIsIdempotent(t *testing.T) {
	self := []models.MoodRecord{rec("alice", 0, models.MoodHappy), rec("alice", 3, models.MoodSad)}
	partner := []models.MoodRecord{rec("bob", 0, models.MoodCalm)}

	first := Align(self, partner, WindowMetrics, testNow)
	second := Align(self, partner, WindowMetrics, testNow)

	assert.Equal(t, first, second)
}
