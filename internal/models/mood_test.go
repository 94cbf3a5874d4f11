package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoodCategory(t *testing.T) {
	for _, m := range CanonicalMoods {
		parsed, err := ParseMoodCategory(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}

	_, err := ParseMoodCategory("grumpy")
	assert.Error(t, err)

	_, err = ParseMoodCategory("")
	assert.Error(t, err)
}

func TestCanonicalMoodsCoverTheClosedSet(t *testing.T) {
	assert.Len(t, CanonicalMoods, 7)

	seen := make(map[MoodCategory]bool, len(CanonicalMoods))
	for _, m := range CanonicalMoods {
		assert.False(t, seen[m], "duplicate category %s", m)
		seen[m] = true
		assert.True(t, m.Valid())
	}
}

func TestDayKeyUsesRecordLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	instant := time.Date(2026, 8, 30, 23, 30, 0, 0, time.UTC)

	utcRec := MoodRecord{Date: instant, Mood: MoodHappy}
	tokyoRec := MoodRecord{Date: instant.In(tokyo), Mood: MoodHappy}

	assert.Equal(t, "2026-08-30", utcRec.DayKey())
	assert.Equal(t, "2026-08-31", tokyoRec.DayKey())
}

func TestIntensityOrDefault(t *testing.T) {
	rec := MoodRecord{Mood: MoodOkay}
	assert.Equal(t, DefaultIntensity, rec.IntensityOrDefault())

	strong := 0.9
	rec.Intensity = &strong
	assert.Equal(t, 0.9, rec.IntensityOrDefault())
}
