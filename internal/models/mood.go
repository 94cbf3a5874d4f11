package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type MoodCategory string

const (
	MoodVeryHappy MoodCategory = "veryHappy"
	MoodHappy     MoodCategory = "happy"
	MoodOkay      MoodCategory = "okay"
	MoodSad       MoodCategory = "sad"
	MoodAngry     MoodCategory = "angry"
	MoodTired     MoodCategory = "tired"
	MoodCalm      MoodCategory = "calm"
)

// CanonicalMoods fixes the enumeration order used for deterministic
// tie-breaking in "most frequent" style aggregations.
var CanonicalMoods = []MoodCategory{
	MoodVeryHappy,
	MoodHappy,
	MoodOkay,
	MoodSad,
	MoodAngry,
	MoodTired,
	MoodCalm,
}

func ParseMoodCategory(s string) (MoodCategory, error) {
	for _, m := range CanonicalMoods {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mood category %q", s)
}

func (m MoodCategory) Valid() bool {
	for _, known := range CanonicalMoods {
		if m == known {
			return true
		}
	}
	return false
}

type WeatherType string

const (
	WeatherSunny  WeatherType = "sunny"
	WeatherCloudy WeatherType = "cloudy"
	WeatherRainy  WeatherType = "rainy"
	WeatherSnow   WeatherType = "snow"
	WeatherStorm  WeatherType = "storm"
	WeatherWindy  WeatherType = "windy"
)

type SocialTag string

const (
	TagAlone   SocialTag = "alone"
	TagPartner SocialTag = "partner"
	TagFriends SocialTag = "friends"
	TagFamily  SocialTag = "family"
	TagWork    SocialTag = "work"
	TagStudy   SocialTag = "study"
)

// DefaultIntensity is assumed whenever a record carries no intensity.
const DefaultIntensity = 0.5

// MoodRecord is one user's mood snapshot for a single calendar day.
// Only the calendar day of Date (in the record's own location) matters
// for comparisons; time-of-day is ignored.
type MoodRecord struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	OwnerID     string       `json:"owner_id" db:"owner_id"`
	Date        time.Time    `json:"date" db:"date"`
	Mood        MoodCategory `json:"mood" db:"mood"`
	JournalText *string      `json:"journal_text,omitempty" db:"journal_text"`
	Weather     *WeatherType `json:"weather,omitempty" db:"weather"`
	SocialTag   *SocialTag   `json:"social_tag,omitempty" db:"social_tag"`
	Intensity   *float64     `json:"intensity,omitempty" db:"intensity"`
	UpdatedAt   time.Time    `json:"updated_at" db:"updated_at"`
}

// DayKey is the calendar-day identity of the record in its own location.
func (r MoodRecord) DayKey() string {
	return r.Date.Format("2006-01-02")
}

func (r MoodRecord) IntensityOrDefault() float64 {
	if r.Intensity == nil {
		return DefaultIntensity
	}
	return *r.Intensity
}
