package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pika_mood/internal/logger"
	"pika_mood/internal/models"
)

var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

type fakeFetcher struct {
	records map[string][]models.MoodRecord
	errs    map[string]error
	calls   []string
}

func (f *fakeFetcher) FetchAllMoods(_ context.Context, ownerID string) ([]models.MoodRecord, error) {
	f.calls = append(f.calls, ownerID)
	if err := f.errs[ownerID]; err != nil {
		return nil, err
	}
	return f.records[ownerID], nil
}

func dayRecord(owner string, daysAgo int, mood models.MoodCategory) models.MoodRecord {
	date := testNow.AddDate(0, 0, -daysAgo)
	return models.MoodRecord{OwnerID: owner, Date: date, Mood: mood, UpdatedAt: date}
}

func newTestService(fetcher *fakeFetcher) *ReportService {
	return NewReportService(fetcher, nil, logger.NewNop()).WithClock(func() time.Time { return testNow })
}

func TestSelfReport(t *testing.T) {
	fetcher := &fakeFetcher{records: map[string][]models.MoodRecord{
		"alice": {dayRecord("alice", 0, models.MoodVeryHappy)},
	}}

	summary, err := newTestService(fetcher).SelfReport(context.Background(), "alice")

	require.NoError(t, err)
	require.NotNil(t, summary.OverallScore)
	assert.InDelta(t, 100.0, *summary.OverallScore, 1e-9)
}

func TestSelfReportPropagatesFetchError(t *testing.T) {
	fetchErr := errors.New("storage down")
	fetcher := &fakeFetcher{errs: map[string]error{"alice": fetchErr}}

	_, err := newTestService(fetcher).SelfReport(context.Background(), "alice")

	assert.ErrorIs(t, err, fetchErr)
}

func TestCoupleReportFetchesBothSides(t *testing.T) {
	fetcher := &fakeFetcher{records: map[string][]models.MoodRecord{
		"alice": {dayRecord("alice", 1, models.MoodHappy)},
		"bob":   {dayRecord("bob", 1, models.MoodHappy)},
	}}

	result, err := newTestService(fetcher).CoupleReport(context.Background(), "alice", "bob")

	require.NoError(t, err)
	assert.False(t, result.SelfLoadFailed)
	assert.False(t, result.PartnerLoadFailed)
	assert.ElementsMatch(t, []string{"alice", "bob"}, fetcher.calls)

	require.NotNil(t, result.Report.SyncPercent)
	assert.Equal(t, 100, *result.Report.SyncPercent)
	require.NotNil(t, result.Report.HarmonyScore)
	assert.InDelta(t, 1.0, *result.Report.HarmonyScore, 1e-9)
}

// A failed side degrades to an empty list; the flag lets the caller
// show "could not load" instead of "no data".
func TestCoupleReportDegradesFailedFetch(t *testing.T) {
	fetcher := &fakeFetcher{
		records: map[string][]models.MoodRecord{
			"alice": {dayRecord("alice", 1, models.MoodHappy)},
		},
		errs: map[string]error{"bob": errors.New("timeout")},
	}

	result, err := newTestService(fetcher).CoupleReport(context.Background(), "alice", "bob")

	require.NoError(t, err)
	assert.False(t, result.SelfLoadFailed)
	assert.True(t, result.PartnerLoadFailed)

	// partner side computed as empty, not fabricated
	require.NotNil(t, result.Report.SyncPercent)
	assert.Equal(t, 0, *result.Report.SyncPercent)
	assert.Nil(t, result.Report.AlignmentPercent)
}

func TestCoupleReportBothSidesEmpty(t *testing.T) {
	fetcher := &fakeFetcher{}

	result, err := newTestService(fetcher).CoupleReport(context.Background(), "alice", "bob")

	require.NoError(t, err)
	report := result.Report
	assert.Nil(t, report.SyncPercent)
	assert.Nil(t, report.AlignmentPercent)
	assert.Nil(t, report.HarmonyScore)
	assert.Nil(t, report.SupportBalance)
}

func TestCoupleReportRepeatedCallsMatch(t *testing.T) {
	fetcher := &fakeFetcher{records: map[string][]models.MoodRecord{
		"alice": {dayRecord("alice", 0, models.MoodCalm), dayRecord("alice", 2, models.MoodSad)},
		"bob":   {dayRecord("bob", 0, models.MoodOkay)},
	}}
	service := newTestService(fetcher)

	first, err := service.CoupleReport(context.Background(), "alice", "bob")
	require.NoError(t, err)
	second, err := service.CoupleReport(context.Background(), "alice", "bob")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
