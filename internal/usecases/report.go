package usecases

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"pika_mood/internal/analytics"
	"pika_mood/internal/cache"
	"pika_mood/internal/logger"
	"pika_mood/internal/models"
)

// MoodFetcher is the record-fetch boundary the analytics caller depends
// on. *storage.MoodStorage satisfies it.
type MoodFetcher interface {
	FetchAllMoods(ctx context.Context, ownerID string) ([]models.MoodRecord, error)
}

// CoupleResult carries the computed report plus per-side load flags, so
// a failed fetch ("could not load") stays distinguishable from a side
// that simply has no data.
type CoupleResult struct {
	Report            analytics.CoupleReport `json:"report"`
	SelfLoadFailed    bool                   `json:"self_load_failed"`
	PartnerLoadFailed bool                   `json:"partner_load_failed"`
}

type ReportService struct {
	moods     MoodFetcher
	snapshots *cache.SnapshotCache
	log       *logger.Logger
	now       func() time.Time
}

func NewReportService(moods MoodFetcher, snapshots *cache.SnapshotCache, log *logger.Logger) *ReportService {
	return &ReportService{
		moods:     moods,
		snapshots: snapshots,
		log:       log.With("component", "report_service"),
		now:       time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (rs *ReportService) WithClock(now func() time.Time) *ReportService {
	rs.now = now
	return rs
}

// SelfReport fetches one owner's records and computes the single-user
// bundle.
func (rs *ReportService) SelfReport(ctx context.Context, ownerID string) (analytics.SelfSummary, error) {
	records, err := rs.moods.FetchAllMoods(ctx, ownerID)
	if err != nil {
		return analytics.SelfSummary{}, err
	}
	return analytics.BuildSelfSummary(records, rs.now()), nil
}

// CoupleReport fetches both sides concurrently, waits for both, then
// makes a single synchronous call into the analytics engine. A failed
// fetch degrades to an empty record list with the matching flag set;
// only fully-loaded reports are cached.
func (rs *ReportService) CoupleReport(ctx context.Context, selfID, partnerID string) (CoupleResult, error) {
	if rs.snapshots != nil {
		if cached, ok := rs.snapshots.GetCouple(ctx, selfID, partnerID); ok {
			return CoupleResult{Report: *cached}, nil
		}
	}

	var selfRecords, partnerRecords []models.MoodRecord
	var selfErr, partnerErr error

	var g errgroup.Group
	g.Go(func() error {
		selfRecords, selfErr = rs.moods.FetchAllMoods(ctx, selfID)
		return nil
	})
	g.Go(func() error {
		partnerRecords, partnerErr = rs.moods.FetchAllMoods(ctx, partnerID)
		return nil
	})
	_ = g.Wait()

	result := CoupleResult{}
	if selfErr != nil {
		rs.log.Warn("self mood fetch failed", "owner_id", selfID, "error", selfErr)
		selfRecords = nil
		result.SelfLoadFailed = true
	}
	if partnerErr != nil {
		rs.log.Warn("partner mood fetch failed", "owner_id", partnerID, "error", partnerErr)
		partnerRecords = nil
		result.PartnerLoadFailed = true
	}

	result.Report = analytics.BuildCoupleReport(selfRecords, partnerRecords, rs.now())

	if rs.snapshots != nil && !result.SelfLoadFailed && !result.PartnerLoadFailed {
		rs.snapshots.SetCouple(ctx, selfID, partnerID, &result.Report)
	}

	return result, nil
}
