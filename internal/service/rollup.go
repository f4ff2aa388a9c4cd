package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kirankumar485/urlshortner/internal/model"

	"github.com/redis/go-redis/v9"
)

// ErrNoShortURLs is returned when a rollup targets an empty alias set
var ErrNoShortURLs = errors.New("no short URLs found")

// RollupService merges per-alias aggregates into topic and user level views
type RollupService struct {
	mysqlRepo MySQLRepositoryInterface
	redisRepo RedisRepositoryInterface
}

// NewRollupService creates a new Rollup Service
func NewRollupService(mysqlRepo MySQLRepositoryInterface, redisRepo RedisRepositoryInterface) *RollupService {
	return &RollupService{
		mysqlRepo: mysqlRepo,
		redisRepo: redisRepo,
	}
}

// MergeSeries merges two daily click series: union of dates, counts summed
// for dates present in both. Commutative and associative; the empty series
// is the identity.
func MergeSeries(a, b map[string]int64) map[string]int64 {
	merged := make(map[string]int64, len(a)+len(b))
	for date, count := range a {
		merged[date] = count
	}
	for date, count := range b {
		merged[date] += count
	}
	return merged
}

// MergeBreakdown merges two category breakdowns keyed by category name,
// summing both counters. Same algebra as MergeSeries.
func MergeBreakdown(a, b map[string]model.CategoryCount) map[string]model.CategoryCount {
	merged := make(map[string]model.CategoryCount, len(a)+len(b))
	for name, c := range a {
		merged[name] = c
	}
	for name, c := range b {
		prev := merged[name]
		merged[name] = model.CategoryCount{
			UniqueClicks: prev.UniqueClicks + c.UniqueClicks,
			UniqueUsers:  prev.UniqueUsers + c.UniqueUsers,
		}
	}
	return merged
}

// TopicAnalytics folds the aggregates of every alias under a topic.
// Aliases that were never clicked contribute nothing; unique visitor counts
// are summed per alias, not deduplicated across aliases.
func (rs *RollupService) TopicAnalytics(ctx context.Context, topic string) (*model.TopicAnalyticsResponse, error) {
	urls, err := rs.mysqlRepo.GetByTopic(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("failed to load short URLs for topic: %w", err)
	}
	if len(urls) == 0 {
		return nil, ErrNoShortURLs
	}

	resp := &model.TopicAnalyticsResponse{
		URLs: []model.URLStats{},
	}
	series := map[string]int64{}

	for _, u := range urls {
		a, err := rs.redisRepo.GetAnalytics(ctx, u.Alias)
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load analytics for alias %s: %w", u.Alias, err)
		}

		resp.TotalClicks += a.TotalClicks
		resp.UniqueClicks += a.UniqueVisitors
		series = MergeSeries(series, a.ClicksByDate)

		resp.URLs = append(resp.URLs, model.URLStats{
			ShortURL:     u.ShortURL,
			TotalClicks:  a.TotalClicks,
			UniqueClicks: a.UniqueVisitors,
		})
	}

	resp.ClicksByDate = model.SortedSeries(series)

	return resp, nil
}

// OverallAnalytics folds the aggregates of every alias a user owns,
// including the OS and device breakdowns.
func (rs *RollupService) OverallAnalytics(ctx context.Context, userID string) (*model.OverallAnalyticsResponse, error) {
	urls, err := rs.mysqlRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load short URLs for user: %w", err)
	}
	if len(urls) == 0 {
		return nil, ErrNoShortURLs
	}

	resp := &model.OverallAnalyticsResponse{
		TotalURLs: len(urls),
	}
	series := map[string]int64{}
	osBreakdown := map[string]model.CategoryCount{}
	deviceBreakdown := map[string]model.CategoryCount{}

	for _, u := range urls {
		a, err := rs.redisRepo.GetAnalytics(ctx, u.Alias)
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load analytics for alias %s: %w", u.Alias, err)
		}

		resp.TotalClicks += a.TotalClicks
		resp.UniqueClicks += a.UniqueVisitors
		series = MergeSeries(series, a.ClicksByDate)
		osBreakdown = MergeBreakdown(osBreakdown, a.OSBreakdown)
		deviceBreakdown = MergeBreakdown(deviceBreakdown, a.DeviceBreakdown)
	}

	resp.ClicksByDate = model.SortedSeries(series)
	resp.OSType = model.SortedOSStats(osBreakdown)
	resp.DeviceType = model.SortedDeviceStats(deviceBreakdown)

	return resp, nil
}
