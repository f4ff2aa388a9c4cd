package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kirankumar485/urlshortner/internal/model"
	"github.com/kirankumar485/urlshortner/internal/useragent"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// dateLayout is the UTC calendar date format used for daily buckets
const dateLayout = "2006-01-02"

// ErrAnalyticsNotFound is returned when no click was ever recorded for an alias
var ErrAnalyticsNotFound = errors.New("analytics not found")

// AnalyticsService records clicks against alias aggregates and serves
// per-alias analytics
type AnalyticsService struct {
	redisRepo RedisRepositoryInterface
}

// NewAnalyticsService creates a new Analytics Service
func NewAnalyticsService(redisRepo RedisRepositoryInterface) *AnalyticsService {
	return &AnalyticsService{
		redisRepo: redisRepo,
	}
}

// RecordClick applies a single visit to the alias aggregate: total counter,
// visitor set membership, the UTC day bucket and the OS/device buckets the
// user agent classifies into. The store applies all of it atomically per
// alias.
func (as *AnalyticsService) RecordClick(ctx context.Context, alias, visitorID, userAgent string, observedAt time.Time) error {
	day := observedAt.UTC().Format(dateLayout)
	osName, deviceName := useragent.Classify(userAgent)

	if err := as.redisRepo.RecordClick(ctx, alias, visitorID, day, osName, deviceName); err != nil {
		log.Error().Err(err).Str("alias", alias).Msg("Failed to record click")
		return fmt.Errorf("failed to record click: %w", err)
	}

	return nil
}

// GetAliasAnalytics returns the analytics payload for a single alias
func (as *AnalyticsService) GetAliasAnalytics(ctx context.Context, alias string) (*model.AliasAnalyticsResponse, error) {
	a, err := as.redisRepo.GetAnalytics(ctx, alias)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrAnalyticsNotFound
		}
		return nil, fmt.Errorf("failed to load analytics: %w", err)
	}

	return &model.AliasAnalyticsResponse{
		TotalClicks:  a.TotalClicks,
		UniqueClicks: a.UniqueVisitors,
		ClicksByDate: model.SortedSeries(a.ClicksByDate),
		OSType:       model.SortedOSStats(a.OSBreakdown),
		DeviceType:   model.SortedDeviceStats(a.DeviceBreakdown),
	}, nil
}
