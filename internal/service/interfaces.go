package service

import (
	"context"
	"time"

	"github.com/kirankumar485/urlshortner/internal/model"

	"github.com/redis/go-redis/v9"
)

// MySQLRepositoryInterface defines the interface for MySQL operations (for testing)
type MySQLRepositoryInterface interface {
	SaveShortURL(ctx context.Context, su *model.ShortURL) error
	GetByAlias(ctx context.Context, alias string) (*model.ShortURL, error)
	GetByTopic(ctx context.Context, topic string) ([]model.ShortURL, error)
	GetByUser(ctx context.Context, userID string) ([]model.ShortURL, error)
	ExistsByAlias(ctx context.Context, alias string) (bool, error)
}

// RedisRepositoryInterface defines the interface for Redis operations (for testing)
type RedisRepositoryInterface interface {
	GetClient() *redis.Client
	SaveAliasCache(ctx context.Context, alias, longURL string, ttl time.Duration) error
	GetAliasCache(ctx context.Context, alias string) (string, error)
	RecordClick(ctx context.Context, alias, visitorID, day, osName, deviceName string) error
	GetAnalytics(ctx context.Context, alias string) (*model.AliasAnalytics, error)
}

// BloomServiceInterface defines the interface for Bloom Filter operations (for testing)
type BloomServiceInterface interface {
	Add(ctx context.Context, alias string) error
	Exists(ctx context.Context, alias string) (bool, error)
	GetCapacity() int64
	IsAvailable(ctx context.Context) bool
	Reset(ctx context.Context) error
}

// ShortURLServiceInterface defines the interface for short URL operations
type ShortURLServiceInterface interface {
	Create(ctx context.Context, req *model.ShortenRequest, userID string) (*model.ShortenResponse, error)
	Resolve(ctx context.Context, alias string) (*model.ShortURL, error)
}

// AnalyticsServiceInterface defines the interface for click recording and per-alias analytics
type AnalyticsServiceInterface interface {
	RecordClick(ctx context.Context, alias, visitorID, userAgent string, observedAt time.Time) error
	GetAliasAnalytics(ctx context.Context, alias string) (*model.AliasAnalyticsResponse, error)
}

// RollupServiceInterface defines the interface for topic and user level rollups
type RollupServiceInterface interface {
	TopicAnalytics(ctx context.Context, topic string) (*model.TopicAnalyticsResponse, error)
	OverallAnalytics(ctx context.Context, userID string) (*model.OverallAnalyticsResponse, error)
}
