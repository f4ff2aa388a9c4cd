package repository

import (
	"context"
	"time"

	"github.com/kirankumar485/urlshortner/internal/model"
)

// MySQLRepositoryInterface defines the interface for MySQL operations
type MySQLRepositoryInterface interface {
	GetDB() interface{}
	SaveShortURL(ctx context.Context, su *model.ShortURL) error
	GetByAlias(ctx context.Context, alias string) (*model.ShortURL, error)
	GetByTopic(ctx context.Context, topic string) ([]model.ShortURL, error)
	GetByUser(ctx context.Context, userID string) ([]model.ShortURL, error)
	ExistsByAlias(ctx context.Context, alias string) (bool, error)
	SaveClickLog(ctx context.Context, clickLog *model.ClickLog) error
	GetClickLogs(ctx context.Context, alias string, limit int) ([]model.ClickLog, error)
	Close() error
}

// RedisRepositoryInterface defines the interface for Redis operations
type RedisRepositoryInterface interface {
	GetClient() interface{}
	SaveAliasCache(ctx context.Context, alias, longURL string, ttl time.Duration) error
	GetAliasCache(ctx context.Context, alias string) (string, error)
	RecordClick(ctx context.Context, alias, visitorID, day, osName, deviceName string) error
	GetAnalytics(ctx context.Context, alias string) (*model.AliasAnalytics, error)
	Close() error
}
