package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/kirankumar485/urlshortner/internal/config"
	"github.com/kirankumar485/urlshortner/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	// Redis key prefixes
	AliasCacheKeyPrefix = "su:url:"
	ClicksKeyPrefix     = "su:clicks:"
	VisitorsKeyPrefix   = "su:visitors:"
	DailyKeyPrefix      = "su:daily:"
	OSHitsKeyPrefix     = "su:os:"
	OSUsersKeyPrefix    = "su:osu:"
	DevHitsKeyPrefix    = "su:dev:"
	DevUsersKeyPrefix   = "su:devu:"
)

// RedisRepository handles Redis operations: the per-alias analytics
// aggregate and the alias resolution cache. All analytics mutations go
// through server-side increments, never read-modify-write, so concurrent
// recorders for the same alias cannot lose updates.
type RedisRepository struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisRepository{
		client: rdb,
		cfg:    cfg,
	}
}

// GetClient returns the Redis client
func (r *RedisRepository) GetClient() *redis.Client {
	return r.client
}

// SaveAliasCache caches the alias to long URL mapping
func (r *RedisRepository) SaveAliasCache(ctx context.Context, alias, longURL string, ttl time.Duration) error {
	return r.client.Set(ctx, r.aliasCacheKey(alias), longURL, ttl).Err()
}

// GetAliasCache retrieves a cached long URL for an alias
func (r *RedisRepository) GetAliasCache(ctx context.Context, alias string) (string, error) {
	return r.client.Get(ctx, r.aliasCacheKey(alias)).Result()
}

// RecordClick applies one click to the alias aggregate in a single
// transactional pipeline: total counter, visitor set, daily bucket and the
// OS/device hit and user counters. Records are created lazily by the first
// increment and every counter moves by exactly one per click.
func (r *RedisRepository) RecordClick(ctx context.Context, alias, visitorID, day, osName, deviceName string) error {
	pipe := r.client.TxPipeline()

	pipe.Incr(ctx, r.clicksKey(alias))
	pipe.SAdd(ctx, r.visitorsKey(alias), visitorID)
	pipe.HIncrBy(ctx, r.dailyKey(alias), day, 1)
	pipe.HIncrBy(ctx, r.osHitsKey(alias), osName, 1)
	pipe.HIncrBy(ctx, r.osUsersKey(alias), osName, 1)
	pipe.HIncrBy(ctx, r.devHitsKey(alias), deviceName, 1)
	pipe.HIncrBy(ctx, r.devUsersKey(alias), deviceName, 1)

	_, err := pipe.Exec(ctx)
	return err
}

// GetAnalytics assembles the aggregate record for an alias. All reads go
// through one transactional pipeline so the record is a single MULTI/EXEC
// snapshot: a concurrent RecordClick lands entirely before or entirely
// after it, never in between. Returns redis.Nil when no click has ever
// been recorded for the alias.
func (r *RedisRepository) GetAnalytics(ctx context.Context, alias string) (*model.AliasAnalytics, error) {
	pipe := r.client.TxPipeline()

	totalCmd := pipe.Get(ctx, r.clicksKey(alias))
	visitorsCmd := pipe.SCard(ctx, r.visitorsKey(alias))
	dailyCmd := pipe.HGetAll(ctx, r.dailyKey(alias))
	osHitsCmd := pipe.HGetAll(ctx, r.osHitsKey(alias))
	osUsersCmd := pipe.HGetAll(ctx, r.osUsersKey(alias))
	devHitsCmd := pipe.HGetAll(ctx, r.devHitsKey(alias))
	devUsersCmd := pipe.HGetAll(ctx, r.devUsersKey(alias))

	// Exec surfaces redis.Nil when the total counter is unset; that is the
	// "never clicked" signal, not a transport failure.
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, err
	}

	total, err := totalCmd.Int64()
	if err != nil {
		return nil, err
	}

	visitors, err := visitorsCmd.Result()
	if err != nil {
		return nil, err
	}

	return &model.AliasAnalytics{
		Alias:           alias,
		TotalClicks:     total,
		UniqueVisitors:  visitors,
		ClicksByDate:    parseCounterHash(dailyCmd.Val(), r.dailyKey(alias)),
		OSBreakdown:     combineBreakdown(osHitsCmd.Val(), osUsersCmd.Val(), r.osHitsKey(alias)),
		DeviceBreakdown: combineBreakdown(devHitsCmd.Val(), devUsersCmd.Val(), r.devHitsKey(alias)),
	}, nil
}

// parseCounterHash converts a raw hash reply into int64 counters
func parseCounterHash(raw map[string]string, key string) map[string]int64 {
	out := make(map[string]int64, len(raw))
	for field, val := range raw {
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			log.Warn().Str("key", key).Str("field", field).Msg("Skipping non-numeric counter field")
			continue
		}
		out[field] = n
	}
	return out
}

// combineBreakdown joins the hit and user counter hashes of one dimension
func combineBreakdown(rawHits, rawUsers map[string]string, key string) map[string]model.CategoryCount {
	hits := parseCounterHash(rawHits, key)
	users := parseCounterHash(rawUsers, key)

	out := make(map[string]model.CategoryCount, len(hits))
	for name, n := range hits {
		out[name] = model.CategoryCount{UniqueClicks: n, UniqueUsers: users[name]}
	}
	return out
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

// Helper functions to build Redis keys

func (r *RedisRepository) aliasCacheKey(alias string) string {
	return AliasCacheKeyPrefix + alias
}

func (r *RedisRepository) clicksKey(alias string) string {
	return ClicksKeyPrefix + alias
}

func (r *RedisRepository) visitorsKey(alias string) string {
	return VisitorsKeyPrefix + alias
}

func (r *RedisRepository) dailyKey(alias string) string {
	return DailyKeyPrefix + alias
}

func (r *RedisRepository) osHitsKey(alias string) string {
	return OSHitsKeyPrefix + alias
}

func (r *RedisRepository) osUsersKey(alias string) string {
	return OSUsersKeyPrefix + alias
}

func (r *RedisRepository) devHitsKey(alias string) string {
	return DevHitsKeyPrefix + alias
}

func (r *RedisRepository) devUsersKey(alias string) string {
	return DevUsersKeyPrefix + alias
}
