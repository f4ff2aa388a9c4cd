package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kirankumar485/urlshortner/internal/config"
)

func newTestRedisRepo(t *testing.T) (*RedisRepository, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})

	return &RedisRepository{
		client: client,
		cfg: &config.RedisConfig{
			Addr:     s.Addr(),
			Password: "",
			DB:       0,
		},
	}, s
}

func TestNewRedisRepository(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()

	cfg := &config.RedisConfig{
		Addr:     s.Addr(),
		Password: "",
		DB:       0,
	}

	repo := NewRedisRepository(cfg)

	assert.NotNil(t, repo)
	assert.NotNil(t, repo.client)
	assert.Equal(t, cfg, repo.cfg)

	repo.Close()
}

func TestRedisRepository_AliasCache(t *testing.T) {
	repo, s := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()

	t.Run("save and get", func(t *testing.T) {
		err := repo.SaveAliasCache(ctx, "ab12", "https://example.com", time.Hour)
		require.NoError(t, err)

		url, err := repo.GetAliasCache(ctx, "ab12")
		assert.NoError(t, err)
		assert.Equal(t, "https://example.com", url)
	})

	t.Run("missing alias", func(t *testing.T) {
		_, err := repo.GetAliasCache(ctx, "missing")
		assert.Equal(t, redis.Nil, err)
	})

	t.Run("entry expires", func(t *testing.T) {
		err := repo.SaveAliasCache(ctx, "ttl1", "https://example.com/a", time.Hour)
		require.NoError(t, err)

		s.FastForward(2 * time.Hour)

		_, err = repo.GetAliasCache(ctx, "ttl1")
		assert.Equal(t, redis.Nil, err)
	})
}

func TestRedisRepository_RecordClick(t *testing.T) {
	repo, _ := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()

	// 3 clicks on the same day, 2 distinct visitors, all Windows desktop
	require.NoError(t, repo.RecordClick(ctx, "ab12", "1.1.1.1", "2024-06-01", "Windows", "Desktop"))
	require.NoError(t, repo.RecordClick(ctx, "ab12", "2.2.2.2", "2024-06-01", "Windows", "Desktop"))
	require.NoError(t, repo.RecordClick(ctx, "ab12", "1.1.1.1", "2024-06-01", "Windows", "Desktop"))

	a, err := repo.GetAnalytics(ctx, "ab12")
	require.NoError(t, err)

	assert.Equal(t, int64(3), a.TotalClicks)
	assert.Equal(t, int64(2), a.UniqueVisitors)
	assert.Equal(t, map[string]int64{"2024-06-01": 3}, a.ClicksByDate)
	assert.Equal(t, int64(3), a.OSBreakdown["Windows"].UniqueClicks)
	assert.Equal(t, int64(3), a.OSBreakdown["Windows"].UniqueUsers)
	assert.Equal(t, int64(3), a.DeviceBreakdown["Desktop"].UniqueClicks)
	assert.Len(t, a.OSBreakdown, 1)
	assert.Len(t, a.DeviceBreakdown, 1)
}

func TestRedisRepository_RecordClick_MultipleDaysAndCategories(t *testing.T) {
	repo, _ := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()

	require.NoError(t, repo.RecordClick(ctx, "ab12", "1.1.1.1", "2024-06-01", "Windows", "Desktop"))
	require.NoError(t, repo.RecordClick(ctx, "ab12", "2.2.2.2", "2024-06-02", "Android", "Mobile"))
	require.NoError(t, repo.RecordClick(ctx, "ab12", "3.3.3.3", "2024-06-02", "iOS", "Mobile"))

	a, err := repo.GetAnalytics(ctx, "ab12")
	require.NoError(t, err)

	assert.Equal(t, int64(3), a.TotalClicks)
	assert.Equal(t, int64(3), a.UniqueVisitors)
	assert.Equal(t, int64(1), a.ClicksByDate["2024-06-01"])
	assert.Equal(t, int64(2), a.ClicksByDate["2024-06-02"])

	// Counter sums stay consistent with the total
	var dailySum, osSum, devSum int64
	for _, n := range a.ClicksByDate {
		dailySum += n
	}
	for _, c := range a.OSBreakdown {
		osSum += c.UniqueClicks
	}
	for _, c := range a.DeviceBreakdown {
		devSum += c.UniqueClicks
	}
	assert.Equal(t, a.TotalClicks, dailySum)
	assert.Equal(t, a.TotalClicks, osSum)
	assert.Equal(t, a.TotalClicks, devSum)
	assert.LessOrEqual(t, a.UniqueVisitors, a.TotalClicks)
}

func TestRedisRepository_RecordClick_Concurrent(t *testing.T) {
	repo, _ := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()
	const n = 100

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			visitorID := fmt.Sprintf("10.0.0.%d", i%10)
			err := repo.RecordClick(ctx, "hot1", visitorID, "2024-06-01", "Windows", "Desktop")
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	a, err := repo.GetAnalytics(ctx, "hot1")
	require.NoError(t, err)

	// No lost updates under concurrent writers
	assert.Equal(t, int64(n), a.TotalClicks)
	assert.Equal(t, int64(10), a.UniqueVisitors)
	assert.Equal(t, int64(n), a.ClicksByDate["2024-06-01"])
	assert.Equal(t, int64(n), a.OSBreakdown["Windows"].UniqueClicks)
	assert.Equal(t, int64(n), a.DeviceBreakdown["Desktop"].UniqueClicks)
}

func TestRedisRepository_GetAnalytics_ConsistentSnapshot(t *testing.T) {
	repo, _ := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()
	const n = 200

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < n; i++ {
			visitorID := fmt.Sprintf("10.0.0.%d", i%10)
			day := fmt.Sprintf("2024-06-%02d", i%3+1)
			assert.NoError(t, repo.RecordClick(ctx, "hot2", visitorID, day, "Windows", "Desktop"))
		}
	}()

	// Every read taken while the writer is running must be a consistent
	// snapshot: the daily, OS and device sums all equal the total counter.
	reads := 0
	for {
		select {
		case <-done:
			if reads == 0 {
				t.Log("no reads overlapped the writer")
			}
			return
		default:
		}

		a, err := repo.GetAnalytics(ctx, "hot2")
		if err == redis.Nil {
			continue
		}
		require.NoError(t, err)
		reads++

		var dailySum, osSum, devSum int64
		for _, c := range a.ClicksByDate {
			dailySum += c
		}
		for _, c := range a.OSBreakdown {
			osSum += c.UniqueClicks
		}
		for _, c := range a.DeviceBreakdown {
			devSum += c.UniqueClicks
		}

		require.Equal(t, a.TotalClicks, dailySum, "daily series out of sync with total")
		require.Equal(t, a.TotalClicks, osSum, "OS breakdown out of sync with total")
		require.Equal(t, a.TotalClicks, devSum, "device breakdown out of sync with total")
		require.LessOrEqual(t, a.UniqueVisitors, a.TotalClicks)
	}
}

func TestRedisRepository_GetAnalytics_NoRecord(t *testing.T) {
	repo, _ := newTestRedisRepo(t)
	defer repo.Close()

	_, err := repo.GetAnalytics(context.Background(), "nothing")
	assert.Equal(t, redis.Nil, err)
}
