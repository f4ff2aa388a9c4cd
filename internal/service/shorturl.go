package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/kirankumar485/urlshortner/internal/alias"
	"github.com/kirankumar485/urlshortner/internal/config"
	"github.com/kirankumar485/urlshortner/internal/model"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	// ErrInvalidURL is returned when the long URL is missing or malformed
	ErrInvalidURL = errors.New("invalid URL")
	// ErrInvalidAlias is returned when a custom alias has a bad format
	ErrInvalidAlias = errors.New("invalid alias")
	// ErrAliasTaken is returned when the requested alias is already in use
	ErrAliasTaken = errors.New("alias already in use")
	// ErrAliasNotFound is returned when the alias is not registered
	ErrAliasNotFound = errors.New("short URL not found")
	// ErrAliasExhausted is returned when no free generated alias was found
	ErrAliasExhausted = errors.New("could not find a free alias")
)

// maxAliasAttempts bounds the collision probing for generated aliases
const maxAliasAttempts = 100

// ShortURLService handles alias creation and resolution
type ShortURLService struct {
	mysqlRepo MySQLRepositoryInterface
	redisRepo RedisRepositoryInterface
	bloomSvc  BloomServiceInterface
	domain    string
	cacheCfg  *config.CacheConfig
}

// NewShortURLService creates a new ShortURL Service
func NewShortURLService(
	mysqlRepo MySQLRepositoryInterface,
	redisRepo RedisRepositoryInterface,
	bloomSvc BloomServiceInterface,
	domain string,
	cacheCfg *config.CacheConfig,
) *ShortURLService {
	return &ShortURLService{
		mysqlRepo: mysqlRepo,
		redisRepo: redisRepo,
		bloomSvc:  bloomSvc,
		domain:    domain,
		cacheCfg:  cacheCfg,
	}
}

// Create registers a new short URL for a user, using the custom alias when
// given or probing generated candidates otherwise.
func (s *ShortURLService) Create(ctx context.Context, req *model.ShortenRequest, userID string) (*model.ShortenResponse, error) {
	u, err := url.ParseRequestURI(req.LongURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, ErrInvalidURL
	}

	var a string
	if req.CustomAlias != "" {
		if !alias.IsValid(req.CustomAlias) {
			return nil, ErrInvalidAlias
		}
		inUse, err := s.aliasInUse(ctx, req.CustomAlias)
		if err != nil {
			return nil, fmt.Errorf("failed to check alias availability: %w", err)
		}
		if inUse {
			return nil, ErrAliasTaken
		}
		a = req.CustomAlias
	} else {
		a, err = s.generateWithCollision(ctx, req.LongURL)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	su := &model.ShortURL{
		Alias:     a,
		LongURL:   req.LongURL,
		ShortURL:  fmt.Sprintf("%s/shorten/%s", s.domain, a),
		Topic:     req.Topic,
		UserID:    userID,
		CreatedAt: now,
	}

	if err := s.mysqlRepo.SaveShortURL(ctx, su); err != nil {
		log.Error().Err(err).Str("alias", a).Msg("Failed to save short URL")
		return nil, fmt.Errorf("failed to save short URL: %w", err)
	}

	// Warm the resolution cache
	if err := s.redisRepo.SaveAliasCache(ctx, a, su.LongURL, s.cacheCfg.TTL()); err != nil {
		log.Warn().Err(err).Str("alias", a).Msg("Failed to cache new alias")
	}

	if err := s.bloomSvc.Add(ctx, a); err != nil {
		log.Warn().Err(err).Str("alias", a).Msg("Failed to add alias to Bloom Filter")
	}

	return &model.ShortenResponse{
		ShortURL:  su.ShortURL,
		Alias:     a,
		CreatedAt: now,
	}, nil
}

// Resolve returns the short URL record for an alias: cache first, registry
// on a miss. A registry hit refreshes the cache off the request path.
func (s *ShortURLService) Resolve(ctx context.Context, a string) (*model.ShortURL, error) {
	if longURL, err := s.redisRepo.GetAliasCache(ctx, a); err == nil && longURL != "" {
		return &model.ShortURL{Alias: a, LongURL: longURL}, nil
	}

	su, err := s.mysqlRepo.GetByAlias(ctx, a)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAliasNotFound
		}
		return nil, fmt.Errorf("failed to load short URL: %w", err)
	}

	s.cacheAsync(a, su.LongURL)

	return su, nil
}

// cacheAsync writes through the resolution cache without blocking the
// caller; a failed or timed-out write is dropped.
func (s *ShortURLService) cacheAsync(a, longURL string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.cacheCfg.WriteTimeout())
		defer cancel()

		if err := s.redisRepo.SaveAliasCache(ctx, a, longURL, s.cacheCfg.TTL()); err != nil {
			log.Warn().Err(err).Str("alias", a).Msg("Failed to cache alias resolution")
		}
	}()
}

// generateWithCollision probes generated alias candidates until a free one
// is found
func (s *ShortURLService) generateWithCollision(ctx context.Context, longURL string) (string, error) {
	for attempt := 0; attempt < maxAliasAttempts; attempt++ {
		candidate := alias.Generate(longURL, attempt)

		inUse, err := s.aliasInUse(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check alias availability: %w", err)
		}
		if !inUse {
			return candidate, nil
		}
	}

	return "", ErrAliasExhausted
}

// aliasInUse checks alias availability: a Bloom Filter miss is authoritative,
// a hit is confirmed against the registry to rule out false positives.
func (s *ShortURLService) aliasInUse(ctx context.Context, a string) (bool, error) {
	exists, err := s.bloomSvc.Exists(ctx, a)
	if err == nil && !exists {
		return false, nil
	}

	return s.mysqlRepo.ExistsByAlias(ctx, a)
}
