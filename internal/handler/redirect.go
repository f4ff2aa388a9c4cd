package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/kirankumar485/urlshortner/internal/geo"
	"github.com/kirankumar485/urlshortner/internal/mq"
	"github.com/kirankumar485/urlshortner/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// geoLookupTimeout bounds the detached enrichment lookup when the caller's
// request has already finished
const geoLookupTimeout = 3 * time.Second

// RedirectHandler resolves aliases and fans out the per-click side effects:
// synchronous analytics recording plus best-effort geolocation and MQ
// publishing. None of the side effects can fail the redirect.
type RedirectHandler struct {
	shortURLService  service.ShortURLServiceInterface
	analyticsService service.AnalyticsServiceInterface
	geoClient        geo.ClientInterface
	mqProducer       mq.ProducerInterface
}

// NewRedirectHandler creates a new RedirectHandler
func NewRedirectHandler(
	shortURLService service.ShortURLServiceInterface,
	analyticsService service.AnalyticsServiceInterface,
	geoClient geo.ClientInterface,
	mqProducer mq.ProducerInterface,
) *RedirectHandler {
	return &RedirectHandler{
		shortURLService:  shortURLService,
		analyticsService: analyticsService,
		geoClient:        geoClient,
		mqProducer:       mqProducer,
	}
}

// Redirect handles GET /shorten/:alias
// @Summary Redirect to the original URL
// @Description Resolves the alias, records the click and redirects
// @Tags shorturl
// @Param alias path string true "Alias"
// @Success 302
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shorten/{alias} [get]
func (h *RedirectHandler) Redirect(c *gin.Context) {
	alias := c.Param("alias")

	su, err := h.shortURLService.Resolve(c.Request.Context(), alias)
	if err != nil {
		if errors.Is(err, service.ErrAliasNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Short URL not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to resolve short URL",
		})
		return
	}

	clientIP := c.ClientIP()
	userAgent := c.Request.UserAgent()
	referer := c.Request.Header.Get("Referer")
	observedAt := time.Now()

	// Recording failures must never fail the redirect; the click is simply
	// under-counted.
	if err := h.analyticsService.RecordClick(c.Request.Context(), alias, clientIP, userAgent, observedAt); err != nil {
		log.Error().Err(err).Str("alias", alias).Msg("Failed to record click")
	}

	// Best-effort enrichment, detached from the request lifetime
	if h.geoClient != nil {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), geoLookupTimeout)
			defer cancel()

			loc, err := h.geoClient.Lookup(ctx, clientIP)
			if err != nil {
				log.Debug().Err(err).Str("alias", alias).Msg("Geolocation lookup failed")
				return
			}
			log.Debug().
				Str("alias", alias).
				Str("city", loc.City).
				Str("country", loc.Country).
				Msg("Click location resolved")
		}()
	}

	// Send to MQ for async processing
	if h.mqProducer != nil {
		go func() {
			msg := &mq.ClickEventMessage{
				Alias:      alias,
				ClientIP:   clientIP,
				UserAgent:  userAgent,
				Referer:    referer,
				AccessTime: observedAt,
			}
			if err := h.mqProducer.SendClickEvent(context.Background(), msg); err != nil {
				log.Error().Err(err).Str("alias", alias).Msg("Failed to send click event to MQ")
			}
		}()
	}

	// 302 Redirect
	c.Redirect(http.StatusFound, su.LongURL)
}
