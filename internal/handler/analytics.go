package handler

import (
	"errors"
	"net/http"

	"github.com/kirankumar485/urlshortner/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves per-alias analytics and topic/user rollups
type AnalyticsHandler struct {
	analyticsService service.AnalyticsServiceInterface
	rollupService    service.RollupServiceInterface
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(
	analyticsService service.AnalyticsServiceInterface,
	rollupService service.RollupServiceInterface,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		rollupService:    rollupService,
	}
}

// GetAliasAnalytics handles GET /api/analytics/:alias
// @Summary Get analytics for one alias
// @Description Returns total/unique clicks, the daily series and OS/device breakdowns
// @Tags analytics
// @Param alias path string true "Alias"
// @Success 200 {object} model.AliasAnalyticsResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/analytics/{alias} [get]
func (h *AnalyticsHandler) GetAliasAnalytics(c *gin.Context) {
	alias := c.Param("alias")

	analytics, err := h.analyticsService.GetAliasAnalytics(c.Request.Context(), alias)
	if err != nil {
		if errors.Is(err, service.ErrAnalyticsNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "Analytics not found for the alias",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to get analytics",
		})
		return
	}

	c.JSON(http.StatusOK, analytics)
}

// GetTopicAnalytics handles GET /api/analytics/topic/:topic
// @Summary Get rolled-up analytics for a topic
// @Description Merges the analytics of every alias under the topic
// @Tags analytics
// @Param topic path string true "Topic"
// @Success 200 {object} model.TopicAnalyticsResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/analytics/topic/{topic} [get]
func (h *AnalyticsHandler) GetTopicAnalytics(c *gin.Context) {
	topic := c.Param("topic")

	analytics, err := h.rollupService.TopicAnalytics(c.Request.Context(), topic)
	if err != nil {
		if errors.Is(err, service.ErrNoShortURLs) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "No short URLs found for this topic",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to get topic analytics",
		})
		return
	}

	c.JSON(http.StatusOK, analytics)
}

// GetOverallAnalytics handles GET /api/analytics/overall
// @Summary Get rolled-up analytics for the calling user
// @Description Merges the analytics of every alias the user owns
// @Tags analytics
// @Param X-User-ID header string true "User ID"
// @Success 200 {object} model.OverallAnalyticsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/analytics/overall [get]
func (h *AnalyticsHandler) GetOverallAnalytics(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    http.StatusUnauthorized,
			Message: "Missing user identity",
		})
		return
	}

	analytics, err := h.rollupService.OverallAnalytics(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoShortURLs) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: "No short URLs found for the user",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Failed to get overall analytics",
		})
		return
	}

	c.JSON(http.StatusOK, analytics)
}
