package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/kirankumar485/urlshortner/internal/mocks"
	"github.com/kirankumar485/urlshortner/internal/model"
	"github.com/kirankumar485/urlshortner/internal/service"
)

func newTestAnalyticsRouter(h *AnalyticsHandler) *gin.Engine {
	router := gin.New()
	api := router.Group("/api/analytics")
	{
		api.GET("/overall", h.GetOverallAnalytics)
		api.GET("/topic/:topic", h.GetTopicAnalytics)
		api.GET("/:alias", h.GetAliasAnalytics)
	}
	return router
}

func TestAnalyticsHandler_GetAliasAnalytics(t *testing.T) {
	t.Run("returns the alias analytics", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAnalytics := mocks.NewMockAnalyticsServiceInterface(ctrl)
		mockRollup := mocks.NewMockRollupServiceInterface(ctrl)

		mockAnalytics.EXPECT().GetAliasAnalytics(gomock.Any(), "abcd1234").Return(&model.AliasAnalyticsResponse{
			TotalClicks:  7,
			UniqueClicks: 3,
			ClicksByDate: []model.DailyClicks{
				{Date: "2025-03-14", ClickCount: 3},
				{Date: "2025-03-15", ClickCount: 4},
			},
			OSType: []model.OSStat{
				{OSName: "Windows", UniqueClicks: 7, UniqueUsers: 7},
			},
			DeviceType: []model.DeviceStat{
				{DeviceName: "Desktop", UniqueClicks: 7, UniqueUsers: 7},
			},
		}, nil)

		router := newTestAnalyticsRouter(NewAnalyticsHandler(mockAnalytics, mockRollup))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/analytics/abcd1234", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"totalClicks":7`)
		assert.Contains(t, w.Body.String(), `"uniqueClicks":3`)
		assert.Contains(t, w.Body.String(), `"2025-03-14"`)
		assert.Contains(t, w.Body.String(), `"osName":"Windows"`)
	})

	t.Run("alias never clicked returns 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAnalytics := mocks.NewMockAnalyticsServiceInterface(ctrl)
		mockRollup := mocks.NewMockRollupServiceInterface(ctrl)

		mockAnalytics.EXPECT().GetAliasAnalytics(gomock.Any(), "nosuch01").Return(nil, service.ErrAnalyticsNotFound)

		router := newTestAnalyticsRouter(NewAnalyticsHandler(mockAnalytics, mockRollup))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/analytics/nosuch01", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("store failure returns 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAnalytics := mocks.NewMockAnalyticsServiceInterface(ctrl)
		mockRollup := mocks.NewMockRollupServiceInterface(ctrl)

		mockAnalytics.EXPECT().GetAliasAnalytics(gomock.Any(), "abcd1234").Return(nil, errors.New("redis down"))

		router := newTestAnalyticsRouter(NewAnalyticsHandler(mockAnalytics, mockRollup))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/analytics/abcd1234", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAnalyticsHandler_GetTopicAnalytics(t *testing.T) {
	t.Run("returns the topic rollup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAnalytics := mocks.NewMockAnalyticsServiceInterface(ctrl)
		mockRollup := mocks.NewMockRollupServiceInterface(ctrl)

		mockRollup.EXPECT().TopicAnalytics(gomock.Any(), "promo").Return(&model.TopicAnalyticsResponse{
			TotalClicks:  8,
			UniqueClicks: 6,
			URLs: []model.URLStats{
				{ShortURL: "https://s.example.com/shorten/aaaa1111", TotalClicks: 3, UniqueClicks: 2},
				{ShortURL: "https://s.example.com/shorten/bbbb2222", TotalClicks: 5, UniqueClicks: 4},
			},
		}, nil)

		router := newTestAnalyticsRouter(NewAnalyticsHandler(mockAnalytics, mockRollup))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/analytics/topic/promo", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"totalClicks":8`)
		assert.Contains(t, w.Body.String(), "aaaa1111")
		assert.Contains(t, w.Body.String(), "bbbb2222")
	})

	t.Run("empty topic returns 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAnalytics := mocks.NewMockAnalyticsServiceInterface(ctrl)
		mockRollup := mocks.NewMockRollupServiceInterface(ctrl)

		mockRollup.EXPECT().TopicAnalytics(gomock.Any(), "ghost").Return(nil, service.ErrNoShortURLs)

		router := newTestAnalyticsRouter(NewAnalyticsHandler(mockAnalytics, mockRollup))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/analytics/topic/ghost", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAnalyticsHandler_GetOverallAnalytics(t *testing.T) {
	t.Run("returns the user rollup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAnalytics := mocks.NewMockAnalyticsServiceInterface(ctrl)
		mockRollup := mocks.NewMockRollupServiceInterface(ctrl)

		mockRollup.EXPECT().OverallAnalytics(gomock.Any(), "user-1").Return(&model.OverallAnalyticsResponse{
			TotalURLs:    3,
			TotalClicks:  7,
			UniqueClicks: 6,
		}, nil)

		router := newTestAnalyticsRouter(NewAnalyticsHandler(mockAnalytics, mockRollup))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/analytics/overall", nil)
		req.Header.Set("X-User-ID", "user-1")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"totalUrls":3`)
	})

	t.Run("missing user identity returns 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAnalytics := mocks.NewMockAnalyticsServiceInterface(ctrl)
		mockRollup := mocks.NewMockRollupServiceInterface(ctrl)

		router := newTestAnalyticsRouter(NewAnalyticsHandler(mockAnalytics, mockRollup))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/analytics/overall", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("user without short URLs returns 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAnalytics := mocks.NewMockAnalyticsServiceInterface(ctrl)
		mockRollup := mocks.NewMockRollupServiceInterface(ctrl)

		mockRollup.EXPECT().OverallAnalytics(gomock.Any(), "user-2").Return(nil, service.ErrNoShortURLs)

		router := newTestAnalyticsRouter(NewAnalyticsHandler(mockAnalytics, mockRollup))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/analytics/overall", nil)
		req.Header.Set("X-User-ID", "user-2")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
