package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kirankumar485/urlshortner/internal/config"
	"github.com/kirankumar485/urlshortner/internal/geo"
	"github.com/kirankumar485/urlshortner/internal/handler"
	"github.com/kirankumar485/urlshortner/internal/model"
	"github.com/kirankumar485/urlshortner/internal/mq"
	"github.com/kirankumar485/urlshortner/internal/repository"
	"github.com/kirankumar485/urlshortner/internal/service"
	"github.com/kirankumar485/urlshortner/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title URL Shortener Service API
// @version 1.0
// @description A URL shortener with per-alias, topic and user click analytics
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.example.com/support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode)

	// Initialize repositories
	redisRepo := repository.NewRedisRepository(&cfg.Database.Redis)
	defer redisRepo.Close()

	mysqlRepo := repository.NewMySQLRepository(&cfg.Database.MySQL)
	defer mysqlRepo.Close()

	// Initialize services
	bloomSvc := service.NewBloomService(redisRepo.GetClient(), &cfg.Bloom)
	shortURLSvc := service.NewShortURLService(mysqlRepo, redisRepo, bloomSvc, cfg.Server.Domain, &cfg.Cache)
	analyticsSvc := service.NewAnalyticsService(redisRepo)
	rollupSvc := service.NewRollupService(mysqlRepo, redisRepo)

	// Initialize geolocation client (optional)
	var geoClient geo.ClientInterface
	if cfg.Geo.Enabled {
		geoClient = geo.NewClient(&cfg.Geo)
	}

	// Initialize MQ (optional, can be nil)
	var mqProducer *mq.Producer
	if cfg.RocketMQ.NameServer != "" {
		mqProducer, err = mq.NewProducer(&cfg.RocketMQ)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ producer, running without MQ")
		}
	}

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// Middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(corsMiddleware())

	// Short URL creation
	shortenHandler := handler.NewShortenHandler(shortURLSvc)
	router.POST("/api/shorten", shortenHandler.Shorten)

	// Redirect handler
	redirectHandler := handler.NewRedirectHandler(shortURLSvc, analyticsSvc, geoClient, mqProducer)
	router.GET("/shorten/:alias", redirectHandler.Redirect)

	// Analytics routes
	analyticsHandler := handler.NewAnalyticsHandler(analyticsSvc, rollupSvc)
	analytics := router.Group("/api/analytics")
	{
		analytics.GET("/overall", analyticsHandler.GetOverallAnalytics)
		analytics.GET("/topic/:topic", analyticsHandler.GetTopicAnalytics)
		analytics.GET("/:alias", analyticsHandler.GetAliasAnalytics)
	}

	// Swagger documentation
	setupSwagger(router)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Start MQ consumer if configured
	var mqConsumer *mq.Consumer
	if cfg.RocketMQ.NameServer != "" {
		// Create consumer with handler that saves raw clicks to MySQL
		mqConsumer, err = mq.NewConsumer(&cfg.RocketMQ, func(ctx context.Context, msg *mq.ClickEventMessage) error {
			clickLog := &model.ClickLog{
				Alias:      msg.Alias,
				ClientIP:   msg.ClientIP,
				UserAgent:  msg.UserAgent,
				Referer:    msg.Referer,
				AccessTime: msg.AccessTime,
			}
			return mysqlRepo.SaveClickLog(ctx, clickLog)
		})

		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ consumer")
		} else {
			go func() {
				if err := mqConsumer.Subscribe(); err != nil {
					log.Error().Err(err).Msg("Failed to subscribe to RocketMQ")
				}
			}()
			defer mqConsumer.Close()
		}
	}

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Close producer
	if mqProducer != nil {
		mqProducer.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures the logger
func setupLogger(mode string) {
	if mode == "release" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Use console writer for pretty output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, X-User-ID, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// setupSwagger sets up Swagger UI
func setupSwagger(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
