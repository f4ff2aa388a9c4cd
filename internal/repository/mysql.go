package repository

import (
	"context"
	"time"

	"github.com/kirankumar485/urlshortner/internal/config"
	"github.com/kirankumar485/urlshortner/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MySQLRepository handles MySQL operations: the alias registry and the raw
// click log fed by the MQ consumer.
type MySQLRepository struct {
	db *gorm.DB
}

// NewMySQLRepository creates a new MySQL repository
func NewMySQLRepository(cfg *config.MySQLConfig) *MySQLRepository {
	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MySQL")
	}

	// Auto migrate tables
	if err := db.AutoMigrate(&model.ShortURL{}, &model.ClickLog{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	log.Info().Msg("MySQL connected successfully")

	return &MySQLRepository{db: db}
}

// GetDB returns the GORM DB instance
func (r *MySQLRepository) GetDB() *gorm.DB {
	return r.db
}

// SaveShortURL saves a short URL to MySQL
func (r *MySQLRepository) SaveShortURL(ctx context.Context, su *model.ShortURL) error {
	return r.db.WithContext(ctx).Create(su).Error
}

// GetByAlias retrieves a short URL by its alias
func (r *MySQLRepository) GetByAlias(ctx context.Context, alias string) (*model.ShortURL, error) {
	var su model.ShortURL
	err := r.db.WithContext(ctx).
		Where("alias = ?", alias).
		First(&su).Error
	if err != nil {
		return nil, err
	}
	return &su, nil
}

// GetByTopic retrieves all short URLs under a topic
func (r *MySQLRepository) GetByTopic(ctx context.Context, topic string) ([]model.ShortURL, error) {
	var urls []model.ShortURL
	err := r.db.WithContext(ctx).
		Where("topic = ?", topic).
		Find(&urls).Error
	return urls, err
}

// GetByUser retrieves all short URLs owned by a user
func (r *MySQLRepository) GetByUser(ctx context.Context, userID string) ([]model.ShortURL, error) {
	var urls []model.ShortURL
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&urls).Error
	return urls, err
}

// ExistsByAlias checks if an alias is already registered
func (r *MySQLRepository) ExistsByAlias(ctx context.Context, alias string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ShortURL{}).
		Where("alias = ?", alias).
		Count(&count).Error
	return count > 0, err
}

// SaveClickLog saves a raw click event to MySQL
func (r *MySQLRepository) SaveClickLog(ctx context.Context, clickLog *model.ClickLog) error {
	return r.db.WithContext(ctx).Create(clickLog).Error
}

// GetClickLogs retrieves click logs for an alias
func (r *MySQLRepository) GetClickLogs(ctx context.Context, alias string, limit int) ([]model.ClickLog, error) {
	var logs []model.ClickLog
	query := r.db.WithContext(ctx).
		Where("alias = ?", alias).
		Order("access_time DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&logs).Error
	return logs, err
}

// Close closes the database connection
func (r *MySQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
