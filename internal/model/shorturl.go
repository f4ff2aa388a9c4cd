package model

import (
	"time"
)

// ShortURL represents a shortened URL owned by a user
type ShortURL struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Alias     string    `json:"alias" gorm:"type:varchar(64);uniqueIndex;not null"`
	LongURL   string    `json:"long_url" gorm:"type:varchar(2048);not null"`
	ShortURL  string    `json:"short_url" gorm:"type:varchar(256);not null"`
	Topic     string    `json:"topic" gorm:"type:varchar(128);index"`
	UserID    string    `json:"user_id" gorm:"type:varchar(128);index;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName returns the table name for ShortURL
func (ShortURL) TableName() string {
	return "short_urls"
}

// ShortenRequest represents the request to create a short URL
type ShortenRequest struct {
	LongURL     string `json:"longUrl" binding:"required"`
	CustomAlias string `json:"customAlias"`
	Topic       string `json:"topic"`
}

// ShortenResponse represents the response of short URL creation
type ShortenResponse struct {
	ShortURL  string    `json:"shortUrl"`
	Alias     string    `json:"alias"`
	CreatedAt time.Time `json:"createdAt"`
}
