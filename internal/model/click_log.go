package model

import (
	"time"
)

// ClickLog represents a raw click event persisted for auditing
type ClickLog struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Alias      string    `json:"alias" gorm:"type:varchar(64);index;not null"`
	ClientIP   string    `json:"client_ip" gorm:"type:varchar(64)"`
	UserAgent  string    `json:"user_agent" gorm:"type:varchar(512)"`
	Referer    string    `json:"referer" gorm:"type:varchar(512)"`
	AccessTime time.Time `json:"access_time" gorm:"autoCreateTime"`
}

// TableName returns the table name for ClickLog
func (ClickLog) TableName() string {
	return "click_logs"
}
