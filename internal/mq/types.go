package mq

import (
	"time"
)

// ClickEventMessage represents one redirect click sent for async processing
type ClickEventMessage struct {
	Alias      string    `json:"alias"`
	ClientIP   string    `json:"client_ip"`
	UserAgent  string    `json:"user_agent"`
	Referer    string    `json:"referer"`
	AccessTime time.Time `json:"access_time"`
}
