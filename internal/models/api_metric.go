package models

import "time"

// APIMetric is one row per handled HTTP request, written by the
// metrics middleware.
type APIMetric struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	RequestID  string    `gorm:"type:varchar(36)" json:"request_id"`
	Endpoint   string    `gorm:"type:varchar(255)" json:"endpoint"`
	Method     string    `gorm:"type:varchar(10)" json:"method"`
	StatusCode int       `json:"status_code"`
	DurationMs int64     `json:"duration_ms"`
	Timestamp  time.Time `json:"timestamp"`
}
