package models

import "time"

// Availability is one half-open working window [StartTime, EndTime) on a
// weekday. A person may hold several windows per day. Times are "HH:MM"
// wall-clock labels in the school's reference zone.
type Availability struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index" json:"user_id"`

	Weekday int `gorm:"not null" json:"weekday"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
