package models

import "time"

const (
	MailOutcomeSent   = "sent"
	MailOutcomeFailed = "failed"
)

// EmailLog is the audit trail for dispatched mail. Failed sends are logged
// here and never retried.
type EmailLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SenderID *uint `json:"sender_id"`

	// Recipients is a comma-joined address list.
	Recipients string `gorm:"type:text" json:"recipients"`

	Subject string `gorm:"size:255" json:"subject"`
	Body    string `gorm:"type:text" json:"body"`

	Outcome string `gorm:"size:20;not null" json:"outcome"`
	Error   string `gorm:"size:255" json:"error,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
