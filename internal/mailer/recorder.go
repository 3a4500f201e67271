package mailer

import (
	"gorm.io/gorm"

	"github.com/AutoEcolePlanner/lesson-scheduler/internal/models"
)

// Recorder persists the delivery audit trail.
type Recorder interface {
	Record(entry *models.EmailLog) error
}

type GormRecorder struct {
	db *gorm.DB
}

func NewGormRecorder(db *gorm.DB) *GormRecorder {
	return &GormRecorder{db: db}
}

func (r *GormRecorder) Record(entry *models.EmailLog) error {
	return r.db.Create(entry).Error
}

var _ Recorder = (*GormRecorder)(nil)
