package models

import "time"

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// SlotTime is the start of a fixed one-hour lesson, stored UTC,
	// always at the top of an hour.
	SlotTime time.Time `gorm:"not null;index" json:"slot_time"`

	// Student contact is a snapshot, not a reference: editing a student
	// profile later must not rewrite the booking's history.
	StudentName  string `gorm:"size:200;not null" json:"student_name"`
	StudentEmail string `gorm:"size:100;not null" json:"student_email"`
	StudentPhone string `gorm:"size:20" json:"student_phone"`

	InstructorID *uint `json:"instructor_id"`
	Instructor   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"instructor,omitempty"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	CancelToken string `gorm:"size:36;uniqueIndex" json:"cancel_token"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LessonDuration is implied by the slot contract: every reservation
// occupies exactly one hour starting at SlotTime.
const LessonDuration = time.Hour

func (r *Reservation) EndTime() time.Time {
	return r.SlotTime.Add(LessonDuration)
}
