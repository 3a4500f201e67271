package dto

import "time"

// CalendarEvent is the view the booking calendar consumes: one event per
// reservation, end pinned one hour after start.
type CalendarEvent struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	Status         string    `json:"status"`
	InstructorName string    `json:"instructor_name,omitempty"`
}
