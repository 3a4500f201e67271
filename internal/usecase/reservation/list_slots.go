package reservation

import (
	"context"
	"time"

	domain "github.com/AutoEcolePlanner/lesson-scheduler/internal/domain/reservation"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/dto"
)

type ListSlots struct {
	repo domain.Repository
}

func NewListSlots(repo domain.Repository) *ListSlots {
	return &ListSlots{repo: repo}
}

// Execute renders the reservation store as calendar events, optionally
// windowed by [from, to).
func (uc *ListSlots) Execute(
	ctx context.Context,
	from *time.Time,
	to *time.Time,
) ([]dto.CalendarEvent, error) {

	reservations, err := uc.repo.ListReservations(ctx, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CalendarEvent, 0, len(reservations))
	for _, r := range reservations {
		ev := dto.CalendarEvent{
			ID:     r.ID,
			Title:  r.StudentName,
			Start:  r.SlotTime,
			End:    r.EndTime(),
			Status: r.Status,
		}
		if r.Instructor != nil {
			ev.InstructorName = r.Instructor.FullName()
		}
		out = append(out, ev)
	}

	return out, nil
}
