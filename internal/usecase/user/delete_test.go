package user

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/AutoEcolePlanner/lesson-scheduler/internal/httperr"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/models"
)

type stubDirectory struct {
	users        map[uint]*models.User
	reservations []*models.Reservation

	detachCalls int
}

func (s *stubDirectory) GetUser(_ context.Context, id uint) (*models.User, error) {
	return s.users[id], nil
}

func (s *stubDirectory) DeleteUser(_ context.Context, id uint) (bool, error) {
	if _, ok := s.users[id]; !ok {
		return false, nil
	}
	delete(s.users, id)
	return true, nil
}

func (s *stubDirectory) DetachInstructor(_ context.Context, instructorID uint) (int64, error) {
	s.detachCalls++
	var n int64
	for _, r := range s.reservations {
		if r.InstructorID != nil && *r.InstructorID == instructorID {
			r.InstructorID = nil
			n++
		}
	}
	return n, nil
}

func TestDeletePerson(t *testing.T) {
	ctx := context.Background()

	t.Run("deleting an instructor detaches but keeps their reservations", func(t *testing.T) {
		instructorID := uint(1)
		dir := &stubDirectory{
			users: map[uint]*models.User{
				1: {ID: 1, Role: models.RoleInstructor},
			},
			reservations: []*models.Reservation{
				{ID: 10, InstructorID: &instructorID},
				{ID: 11, InstructorID: &instructorID},
			},
		}

		uc := NewDeletePerson(dir, zap.NewNop())

		if err := uc.Execute(ctx, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(dir.reservations) != 2 {
			t.Fatalf("reservations must survive, got %d", len(dir.reservations))
		}
		for _, r := range dir.reservations {
			if r.InstructorID != nil {
				t.Errorf("reservation %d should have a nil instructor", r.ID)
			}
		}
		if _, ok := dir.users[1]; ok {
			t.Error("instructor should be deleted")
		}
	})

	t.Run("deleting a student skips the detach pass", func(t *testing.T) {
		dir := &stubDirectory{
			users: map[uint]*models.User{
				2: {ID: 2, Role: models.RoleStudent},
			},
		}

		uc := NewDeletePerson(dir, zap.NewNop())

		if err := uc.Execute(ctx, 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dir.detachCalls != 0 {
			t.Errorf("detach should not run for students, ran %d times", dir.detachCalls)
		}
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		dir := &stubDirectory{users: map[uint]*models.User{}}
		uc := NewDeletePerson(dir, zap.NewNop())

		err := uc.Execute(ctx, 42)
		if !httperr.IsBusiness(err, "user_not_found") {
			t.Errorf("expected user_not_found, got %v", err)
		}
	})
}
