package reservation

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	domain "github.com/AutoEcolePlanner/lesson-scheduler/internal/domain/reservation"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/httperr"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/models"
)

func TestUpdateReservationStatus(t *testing.T) {
	ctx := context.Background()

	seed := func(status string) (*stubRepo, *UpdateReservationStatus) {
		repo := newStubRepo()
		repo.reservations[10] = &models.Reservation{
			ID:       10,
			SlotTime: time.Date(2026, 9, 7, 7, 0, 0, 0, time.UTC),
			Status:   status,
		}
		return repo, NewUpdateReservationStatus(repo, zap.NewNop())
	}

	t.Run("confirms a pending reservation", func(t *testing.T) {
		repo, uc := seed(string(domain.StatusPending))

		res, err := uc.Execute(ctx, 10, "confirmed")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != "confirmed" {
			t.Errorf("expected confirmed, got %q", res.Status)
		}
		if repo.reservations[10].Status != "confirmed" {
			t.Error("status should be persisted")
		}
	})

	t.Run("rejects unknown status values", func(t *testing.T) {
		_, uc := seed(string(domain.StatusPending))
		_, err := uc.Execute(ctx, 10, "refused")
		if !httperr.IsBusiness(err, "invalid_status") {
			t.Errorf("expected invalid_status, got %v", err)
		}
	})

	t.Run("rejects impossible transitions", func(t *testing.T) {
		_, uc := seed(string(domain.StatusCancelled))
		_, err := uc.Execute(ctx, 10, "confirmed")
		if !httperr.IsBusiness(err, "invalid_state") {
			t.Errorf("expected invalid_state, got %v", err)
		}
	})

	t.Run("unknown reservation is not found", func(t *testing.T) {
		_, uc := seed(string(domain.StatusPending))
		_, err := uc.Execute(ctx, 999, "confirmed")
		if !httperr.IsBusiness(err, "reservation_not_found") {
			t.Errorf("expected reservation_not_found, got %v", err)
		}
	})
}
