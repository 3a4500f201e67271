package reservation

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/AutoEcolePlanner/lesson-scheduler/internal/domain/reservation"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/httperr"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/models"
)

type CancelReservation struct {
	repo     domain.Repository
	notifier Notifier
	log      *zap.Logger
}

func NewCancelReservation(
	repo domain.Repository,
	notifier Notifier,
	log *zap.Logger,
) *CancelReservation {
	return &CancelReservation{
		repo:     repo,
		notifier: notifier,
		log:      log,
	}
}

// Execute hard-deletes the reservation. Deleting the same id twice is a
// not-found the second time, not a repeated success.
func (uc *CancelReservation) Execute(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	if err := domain.CanCancel(domain.Status(res.Status)); err != nil {
		return nil, err
	}

	deleted, err := uc.repo.DeleteReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	instructorName := ""
	if res.InstructorID != nil {
		if u, err := uc.repo.GetUser(ctx, *res.InstructorID); err == nil && u != nil {
			instructorName = u.FullName()
		}
	}
	uc.notifier.ReservationCancelled(res, instructorName)

	uc.log.Info("reservation cancelled",
		zap.Uint("reservation_id", id),
		zap.Time("slot", res.SlotTime),
	)

	return res, nil
}
