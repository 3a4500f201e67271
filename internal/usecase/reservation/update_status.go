package reservation

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/AutoEcolePlanner/lesson-scheduler/internal/domain/reservation"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/httperr"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/models"
)

type UpdateReservationStatus struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewUpdateReservationStatus(
	repo domain.Repository,
	log *zap.Logger,
) *UpdateReservationStatus {
	return &UpdateReservationStatus{
		repo: repo,
		log:  log,
	}
}

func (uc *UpdateReservationStatus) Execute(
	ctx context.Context,
	id uint,
	status string,
) (*models.Reservation, error) {

	if !domain.ValidStatus(status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	res, err := uc.repo.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	if !domain.CanTransition(domain.Status(res.Status), domain.Status(status)) {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	res.Status = status
	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.log.Info("reservation status updated",
		zap.Uint("reservation_id", id),
		zap.String("status", status),
	)

	return res, nil
}
