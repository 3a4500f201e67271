package reservation

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "github.com/AutoEcolePlanner/lesson-scheduler/internal/domain/reservation"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/httperr"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/models"
)

// Notifier is the mail boundary: fire-and-forget, failures never surface
// here.
type Notifier interface {
	ReservationCreated(r *models.Reservation, instructorName string)
	ReservationCancelled(r *models.Reservation, instructorName string)
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo     domain.Repository
	engine   *domain.Engine
	notifier Notifier
	log      *zap.Logger
}

func NewCreateReservation(
	repo domain.Repository,
	engine *domain.Engine,
	notifier Notifier,
	log *zap.Logger,
) *CreateReservation {
	return &CreateReservation{
		repo:     repo,
		engine:   engine,
		notifier: notifier,
		log:      log,
	}
}

func (uc *CreateReservation) Execute(
	ctx context.Context,
	in domain.Candidate,
) (*models.Reservation, error) {

	res, err := uc.engine.Evaluate(ctx, in)
	if err != nil {
		return nil, err
	}

	res.CancelToken = uuid.NewString()

	if err := uc.repo.CreateReservation(ctx, res); err != nil {
		// Two requests can race past the engine's conflict check; the
		// partial unique index turns the loser into the same answer.
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness(domain.CodeSlotAlreadyBooked)
		}
		return nil, err
	}

	instructorName := uc.instructorName(ctx, res.InstructorID)
	uc.notifier.ReservationCreated(res, instructorName)

	uc.log.Info("reservation created",
		zap.Uint("reservation_id", res.ID),
		zap.Time("slot", res.SlotTime),
		zap.String("student", res.StudentEmail),
	)

	return res, nil
}

func (uc *CreateReservation) instructorName(ctx context.Context, id *uint) string {
	if id == nil {
		return ""
	}
	u, err := uc.repo.GetUser(ctx, *id)
	if err != nil || u == nil {
		return ""
	}
	return u.FullName()
}
