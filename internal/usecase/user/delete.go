package user

import (
	"context"

	"go.uber.org/zap"

	"github.com/AutoEcolePlanner/lesson-scheduler/internal/httperr"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/models"
)

// Directory is the slice of the store this use case needs.
type Directory interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	DeleteUser(ctx context.Context, id uint) (bool, error)

	// DetachInstructor nulls the instructor reference on every
	// reservation held by the instructor and returns how many rows were
	// touched. The reservations themselves survive.
	DetachInstructor(ctx context.Context, instructorID uint) (int64, error)
}

type DeletePerson struct {
	dir Directory
	log *zap.Logger
}

func NewDeletePerson(dir Directory, log *zap.Logger) *DeletePerson {
	return &DeletePerson{
		dir: dir,
		log: log,
	}
}

func (uc *DeletePerson) Execute(ctx context.Context, id uint) error {
	u, err := uc.dir.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return httperr.ErrBusiness("user_not_found")
	}

	if u.Role == models.RoleInstructor {
		detached, err := uc.dir.DetachInstructor(ctx, id)
		if err != nil {
			return err
		}
		if detached > 0 {
			uc.log.Info("instructor detached from reservations",
				zap.Uint("instructor_id", id),
				zap.Int64("reservations", detached),
			)
		}
	}

	deleted, err := uc.dir.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return httperr.ErrBusiness("user_not_found")
	}

	uc.log.Info("user deleted",
		zap.Uint("user_id", id),
		zap.String("role", u.Role),
	)

	return nil
}
