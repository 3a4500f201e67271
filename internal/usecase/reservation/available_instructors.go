package reservation

import (
	"context"

	domain "github.com/AutoEcolePlanner/lesson-scheduler/internal/domain/reservation"
	"github.com/AutoEcolePlanner/lesson-scheduler/internal/models"
)

type AvailableInstructors struct {
	engine *domain.Engine
}

func NewAvailableInstructors(engine *domain.Engine) *AvailableInstructors {
	return &AvailableInstructors{engine: engine}
}

func (uc *AvailableInstructors) Execute(
	ctx context.Context,
	slotRaw string,
) ([]models.User, error) {

	slot, err := uc.engine.ParseSlot(slotRaw)
	if err != nil {
		return nil, err
	}

	return uc.engine.AvailableInstructors(ctx, slot)
}
