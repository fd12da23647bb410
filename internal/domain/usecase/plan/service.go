package plan

import (
	"context"

	"github.com/fitcore/workout-planner/internal/domain/entity"
	coreport "github.com/fitcore/workout-planner/internal/domain/port/core"
	"github.com/fitcore/workout-planner/internal/domain/port/persistence"
)

// Entity names used in structured errors produced by this service
const (
	entityPlan = "workout_plan"
	entityUser = "user"
)

// Service handles workout-plan business logic. Ownership checks read the
// user table directly through the shared unit of work; user deletion calls
// back in through RemoveForUser for the cascade.
type Service struct {
	uow          persistence.UnitOfWork
	deriver      Deriver
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new workout-plan service
func NewService(
	uow persistence.UnitOfWork,
	deriver Deriver,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		deriver:      deriver,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// findByUser returns the first plan referencing userID. The table holds at
// most one match; "first in ascending key order" makes the result stable for
// a fixed table state.
func findByUser(ctx context.Context, plans persistence.Table[entity.WorkoutPlan], userID uint64) (*entity.WorkoutPlan, error) {
	var found *entity.WorkoutPlan
	err := plans.Scan(ctx, func(_ uint64, p *entity.WorkoutPlan) (bool, error) {
		if p.UserID == userID {
			found = p
			return false, nil
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}
