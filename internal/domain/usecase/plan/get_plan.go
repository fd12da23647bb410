package plan

import (
	"context"

	"github.com/fitcore/workout-planner/internal/domain/entity"
	errs "github.com/fitcore/workout-planner/internal/domain/error"
)

// GetUserWorkoutPlan returns the plan referencing userID, located by table
// scan. This is a read-only query; no ownership check applies.
func (s *Service) GetUserWorkoutPlan(ctx context.Context, userID uint64) (*entity.WorkoutPlan, error) {
	found, err := findByUser(ctx, s.uow.WorkoutPlans(ctx), userID)
	if err != nil {
		s.logger.Error("Failed to scan workout plans", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}
	if found == nil {
		return nil, errs.NewNotFound(entityPlan, userID, "get_user_workout_plan")
	}
	return found, nil
}
