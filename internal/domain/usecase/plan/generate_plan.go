package plan

import (
	"context"
	"fmt"

	"github.com/fitcore/workout-planner/internal/domain/entity"
	errs "github.com/fitcore/workout-planner/internal/domain/error"
)

// GenerateWorkoutPlan derives and stores a workout plan for the user. The
// whole flow runs in one transaction so the scan-based uniqueness check and
// the insert cannot interleave with a concurrent generation for the same
// user.
func (s *Service) GenerateWorkoutPlan(ctx context.Context, caller entity.Principal, userID uint64) (*entity.WorkoutPlan, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.uow.Users(txCtx).Get(txCtx, userID)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}
	if user == nil {
		_ = s.uow.Rollback(txCtx)
		return nil, errs.NewNotFound(entityUser, userID, "generate_workout_plan")
	}
	if !user.IsOwnedBy(caller) {
		_ = s.uow.Rollback(txCtx)
		s.logger.Warn("Rejected plan generation by non-owner", map[string]any{
			"userId": userID,
			"caller": string(caller),
		})
		return nil, errs.NewForbidden(entityUser, userID, "generate_workout_plan")
	}

	plans := s.uow.WorkoutPlans(txCtx)
	existing, err := findByUser(txCtx, plans, userID)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}
	if existing != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, errs.NewExists(entityPlan, existing.ID, "generate_workout_plan")
	}

	id, err := s.uow.WorkoutPlanIDs(txCtx).Next(txCtx)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		s.logger.Error("Failed to allocate workout plan id", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", errs.ErrCounterUpdate, err)
	}

	memo := newDerivationMemo(s.deriver, plans)
	intensity, err := memo.intensityFor(txCtx, user)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	workoutPlan := entity.NewWorkoutPlan(id, userID, intensity, s.timeProvider)
	if err := plans.Put(txCtx, id, workoutPlan); err != nil {
		_ = s.uow.Rollback(txCtx)
		s.logger.Error("Failed to store workout plan", map[string]any{
			"planId": id,
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Workout plan generated", map[string]any{
		"planId":      id,
		"userId":      userID,
		"pushUps":     intensity.PushUps,
		"sitUps":      intensity.SitUps,
		"runningTime": intensity.RunningTime,
	})
	return workoutPlan, nil
}
