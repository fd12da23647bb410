package plan

import (
	"context"

	"github.com/fitcore/workout-planner/internal/domain/entity"
	errs "github.com/fitcore/workout-planner/internal/domain/error"
)

// DeleteUserWorkoutPlan removes the plan stored under planID after the
// ownership check. A remove that comes back empty after the plan was just
// loaded is reported as an inconsistency, distinct from NotFound.
func (s *Service) DeleteUserWorkoutPlan(ctx context.Context, caller entity.Principal, planID uint64) (*entity.WorkoutPlan, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	plans := s.uow.WorkoutPlans(txCtx)
	workoutPlan, err := plans.Get(txCtx, planID)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}
	if workoutPlan == nil {
		_ = s.uow.Rollback(txCtx)
		return nil, errs.NewNotFound(entityPlan, planID, "delete_user_workout_plan")
	}

	if err := s.checkOwner(txCtx, caller, workoutPlan, "delete_user_workout_plan"); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	removed, err := plans.Remove(txCtx, planID)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}
	if removed == nil {
		_ = s.uow.Rollback(txCtx)
		return nil, errs.NewInconsistency(entityPlan, planID, "delete_user_workout_plan")
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Workout plan deleted", map[string]any{
		"planId": planID,
		"userId": removed.UserID,
	})
	return removed, nil
}

// RemoveForUser removes the plan referencing userID as part of a cascading
// user delete. It runs on the caller's context, so the surrounding
// transaction covers it, and the caller has already verified ownership.
// (nil, nil) means the user had no plan.
func (s *Service) RemoveForUser(ctx context.Context, userID uint64) (*entity.WorkoutPlan, error) {
	plans := s.uow.WorkoutPlans(ctx)
	found, err := findByUser(ctx, plans, userID)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, nil
	}

	removed, err := plans.Remove(ctx, found.ID)
	if err != nil {
		return nil, err
	}
	if removed == nil {
		return nil, errs.NewInconsistency(entityPlan, found.ID, "delete_user")
	}
	return removed, nil
}
