package plan

import (
	"context"

	"github.com/fitcore/workout-planner/internal/domain/entity"
	errs "github.com/fitcore/workout-planner/internal/domain/error"
)

// UpdateUserWorkoutPlan applies the non-nil patch fields to the plan stored
// under planID. Ownership is checked against the plan's owning user.
func (s *Service) UpdateUserWorkoutPlan(ctx context.Context, caller entity.Principal, planID uint64, patch entity.WorkoutPlanPatch) (*entity.WorkoutPlan, error) {
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
		return nil, errs.NewNotFound(entityPlan, planID, "update_user_workout_plan")
	}

	if err := s.checkOwner(txCtx, caller, workoutPlan, "update_user_workout_plan"); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}

	workoutPlan.ApplyPatch(patch, s.timeProvider)
	if err := plans.Put(txCtx, planID, workoutPlan); err != nil {
		_ = s.uow.Rollback(txCtx)
		s.logger.Error("Failed to store updated workout plan", map[string]any{
			"planId": planID,
			"error":  err.Error(),
		})
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Workout plan updated", map[string]any{
		"planId": planID,
	})
	return workoutPlan, nil
}

// checkOwner verifies the caller owns the plan's user. A plan whose user is
// gone points at a broken cascade, reported as an inconsistency.
func (s *Service) checkOwner(ctx context.Context, caller entity.Principal, workoutPlan *entity.WorkoutPlan, op string) error {
	user, err := s.uow.Users(ctx).Get(ctx, workoutPlan.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return errs.NewInconsistency(entityUser, workoutPlan.UserID, op)
	}
	if !user.IsOwnedBy(caller) {
		s.logger.Warn("Rejected plan mutation by non-owner", map[string]any{
			"planId":    workoutPlan.ID,
			"userId":    workoutPlan.UserID,
			"caller":    string(caller),
			"operation": op,
		})
		return errs.NewForbidden(entityPlan, workoutPlan.ID, op)
	}
	return nil
}
