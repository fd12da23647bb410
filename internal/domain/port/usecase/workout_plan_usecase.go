package usecase

import (
	"context"

	"github.com/fitcore/workout-planner/internal/domain/entity"
)

// WorkoutPlanUseCase defines the operations over workout-plan records.
// Each user moves through a NoPlan -> PlanExists state machine; generation
// is the only transition in.
type WorkoutPlanUseCase interface {
	// GenerateWorkoutPlan derives and stores a plan for the user, at most
	// once per user.
	//
	// Possible errors:
	// - ErrNotFound: the referenced user is absent
	// - ErrForbidden: caller is not the user's owner
	// - ErrExists: a plan for this user already exists
	GenerateWorkoutPlan(ctx context.Context, caller entity.Principal, userID uint64) (*entity.WorkoutPlan, error)

	// GetUserWorkoutPlan returns the plan referencing userID
	//
	// Possible errors:
	// - ErrNotFound: the user has no plan
	GetUserWorkoutPlan(ctx context.Context, userID uint64) (*entity.WorkoutPlan, error)

	// UpdateUserWorkoutPlan applies the non-nil patch fields to the plan
	//
	// Possible errors:
	// - ErrNotFound: no plan is stored under planID
	// - ErrForbidden: caller does not own the plan's user
	UpdateUserWorkoutPlan(ctx context.Context, caller entity.Principal, planID uint64, patch entity.WorkoutPlanPatch) (*entity.WorkoutPlan, error)

	// DeleteUserWorkoutPlan removes the plan stored under planID
	//
	// Possible errors:
	// - ErrNotFound: no plan is stored under planID
	// - ErrForbidden: caller does not own the plan's user
	// - ErrInconsistency: the plan vanished between load and remove
	DeleteUserWorkoutPlan(ctx context.Context, caller entity.Principal, planID uint64) (*entity.WorkoutPlan, error)

	// RemoveForUser removes the plan referencing userID, if any, returning
	// (nil, nil) when the user has no plan. It runs on the caller's
	// context so a surrounding transaction covers it; user deletion uses
	// it for the cascade after its own ownership check.
	//
	// Possible errors:
	// - ErrInconsistency: the plan vanished between scan and remove
	RemoveForUser(ctx context.Context, userID uint64) (*entity.WorkoutPlan, error)
}
