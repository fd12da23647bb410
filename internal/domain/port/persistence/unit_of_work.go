package persistence

import (
	"context"

	"github.com/fitcore/workout-planner/internal/domain/entity"
)

// UnitOfWork coordinates the two entity tables and their id sequences under
// one transaction so read-modify-write flows (counter bump + insert, the
// scan-then-insert uniqueness check, the cascading delete) stay atomic.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// Users returns the user table bound to the transaction in ctx, or to
	// the base store when ctx carries no transaction
	Users(ctx context.Context) Table[entity.User]

	// WorkoutPlans returns the workout-plan table with the same binding rules
	WorkoutPlans(ctx context.Context) Table[entity.WorkoutPlan]

	// UserIDs returns the user id sequence with the same binding rules
	UserIDs(ctx context.Context) Sequence

	// WorkoutPlanIDs returns the plan id sequence with the same binding rules
	WorkoutPlanIDs(ctx context.Context) Sequence
}
