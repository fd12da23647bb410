package plan

import (
	"context"
	"testing"

	"github.com/fitcore/workout-planner/internal/domain/entity"
	errs "github.com/fitcore/workout-planner/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserWorkoutPlan(t *testing.T) {
	ctx := context.Background()
	owner := entity.Principal("alice")

	t.Run("Returns the stored plan", func(t *testing.T) {
		svc, uow := newTestService(t)
		seedUser(t, uow, &entity.User{ID: 1, Owner: owner, Age: 60, Height: 6, Weight: 70})

		generated, err := svc.GenerateWorkoutPlan(ctx, owner, 1)
		require.NoError(t, err)

		plan, err := svc.GetUserWorkoutPlan(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, generated, plan)
	})

	t.Run("Readable without ownership", func(t *testing.T) {
		svc, uow := newTestService(t)
		seedUser(t, uow, &entity.User{ID: 1, Owner: owner, Age: 60, Height: 6, Weight: 70})

		_, err := svc.GenerateWorkoutPlan(ctx, owner, 1)
		require.NoError(t, err)

		plan, err := svc.GetUserWorkoutPlan(ctx, 1)
		require.NoError(t, err)
		assert.NotNil(t, plan)
	})

	t.Run("User without a plan", func(t *testing.T) {
		svc, uow := newTestService(t)
		seedUser(t, uow, &entity.User{ID: 1, Owner: owner, Age: 60, Height: 6, Weight: 70})

		plan, err := svc.GetUserWorkoutPlan(ctx, 1)
		assert.Nil(t, plan)
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("Lookup is keyed by user id, not plan id", func(t *testing.T) {
		svc, uow := newTestService(t)
		seedUser(t, uow, &entity.User{ID: 9, Owner: owner, Age: 60, Height: 6, Weight: 70})

		generated, err := svc.GenerateWorkoutPlan(ctx, owner, 9)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), generated.ID)

		plan, err := svc.GetUserWorkoutPlan(ctx, 9)
		require.NoError(t, err)
		assert.Equal(t, uint64(9), plan.UserID)
	})
}
