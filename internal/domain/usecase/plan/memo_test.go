package plan

import (
	"context"
	"testing"

	"github.com/fitcore/workout-planner/internal/domain/entity"
	"github.com/fitcore/workout-planner/internal/infrastructure/adapter/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingDeriver wraps the real deriver and counts invocations
type countingDeriver struct {
	inner Deriver
	calls int
}

func (d *countingDeriver) Derive(attrs entity.Attributes) entity.Intensity {
	d.calls++
	return d.inner.Derive(attrs)
}

func TestDerivationMemo(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: 1, Age: 60, Height: 6, Weight: 70}

	t.Run("Stored plan wins over derivation", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		uow := kvstore.NewMemoryUnitOfWork(store)
		plans := uow.WorkoutPlans(ctx)

		stored := &entity.WorkoutPlan{ID: 5, UserID: 1, PushUps: 99, SitUps: 88, RunningTime: 77}
		require.NoError(t, plans.Put(ctx, stored.ID, stored))

		deriver := &countingDeriver{inner: NewTierDeriver()}
		memo := newDerivationMemo(deriver, plans)

		intensity, err := memo.intensityFor(ctx, user)
		require.NoError(t, err)

		assert.Equal(t, entity.Intensity{PushUps: 99, SitUps: 88, RunningTime: 77}, intensity)
		assert.Equal(t, 0, deriver.calls)
	})

	t.Run("Derives at most once per call", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		uow := kvstore.NewMemoryUnitOfWork(store)
		plans := uow.WorkoutPlans(ctx)

		deriver := &countingDeriver{inner: NewTierDeriver()}
		memo := newDerivationMemo(deriver, plans)

		first, err := memo.intensityFor(ctx, user)
		require.NoError(t, err)
		second, err := memo.intensityFor(ctx, user)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, deriver.calls)
	})

	t.Run("Memoized value survives later storage changes", func(t *testing.T) {
		store := kvstore.NewMemoryStore()
		uow := kvstore.NewMemoryUnitOfWork(store)
		plans := uow.WorkoutPlans(ctx)

		deriver := &countingDeriver{inner: NewTierDeriver()}
		memo := newDerivationMemo(deriver, plans)

		first, err := memo.intensityFor(ctx, user)
		require.NoError(t, err)

		stored := &entity.WorkoutPlan{ID: 5, UserID: 1, PushUps: 1, SitUps: 1, RunningTime: 1}
		require.NoError(t, plans.Put(ctx, stored.ID, stored))

		second, err := memo.intensityFor(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
