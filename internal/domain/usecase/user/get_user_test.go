package user

import (
	"context"
	"testing"

	"github.com/fitcore/workout-planner/internal/domain/entity"
	errs "github.com/fitcore/workout-planner/internal/domain/error"
	usecasemocks "github.com/fitcore/workout-planner/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the stored user", func(t *testing.T) {
		svc, _ := newTestService(t, usecasemocks.NewMockWorkoutPlanUseCase(t))

		created, err := svc.AddUser(ctx, "alice", entity.UserProfile{Name: "John", Weight: 70, Height: 6, Age: 60})
		require.NoError(t, err)

		user, err := svc.GetUser(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, user)
	})

	t.Run("Readable without ownership", func(t *testing.T) {
		svc, _ := newTestService(t, usecasemocks.NewMockWorkoutPlanUseCase(t))

		created, err := svc.AddUser(ctx, "alice", entity.UserProfile{Name: "John"})
		require.NoError(t, err)

		// Reads carry no caller identity at all
		user, err := svc.GetUser(ctx, created.ID)
		require.NoError(t, err)
		assert.NotNil(t, user)
	})

	t.Run("Unknown id", func(t *testing.T) {
		svc, _ := newTestService(t, usecasemocks.NewMockWorkoutPlanUseCase(t))

		user, err := svc.GetUser(ctx, 42)
		assert.Nil(t, user)
		assert.True(t, errs.IsNotFound(err))
	})
}
