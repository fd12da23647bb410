package user

import (
	"context"
	"errors"
	"testing"

	"github.com/fitcore/workout-planner/internal/domain/entity"
	errs "github.com/fitcore/workout-planner/internal/domain/error"
	usecasemocks "github.com/fitcore/workout-planner/mocks/port/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	profile := entity.UserProfile{Name: "John", Weight: 70, Height: 6, Age: 60}

	t.Run("Removes the user and cascades to the plan", func(t *testing.T) {
		mockPlans := usecasemocks.NewMockWorkoutPlanUseCase(t)
		svc, _ := newTestService(t, mockPlans)

		created, err := svc.AddUser(ctx, "alice", profile)
		require.NoError(t, err)

		mockPlans.EXPECT().RemoveForUser(mock.Anything, created.ID).
			Return(&entity.WorkoutPlan{ID: 1, UserID: created.ID}, nil).Once()

		removed, err := svc.DeleteUser(ctx, "alice", created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, removed)

		_, err = svc.GetUser(ctx, created.ID)
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("User without a plan deletes cleanly", func(t *testing.T) {
		mockPlans := usecasemocks.NewMockWorkoutPlanUseCase(t)
		svc, _ := newTestService(t, mockPlans)

		created, err := svc.AddUser(ctx, "alice", profile)
		require.NoError(t, err)

		mockPlans.EXPECT().RemoveForUser(mock.Anything, created.ID).Return(nil, nil).Once()

		removed, err := svc.DeleteUser(ctx, "alice", created.ID)
		require.NoError(t, err)
		assert.NotNil(t, removed)
	})

	t.Run("Cascade failure keeps the user record", func(t *testing.T) {
		mockPlans := usecasemocks.NewMockWorkoutPlanUseCase(t)
		svc, _ := newTestService(t, mockPlans)

		created, err := svc.AddUser(ctx, "alice", profile)
		require.NoError(t, err)

		cascadeErr := errors.New("storage failure")
		mockPlans.EXPECT().RemoveForUser(mock.Anything, created.ID).Return(nil, cascadeErr).Once()

		removed, err := svc.DeleteUser(ctx, "alice", created.ID)
		assert.Nil(t, removed)
		assert.Equal(t, cascadeErr, err)

		fetched, err := svc.GetUser(ctx, created.ID)
		require.NoError(t, err)
		assert.NotNil(t, fetched)
	})

	t.Run("Unknown id", func(t *testing.T) {
		mockPlans := usecasemocks.NewMockWorkoutPlanUseCase(t)
		svc, _ := newTestService(t, mockPlans)

		removed, err := svc.DeleteUser(ctx, "alice", 42)
		assert.Nil(t, removed)
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("Non-owner is rejected before the cascade runs", func(t *testing.T) {
		mockPlans := usecasemocks.NewMockWorkoutPlanUseCase(t)
		svc, _ := newTestService(t, mockPlans)

		created, err := svc.AddUser(ctx, "alice", profile)
		require.NoError(t, err)

		removed, err := svc.DeleteUser(ctx, "mallory", created.ID)
		assert.Nil(t, removed)
		assert.True(t, errs.IsForbidden(err))

		fetched, err := svc.GetUser(ctx, created.ID)
		require.NoError(t, err)
		assert.NotNil(t, fetched)
	})

	t.Run("Deleted ids are never reused", func(t *testing.T) {
		mockPlans := usecasemocks.NewMockWorkoutPlanUseCase(t)
		svc, _ := newTestService(t, mockPlans)

		first, err := svc.AddUser(ctx, "alice", profile)
		require.NoError(t, err)

		mockPlans.EXPECT().RemoveForUser(mock.Anything, first.ID).Return(nil, nil).Once()
		_, err = svc.DeleteUser(ctx, "alice", first.ID)
		require.NoError(t, err)

		second, err := svc.AddUser(ctx, "alice", profile)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), second.ID)
	})
}
