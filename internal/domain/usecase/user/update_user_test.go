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

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	profile := entity.UserProfile{Name: "John", Weight: 70, Height: 6, Age: 60}

	setup := func(t *testing.T) (*Service, *entity.User) {
		svc, _ := newTestService(t, usecasemocks.NewMockWorkoutPlanUseCase(t))
		created, err := svc.AddUser(ctx, "alice", profile)
		require.NoError(t, err)
		return svc, created
	}

	t.Run("Applies only the provided fields", func(t *testing.T) {
		svc, created := setup(t)

		newName := "Johnny"
		newAge := uint64(61)
		updated, err := svc.UpdateUser(ctx, "alice", created.ID, entity.UserProfilePatch{Name: &newName, Age: &newAge})
		require.NoError(t, err)

		assert.Equal(t, "Johnny", updated.Name)
		assert.Equal(t, uint64(61), updated.Age)
		assert.Equal(t, uint64(70), updated.Weight)
		assert.Equal(t, uint64(6), updated.Height)
		require.NotNil(t, updated.UpdatedAt)
		assert.Equal(t, uint64(testTime.UnixNano()), *updated.UpdatedAt)
	})

	t.Run("Creation time and owner survive updates", func(t *testing.T) {
		svc, created := setup(t)

		newWeight := uint64(75)
		updated, err := svc.UpdateUser(ctx, "alice", created.ID, entity.UserProfilePatch{Weight: &newWeight})
		require.NoError(t, err)

		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.Equal(t, created.Owner, updated.Owner)
	})

	t.Run("Updated values persist", func(t *testing.T) {
		svc, created := setup(t)

		newName := "Johnny"
		_, err := svc.UpdateUser(ctx, "alice", created.ID, entity.UserProfilePatch{Name: &newName})
		require.NoError(t, err)

		fetched, err := svc.GetUser(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Johnny", fetched.Name)
	})

	t.Run("Unknown id", func(t *testing.T) {
		svc, _ := setup(t)

		user, err := svc.UpdateUser(ctx, "alice", 42, entity.UserProfilePatch{})
		assert.Nil(t, user)
		assert.True(t, errs.IsNotFound(err))
	})

	t.Run("Non-owner is rejected and the record stays unchanged", func(t *testing.T) {
		svc, created := setup(t)

		newName := "Hacked"
		user, err := svc.UpdateUser(ctx, "mallory", created.ID, entity.UserProfilePatch{Name: &newName})
		assert.Nil(t, user)
		assert.True(t, errs.IsForbidden(err))

		fetched, err := svc.GetUser(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "John", fetched.Name)
		assert.Nil(t, fetched.UpdatedAt)
	})
}
