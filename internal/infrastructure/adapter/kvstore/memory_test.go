package kvstore

import (
	"context"
	"testing"

	"github.com/fitcore/workout-planner/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTable(t *testing.T) {
	ctx := context.Background()

	t.Run("Get on an empty table yields nil, nil", func(t *testing.T) {
		uow := NewMemoryUnitOfWork(NewMemoryStore())

		user, err := uow.Users(ctx).Get(ctx, 1)
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("Put then Get round trip", func(t *testing.T) {
		uow := NewMemoryUnitOfWork(NewMemoryStore())
		users := uow.Users(ctx)

		stored := &entity.User{ID: 1, Owner: "alice", Name: "John"}
		require.NoError(t, users.Put(ctx, 1, stored))

		fetched, err := users.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, stored, fetched)
	})

	t.Run("Put overwrites an existing record", func(t *testing.T) {
		uow := NewMemoryUnitOfWork(NewMemoryStore())
		users := uow.Users(ctx)

		require.NoError(t, users.Put(ctx, 1, &entity.User{ID: 1, Name: "John"}))
		require.NoError(t, users.Put(ctx, 1, &entity.User{ID: 1, Name: "Johnny"}))

		fetched, err := users.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Johnny", fetched.Name)
	})

	t.Run("Remove returns the record and deletes it", func(t *testing.T) {
		uow := NewMemoryUnitOfWork(NewMemoryStore())
		users := uow.Users(ctx)

		stored := &entity.User{ID: 1, Name: "John"}
		require.NoError(t, users.Put(ctx, 1, stored))

		removed, err := users.Remove(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, stored, removed)

		fetched, err := users.Get(ctx, 1)
		assert.NoError(t, err)
		assert.Nil(t, fetched)
	})

	t.Run("Remove of an absent record yields nil, nil", func(t *testing.T) {
		uow := NewMemoryUnitOfWork(NewMemoryStore())

		removed, err := uow.Users(ctx).Remove(ctx, 1)
		assert.NoError(t, err)
		assert.Nil(t, removed)
	})

	t.Run("Scan visits records in ascending key order", func(t *testing.T) {
		uow := NewMemoryUnitOfWork(NewMemoryStore())
		users := uow.Users(ctx)

		for _, id := range []uint64{5, 1, 3} {
			require.NoError(t, users.Put(ctx, id, &entity.User{ID: id}))
		}

		var visited []uint64
		err := users.Scan(ctx, func(id uint64, record *entity.User) (bool, error) {
			visited = append(visited, id)
			return true, nil
		})
		require.NoError(t, err)
		assert.Equal(t, []uint64{1, 3, 5}, visited)
	})

	t.Run("Scan stops when the callback returns false", func(t *testing.T) {
		uow := NewMemoryUnitOfWork(NewMemoryStore())
		users := uow.Users(ctx)

		for id := uint64(1); id <= 5; id++ {
			require.NoError(t, users.Put(ctx, id, &entity.User{ID: id}))
		}

		var visited []uint64
		err := users.Scan(ctx, func(id uint64, record *entity.User) (bool, error) {
			visited = append(visited, id)
			return id < 3, nil
		})
		require.NoError(t, err)
		assert.Equal(t, []uint64{1, 2, 3}, visited)
	})
}

func TestMemorySequence(t *testing.T) {
	ctx := context.Background()

	t.Run("Starts at 1 and increments", func(t *testing.T) {
		uow := NewMemoryUnitOfWork(NewMemoryStore())
		seq := uow.UserIDs(ctx)

		for want := uint64(1); want <= 3; want++ {
			got, err := seq.Next(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("User and plan sequences are independent", func(t *testing.T) {
		uow := NewMemoryUnitOfWork(NewMemoryStore())

		userID, err := uow.UserIDs(ctx).Next(ctx)
		require.NoError(t, err)
		planID, err := uow.WorkoutPlanIDs(ctx).Next(ctx)
		require.NoError(t, err)

		assert.Equal(t, uint64(1), userID)
		assert.Equal(t, uint64(1), planID)
	})
}

func TestMemoryUnitOfWork(t *testing.T) {
	ctx := context.Background()

	t.Run("Commit keeps changes", func(t *testing.T) {
		uow := NewMemoryUnitOfWork(NewMemoryStore())

		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, uow.Users(txCtx).Put(txCtx, 1, &entity.User{ID: 1, Name: "John"}))
		require.NoError(t, uow.Commit(txCtx))

		fetched, err := uow.Users(ctx).Get(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Equal(t, "John", fetched.Name)
	})

	t.Run("Rollback restores records and counters", func(t *testing.T) {
		uow := NewMemoryUnitOfWork(NewMemoryStore())
		require.NoError(t, uow.Users(ctx).Put(ctx, 1, &entity.User{ID: 1, Name: "John"}))

		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		_, err = uow.UserIDs(txCtx).Next(txCtx)
		require.NoError(t, err)
		require.NoError(t, uow.Users(txCtx).Put(txCtx, 2, &entity.User{ID: 2, Name: "Ghost"}))
		require.NoError(t, uow.Rollback(txCtx))

		fetched, err := uow.Users(ctx).Get(ctx, 2)
		assert.NoError(t, err)
		assert.Nil(t, fetched)

		next, err := uow.UserIDs(ctx).Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), next)
	})

	t.Run("Rollback without a transaction is a no-op", func(t *testing.T) {
		uow := NewMemoryUnitOfWork(NewMemoryStore())

		assert.NoError(t, uow.Rollback(ctx))
		assert.NoError(t, uow.Commit(ctx))
	})
}
