package plan

import (
	"context"
	"testing"
	"time"

	"github.com/fitcore/workout-planner/internal/domain/entity"
	"github.com/fitcore/workout-planner/internal/infrastructure/adapter/kvstore"
	coremocks "github.com/fitcore/workout-planner/mocks/port/core"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)

// newTestService builds a plan service over a fresh in-memory store
func newTestService(t *testing.T) (*Service, *kvstore.MemoryUnitOfWork) {
	store := kvstore.NewMemoryStore()
	uow := kvstore.NewMemoryUnitOfWork(store)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(testTime).Maybe()

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return NewService(uow, NewTierDeriver(), mockTime, mockLogger), uow
}

// seedUser stores a user record directly, bypassing the user service
func seedUser(t *testing.T, uow *kvstore.MemoryUnitOfWork, user *entity.User) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, uow.Users(ctx).Put(ctx, user.ID, user))
}
