package user

import (
	"testing"
	"time"

	usecaseport "github.com/fitcore/workout-planner/internal/domain/port/usecase"
	"github.com/fitcore/workout-planner/internal/infrastructure/adapter/kvstore"
	coremocks "github.com/fitcore/workout-planner/mocks/port/core"
	"github.com/stretchr/testify/mock"
)

var testTime = time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)

// newTestService builds a user service over a fresh in-memory store with the
// given workout-plan collaborator
func newTestService(t *testing.T, plans usecaseport.WorkoutPlanUseCase) (*Service, *kvstore.MemoryUnitOfWork) {
	store := kvstore.NewMemoryStore()
	uow := kvstore.NewMemoryUnitOfWork(store)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(testTime).Maybe()

	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	return NewService(uow, plans, mockTime, mockLogger), uow
}
