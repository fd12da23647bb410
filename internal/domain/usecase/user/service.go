package user

import (
	coreport "github.com/fitcore/workout-planner/internal/domain/port/core"
	"github.com/fitcore/workout-planner/internal/domain/port/persistence"
	usecaseport "github.com/fitcore/workout-planner/internal/domain/port/usecase"
)

// Entity name used in structured errors produced by this service
const entityUser = "user"

// Service handles user-related business logic. It owns the user table and
// its id sequence through the unit of work, and reaches the workout-plan
// service only for the cascading delete.
type Service struct {
	uow          persistence.UnitOfWork
	plans        usecaseport.WorkoutPlanUseCase
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new user service
func NewService(
	uow persistence.UnitOfWork,
	plans usecaseport.WorkoutPlanUseCase,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		plans:        plans,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
