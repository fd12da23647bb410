package user

import (
	"context"

	"github.com/fitcore/workout-planner/internal/domain/entity"
	errs "github.com/fitcore/workout-planner/internal/domain/error"
)

// GetUser retrieves a user by id
func (s *Service) GetUser(ctx context.Context, id uint64) (*entity.User, error) {
	user, err := s.uow.Users(ctx).Get(ctx, id)
	if err != nil {
		s.logger.Error("Failed to read user", map[string]any{
			"userId": id,
			"error":  err.Error(),
		})
		return nil, err
	}
	if user == nil {
		return nil, errs.NewNotFound(entityUser, id, "get_user")
	}
	return user, nil
}
