package user

import (
	"context"
	"fmt"

	"github.com/fitcore/workout-planner/internal/domain/entity"
	errs "github.com/fitcore/workout-planner/internal/domain/error"
)

// AddUser allocates a fresh id from the durable user sequence, binds the
// caller identity as owner, stamps the creation time and stores the record.
// The id is the post-increment counter value, so the first user ever created
// gets id 1.
func (s *Service) AddUser(ctx context.Context, caller entity.Principal, profile entity.UserProfile) (*entity.User, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	id, err := s.uow.UserIDs(txCtx).Next(txCtx)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		s.logger.Error("Failed to allocate user id", map[string]any{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", errs.ErrCounterUpdate, err)
	}

	user := entity.NewUser(id, caller, profile, s.timeProvider)
	if err := s.uow.Users(txCtx).Put(txCtx, id, user); err != nil {
		_ = s.uow.Rollback(txCtx)
		s.logger.Error("Failed to store user", map[string]any{
			"userId": id,
			"error":  err.Error(),
		})
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("User created", map[string]any{
		"userId": id,
		"owner":  string(caller),
	})
	return user, nil
}
