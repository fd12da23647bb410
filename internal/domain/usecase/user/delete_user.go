package user

import (
	"context"

	"github.com/fitcore/workout-planner/internal/domain/entity"
	errs "github.com/fitcore/workout-planner/internal/domain/error"
)

// DeleteUser removes a user and cascades to the user's workout plan. The
// cascade runs first, inside the same transaction, and its failures
// propagate verbatim; the user record stays put when the cascade fails.
func (s *Service) DeleteUser(ctx context.Context, caller entity.Principal, id uint64) (*entity.User, error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	users := s.uow.Users(txCtx)
	user, err := users.Get(txCtx, id)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}
	if user == nil {
		_ = s.uow.Rollback(txCtx)
		return nil, errs.NewNotFound(entityUser, id, "delete_user")
	}
	if !user.IsOwnedBy(caller) {
		_ = s.uow.Rollback(txCtx)
		s.logger.Warn("Rejected delete by non-owner", map[string]any{
			"userId": id,
			"caller": string(caller),
		})
		return nil, errs.NewForbidden(entityUser, id, "delete_user")
	}

	plan, err := s.plans.RemoveForUser(txCtx, id)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		s.logger.Error("Cascading plan delete failed", map[string]any{
			"userId": id,
			"error":  err.Error(),
		})
		return nil, err
	}

	removed, err := users.Remove(txCtx, id)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}
	if removed == nil {
		// The record was loaded moments ago; its absence here is a
		// consistency failure, not a user error.
		_ = s.uow.Rollback(txCtx)
		return nil, errs.NewInconsistency(entityUser, id, "delete_user")
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("User deleted", map[string]any{
		"userId":      id,
		"planRemoved": plan != nil,
	})
	return removed, nil
}
