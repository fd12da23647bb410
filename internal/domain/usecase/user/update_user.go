package user

import (
	"context"

	"github.com/fitcore/workout-planner/internal/domain/entity"
	errs "github.com/fitcore/workout-planner/internal/domain/error"
)

// UpdateUser applies the non-nil patch fields to an existing user and stamps
// UpdatedAt. Absent patch fields leave the stored values untouched.
func (s *Service) UpdateUser(ctx context.Context, caller entity.Principal, id uint64, patch entity.UserProfilePatch) (*entity.User, error) {
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
		return nil, errs.NewNotFound(entityUser, id, "update_user")
	}
	if !user.IsOwnedBy(caller) {
		_ = s.uow.Rollback(txCtx)
		s.logger.Warn("Rejected update by non-owner", map[string]any{
			"userId": id,
			"caller": string(caller),
		})
		return nil, errs.NewForbidden(entityUser, id, "update_user")
	}

	user.ApplyPatch(patch, s.timeProvider)
	if err := users.Put(txCtx, id, user); err != nil {
		_ = s.uow.Rollback(txCtx)
		s.logger.Error("Failed to store updated user", map[string]any{
			"userId": id,
			"error":  err.Error(),
		})
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("User updated", map[string]any{
		"userId": id,
	})
	return user, nil
}
