package usecase

import (
	"context"

	"github.com/fitcore/workout-planner/internal/domain/entity"
)

// UserUseCase defines the user-facing operations over user records
type UserUseCase interface {
	// GetUser retrieves a user by id
	//
	// Possible errors:
	// - ErrNotFound: no user is stored under id
	GetUser(ctx context.Context, id uint64) (*entity.User, error)

	// AddUser allocates a fresh id, binds the caller as owner and stores
	// the profile. It does not fail under normal conditions.
	AddUser(ctx context.Context, caller entity.Principal, profile entity.UserProfile) (*entity.User, error)

	// UpdateUser applies the non-nil patch fields to an existing user
	//
	// Possible errors:
	// - ErrNotFound: no user is stored under id
	// - ErrForbidden: caller is not the owner
	UpdateUser(ctx context.Context, caller entity.Principal, id uint64, patch entity.UserProfilePatch) (*entity.User, error)

	// DeleteUser removes a user, cascading to the user's workout plan
	// first. Failures of the cascade propagate verbatim.
	//
	// Possible errors:
	// - ErrNotFound: no user is stored under id
	// - ErrForbidden: caller is not the owner
	// - ErrInconsistency: the record vanished between load and remove
	DeleteUser(ctx context.Context, caller entity.Principal, id uint64) (*entity.User, error)
}
