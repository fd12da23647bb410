package dto

import (
	"github.com/fitcore/workout-planner/internal/domain/entity"
)

// CreateUserRequest is the body of POST /users
type CreateUserRequest struct {
	Name   string `json:"name" binding:"required"`
	Weight uint64 `json:"weight" binding:"required"`
	Height uint64 `json:"height" binding:"required"`
	Age    uint64 `json:"age" binding:"required"`
}

// Profile converts the request into the domain payload
func (r *CreateUserRequest) Profile() entity.UserProfile {
	return entity.UserProfile{
		Name:   r.Name,
		Weight: r.Weight,
		Height: r.Height,
		Age:    r.Age,
	}
}

// UpdateUserRequest is the body of PATCH /users/:userId. Absent fields are
// left untouched on the stored record.
type UpdateUserRequest struct {
	Name   *string `json:"name"`
	Weight *uint64 `json:"weight"`
	Height *uint64 `json:"height"`
	Age    *uint64 `json:"age"`
}

// Patch converts the request into the domain patch
func (r *UpdateUserRequest) Patch() entity.UserProfilePatch {
	return entity.UserProfilePatch{
		Name:   r.Name,
		Weight: r.Weight,
		Height: r.Height,
		Age:    r.Age,
	}
}

// UserResponse is the API shape of a user record
type UserResponse struct {
	ID        uint64  `json:"id"`
	Owner     string  `json:"owner"`
	Name      string  `json:"name"`
	Weight    uint64  `json:"weight"`
	Height    uint64  `json:"height"`
	Age       uint64  `json:"age"`
	CreatedAt uint64  `json:"createdAt"`
	UpdatedAt *uint64 `json:"updatedAt,omitempty"`
}

// NewUserResponse maps a user entity onto the API shape
func NewUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Owner:     string(user.Owner),
		Name:      user.Name,
		Weight:    user.Weight,
		Height:    user.Height,
		Age:       user.Age,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
