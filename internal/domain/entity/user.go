package entity

import (
	coreport "github.com/fitcore/workout-planner/internal/domain/port/core"
)

// Principal is the opaque caller identity bound to a user at creation.
// Equality against the stored owner is the entire authorization model.
type Principal string

// User represents a stored user record
type User struct {
	ID        uint64    `json:"id"`        // Unique identifier, assigned once, never reused
	Owner     Principal `json:"owner"`     // Caller identity allowed to mutate this user and its plan
	Name      string    `json:"name"`      // Display name
	Weight    uint64    `json:"weight"`    // Body weight in kilograms
	Height    uint64    `json:"height"`    // Height in feet
	Age       uint64    `json:"age"`       // Age in years
	CreatedAt uint64    `json:"createdAt"` // Unix nanoseconds at creation
	UpdatedAt *uint64   `json:"updatedAt"` // Nil until the first update
}

// UserProfile carries the mutable profile attributes for user creation
type UserProfile struct {
	Name   string
	Weight uint64
	Height uint64
	Age    uint64
}

// UserProfilePatch carries a partial profile update. Nil fields are left
// untouched on the stored record (PATCH semantics, not full replace).
type UserProfilePatch struct {
	Name   *string
	Weight *uint64
	Height *uint64
	Age    *uint64
}

// Empty reports whether the patch touches no fields
func (p UserProfilePatch) Empty() bool {
	return p.Name == nil && p.Weight == nil && p.Height == nil && p.Age == nil
}

// NewUser creates a user record with a fresh id, binding the owner identity
// and stamping the creation time. UpdatedAt stays nil until the first update.
func NewUser(id uint64, owner Principal, profile UserProfile, timeProvider coreport.TimeProvider) *User {
	return &User{
		ID:        id,
		Owner:     owner,
		Name:      profile.Name,
		Weight:    profile.Weight,
		Height:    profile.Height,
		Age:       profile.Age,
		CreatedAt: uint64(timeProvider.Now().UnixNano()),
	}
}

// IsOwnedBy reports whether the given caller identity owns this user
func (u *User) IsOwnedBy(caller Principal) bool {
	return u.Owner == caller
}

// ApplyPatch applies the non-nil fields of the patch and stamps UpdatedAt
func (u *User) ApplyPatch(patch UserProfilePatch, timeProvider coreport.TimeProvider) {
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Weight != nil {
		u.Weight = *patch.Weight
	}
	if patch.Height != nil {
		u.Height = *patch.Height
	}
	if patch.Age != nil {
		u.Age = *patch.Age
	}
	now := uint64(timeProvider.Now().UnixNano())
	u.UpdatedAt = &now
}

// Attributes returns the physical attributes the plan derivation works from
func (u *User) Attributes() Attributes {
	return Attributes{
		Age:    u.Age,
		Height: u.Height,
		Weight: u.Weight,
	}
}

// Attributes is the slice of a user's profile that drives plan derivation
type Attributes struct {
	Age    uint64
	Height uint64
	Weight uint64
}
