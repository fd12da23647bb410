package entity

import (
	coreport "github.com/fitcore/workout-planner/internal/domain/port/core"
)

// Intensity is the prescribed exercise load of a workout plan
type Intensity struct {
	PushUps     uint64
	SitUps      uint64
	RunningTime uint64 // minutes
}

// WorkoutPlan represents a stored workout plan record. At most one live plan
// may reference a given user at any time; the workout-plan service enforces
// this, not the table.
type WorkoutPlan struct {
	ID          uint64  `json:"id"`          // Primary key, independent key space from User
	UserID      uint64  `json:"userId"`      // Owning user
	PushUps     uint64  `json:"pushUps"`     // Prescribed push-ups per day
	SitUps      uint64  `json:"sitUps"`      // Prescribed sit-ups per day
	RunningTime uint64  `json:"runningTime"` // Prescribed running time in minutes
	CreatedAt   uint64  `json:"createdAt"`   // Unix nanoseconds at creation
	UpdatedAt   *uint64 `json:"updatedAt"`   // Nil until the first update
}

// WorkoutPlanPatch carries a partial plan update with the same nil-means-keep
// semantics as UserProfilePatch.
type WorkoutPlanPatch struct {
	PushUps     *uint64
	SitUps      *uint64
	RunningTime *uint64
}

// Empty reports whether the patch touches no fields
func (p WorkoutPlanPatch) Empty() bool {
	return p.PushUps == nil && p.SitUps == nil && p.RunningTime == nil
}

// NewWorkoutPlan creates a plan record for the given user with the derived
// intensity, stamping the creation time.
func NewWorkoutPlan(id, userID uint64, intensity Intensity, timeProvider coreport.TimeProvider) *WorkoutPlan {
	return &WorkoutPlan{
		ID:          id,
		UserID:      userID,
		PushUps:     intensity.PushUps,
		SitUps:      intensity.SitUps,
		RunningTime: intensity.RunningTime,
		CreatedAt:   uint64(timeProvider.Now().UnixNano()),
	}
}

// Intensity returns the plan's prescribed load
func (p *WorkoutPlan) Intensity() Intensity {
	return Intensity{
		PushUps:     p.PushUps,
		SitUps:      p.SitUps,
		RunningTime: p.RunningTime,
	}
}

// ApplyPatch applies the non-nil fields of the patch and stamps UpdatedAt
func (p *WorkoutPlan) ApplyPatch(patch WorkoutPlanPatch, timeProvider coreport.TimeProvider) {
	if patch.PushUps != nil {
		p.PushUps = *patch.PushUps
	}
	if patch.SitUps != nil {
		p.SitUps = *patch.SitUps
	}
	if patch.RunningTime != nil {
		p.RunningTime = *patch.RunningTime
	}
	now := uint64(timeProvider.Now().UnixNano())
	p.UpdatedAt = &now
}
