package dto

import (
	"github.com/fitcore/workout-planner/internal/domain/entity"
)

// UpdateWorkoutPlanRequest is the body of PATCH /workout-plans/:planId.
// Absent fields are left untouched on the stored record.
type UpdateWorkoutPlanRequest struct {
	PushUps     *uint64 `json:"pushUps"`
	SitUps      *uint64 `json:"sitUps"`
	RunningTime *uint64 `json:"runningTime"`
}

// Patch converts the request into the domain patch
func (r *UpdateWorkoutPlanRequest) Patch() entity.WorkoutPlanPatch {
	return entity.WorkoutPlanPatch{
		PushUps:     r.PushUps,
		SitUps:      r.SitUps,
		RunningTime: r.RunningTime,
	}
}

// WorkoutPlanResponse is the API shape of a workout-plan record
type WorkoutPlanResponse struct {
	ID          uint64  `json:"id"`
	UserID      uint64  `json:"userId"`
	PushUps     uint64  `json:"pushUps"`
	SitUps      uint64  `json:"sitUps"`
	RunningTime uint64  `json:"runningTime"`
	CreatedAt   uint64  `json:"createdAt"`
	UpdatedAt   *uint64 `json:"updatedAt,omitempty"`
}

// NewWorkoutPlanResponse maps a plan entity onto the API shape
func NewWorkoutPlanResponse(plan *entity.WorkoutPlan) WorkoutPlanResponse {
	return WorkoutPlanResponse{
		ID:          plan.ID,
		UserID:      plan.UserID,
		PushUps:     plan.PushUps,
		SitUps:      plan.SitUps,
		RunningTime: plan.RunningTime,
		CreatedAt:   plan.CreatedAt,
		UpdatedAt:   plan.UpdatedAt,
	}
}
