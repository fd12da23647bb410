package entity

import (
	"testing"
	"time"

	coremocks "github.com/fitcore/workout-planner/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkoutPlan(t *testing.T) {
	fixedTime := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Once()

	plan := NewWorkoutPlan(3, 7, Intensity{PushUps: 7, SitUps: 10, RunningTime: 30}, mockTime)

	require.NotNil(t, plan)
	assert.Equal(t, uint64(3), plan.ID)
	assert.Equal(t, uint64(7), plan.UserID)
	assert.Equal(t, uint64(7), plan.PushUps)
	assert.Equal(t, uint64(10), plan.SitUps)
	assert.Equal(t, uint64(30), plan.RunningTime)
	assert.Equal(t, uint64(fixedTime.UnixNano()), plan.CreatedAt)
	assert.Nil(t, plan.UpdatedAt)
}

func TestWorkoutPlanIntensity(t *testing.T) {
	plan := &WorkoutPlan{PushUps: 12, SitUps: 20, RunningTime: 45}

	assert.Equal(t, Intensity{PushUps: 12, SitUps: 20, RunningTime: 45}, plan.Intensity())
}

func TestWorkoutPlanApplyPatch(t *testing.T) {
	fixedTime := time.Date(2023, 5, 2, 9, 30, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Once()

	plan := &WorkoutPlan{ID: 3, UserID: 7, PushUps: 7, SitUps: 10, RunningTime: 30}

	newPushUps := uint64(15)
	plan.ApplyPatch(WorkoutPlanPatch{PushUps: &newPushUps}, mockTime)

	assert.Equal(t, uint64(15), plan.PushUps)
	assert.Equal(t, uint64(10), plan.SitUps)
	assert.Equal(t, uint64(30), plan.RunningTime)
	require.NotNil(t, plan.UpdatedAt)
	assert.Equal(t, uint64(fixedTime.UnixNano()), *plan.UpdatedAt)
}

func TestWorkoutPlanPatchEmpty(t *testing.T) {
	assert.True(t, WorkoutPlanPatch{}.Empty())

	sitUps := uint64(20)
	assert.False(t, WorkoutPlanPatch{SitUps: &sitUps}.Empty())
}
