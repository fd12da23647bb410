package entity

import (
	"testing"
	"time"

	coremocks "github.com/fitcore/workout-planner/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Once()

	user := NewUser(7, "owner-principal", UserProfile{
		Name:   "John",
		Weight: 70,
		Height: 6,
		Age:    60,
	}, mockTime)

	require.NotNil(t, user)
	assert.Equal(t, uint64(7), user.ID)
	assert.Equal(t, Principal("owner-principal"), user.Owner)
	assert.Equal(t, "John", user.Name)
	assert.Equal(t, uint64(70), user.Weight)
	assert.Equal(t, uint64(6), user.Height)
	assert.Equal(t, uint64(60), user.Age)
	assert.Equal(t, uint64(fixedTime.UnixNano()), user.CreatedAt)
	assert.Nil(t, user.UpdatedAt)
}

func TestUserIsOwnedBy(t *testing.T) {
	user := &User{ID: 1, Owner: "alice"}

	assert.True(t, user.IsOwnedBy("alice"))
	assert.False(t, user.IsOwnedBy("bob"))
	assert.False(t, user.IsOwnedBy(""))
}

func TestUserApplyPatch(t *testing.T) {
	fixedTime := time.Date(2023, 5, 2, 9, 30, 0, 0, time.UTC)

	t.Run("Applies only non-nil fields", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user := &User{ID: 1, Name: "John", Weight: 70, Height: 6, Age: 60}

		newName := "Johnny"
		newWeight := uint64(72)
		user.ApplyPatch(UserProfilePatch{Name: &newName, Weight: &newWeight}, mockTime)

		assert.Equal(t, "Johnny", user.Name)
		assert.Equal(t, uint64(72), user.Weight)
		assert.Equal(t, uint64(6), user.Height)
		assert.Equal(t, uint64(60), user.Age)
		require.NotNil(t, user.UpdatedAt)
		assert.Equal(t, uint64(fixedTime.UnixNano()), *user.UpdatedAt)
	})

	t.Run("Empty patch still stamps UpdatedAt", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()

		user := &User{ID: 1, Name: "John", Weight: 70, Height: 6, Age: 60}
		user.ApplyPatch(UserProfilePatch{}, mockTime)

		assert.Equal(t, "John", user.Name)
		require.NotNil(t, user.UpdatedAt)
	})
}

func TestUserProfilePatchEmpty(t *testing.T) {
	assert.True(t, UserProfilePatch{}.Empty())

	age := uint64(30)
	assert.False(t, UserProfilePatch{Age: &age}.Empty())
}

func TestUserAttributes(t *testing.T) {
	user := &User{Age: 60, Height: 6, Weight: 70}

	attrs := user.Attributes()
	assert.Equal(t, uint64(60), attrs.Age)
	assert.Equal(t, uint64(6), attrs.Height)
	assert.Equal(t, uint64(70), attrs.Weight)
}
