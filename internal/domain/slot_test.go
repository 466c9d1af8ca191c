package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/PM-AvailabilityService/pkg/types"
)

func TestSlotUniverse(t *testing.T) {
	universe := SlotUniverse()

	require.Len(t, universe, SlotsPerDay)
	assert.Equal(t, types.TimeString("00:00"), universe[0])
	assert.Equal(t, types.TimeString("23:30"), universe[len(universe)-1])

	// Канонический порядок: строго по возрастанию с шагом 30 минут
	for i := 1; i < len(universe); i++ {
		assert.True(t, universe[i-1].IsBefore(universe[i]))
		next, err := universe[i-1].AddMinutes(SlotStepMinutes)
		require.NoError(t, err)
		assert.Equal(t, next, universe[i])
	}
}

func TestSlotUniverse_ReturnsCopy(t *testing.T) {
	first := SlotUniverse()
	first[0] = "99:99"
	assert.Equal(t, types.TimeString("00:00"), SlotUniverse()[0])
}

func TestIsValidSlot(t *testing.T) {
	assert.True(t, IsValidSlot("00:00"))
	assert.True(t, IsValidSlot("09:30"))
	assert.True(t, IsValidSlot("23:30"))

	assert.False(t, IsValidSlot("09:15"))
	assert.False(t, IsValidSlot("24:00"))
	assert.False(t, IsValidSlot("9:30"))
	assert.False(t, IsValidSlot(""))
}

func TestNormalizeSlots(t *testing.T) {
	got, err := NormalizeSlots([]types.TimeString{"10:30", "09:00", "10:30", "09:30"})
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:30"}, got)

	_, err = NormalizeSlots([]types.TimeString{"09:00", "09:17"})
	assert.ErrorIs(t, err, ErrInvalidSlot)

	got, err = NormalizeSlots(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
