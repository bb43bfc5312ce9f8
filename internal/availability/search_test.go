package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextAvailableSlot_EmptyScheduleExhaustsHorizon(t *testing.T) {
	slot, found := NextAvailableSlot(WeeklyAvailability{}, nil, 60, testNow)

	assert.False(t, found)
	assert.Nil(t, slot)
}

func TestNextAvailableSlot_FirstOpenDayWins(t *testing.T) {
	// Сейчас вторник; единственный открытый день - понедельник,
	// ближайший - 2026-09-07
	slot, found := NextAvailableSlot(mondayWeek, nil, 60, testNow)

	require.True(t, found)
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), slot.Date)
	assert.Equal(t, time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC), slot.Start)
	assert.Equal(t, "Monday", slot.DayName)
	assert.Equal(t, "10:00 AM", slot.Clock)
	assert.Equal(t, 60, slot.DurationMinutes)
	assert.Equal(t, "Monday, Sep 7 at 10:00 AM", slot.Description)
}

func TestNextAvailableSlot_SkipsConflictingStarts(t *testing.T) {
	// Утро понедельника занято - первый свободный старт после него
	existing := []ExistingBooking{
		{Date: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), StartTime: "10:00 AM", DurationMinutes: 120, Status: "confirmed"},
	}

	slot, found := NextAvailableSlot(mondayWeek, existing, 60, testNow)

	require.True(t, found)
	assert.Equal(t, time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC), slot.Start)
}

func TestNextAvailableSlot_TodayHonorsNotice(t *testing.T) {
	// Открыт сегодняшний день (вторник): первый слот не раньше now + 2ч
	week := WeeklyAvailability{
		{Day: "Tuesday", From: "8:00 AM", Until: "10:00 PM"},
	}

	slot, found := NextAvailableSlot(week, nil, 60, testNow)

	require.True(t, found)
	assert.Equal(t, time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC), slot.Start)
}

func TestNextAvailableSlot_LongDurationSkipsShortDays(t *testing.T) {
	week := WeeklyAvailability{
		// Окно среды слишком короткое для 5 часов
		{Day: "Wednesday", From: "9:00 AM", Until: "11:00 AM"},
		{Day: "Thursday", From: "9:00 AM", Until: "9:00 PM"},
	}

	slot, found := NextAvailableSlot(week, nil, 300, testNow)

	require.True(t, found)
	// Четверг 2026-09-03
	assert.Equal(t, time.Date(2026, 9, 3, 9, 0, 0, 0, time.UTC), slot.Start)
	assert.Equal(t, "Thursday", slot.DayName)
}

func TestNextAvailableSlot_DefaultDuration(t *testing.T) {
	slot, found := NextAvailableSlot(mondayWeek, nil, 0, testNow)

	require.True(t, found)
	assert.Equal(t, DefaultMinSlotDurationMinutes, slot.DurationMinutes)
}
