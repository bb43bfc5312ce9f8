package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayWindowFor_FutureDay(t *testing.T) {
	window, ok := DayWindowFor(testNextMonday, mondayWeek, testNow)

	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC), window.From)
	assert.Equal(t, time.Date(2026, 9, 7, 18, 0, 0, 0, time.UTC), window.Until)
	assert.Equal(t, "10:00 AM", window.FromClock)
	assert.Equal(t, "6:00 PM", window.UntilClock)
	assert.InDelta(t, 8.0, window.DurationHours, 0.001)
	assert.False(t, window.IsToday)
	assert.Equal(t, MinNoticeHours, window.NoticeHours)
}

func TestDayWindowFor_TodayPushesStartWithRounding(t *testing.T) {
	week := WeeklyAvailability{
		{Day: "Tuesday", From: "8:00 AM", Until: "10:00 PM"},
	}
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// 09:20 + 2ч = 11:20, округление вверх до целого часа -> 12:00
	now := time.Date(2026, 9, 1, 9, 20, 0, 0, time.UTC)
	window, ok := DayWindowFor(today, week, now)

	require.True(t, ok)
	assert.True(t, window.IsToday)
	assert.Equal(t, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC), window.From)
	assert.Equal(t, "12:00 PM", window.FromClock)

	// Ровно на границе часа округление не двигает время: 09:00 + 2ч = 11:00
	window, ok = DayWindowFor(today, week, testNow)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC), window.From)
}

func TestDayWindowFor_TodayNominalStartKeptWhenLater(t *testing.T) {
	// Окно начинается позже, чем now + уведомление - сдвиг не нужен
	week := WeeklyAvailability{
		{Day: "Tuesday", From: "6:00 PM", Until: "10:00 PM"},
	}
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	window, ok := DayWindowFor(today, week, testNow)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC), window.From)
}

func TestDayWindowFor_NoTimeLeftToday(t *testing.T) {
	week := WeeklyAvailability{
		{Day: "Tuesday", From: "8:00 AM", Until: "11:00 AM"},
	}
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	// 09:30 + 2ч = 11:30 -> 12:00, позже закрытия в 11:00
	now := time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC)
	_, ok := DayWindowFor(today, week, now)
	assert.False(t, ok)
}

func TestDayWindowFor_UnavailableDay(t *testing.T) {
	week := WeeklyAvailability{
		{Day: "Monday", Unavailable: true, From: "10:00 AM", Until: "6:00 PM"},
	}

	_, ok := DayWindowFor(testNextMonday, week, testNow)
	assert.False(t, ok)
}

func TestEnumerateSlots_SpacingAndMaxDuration(t *testing.T) {
	slots := EnumerateSlots(testNextMonday, mondayWeek, testNow, 30, 60)

	// 10:00 .. 17:00 с шагом 30 минут = 15 слотов
	require.Len(t, slots, 15)

	first := slots[0]
	assert.Equal(t, time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC), first.Start)
	assert.Equal(t, "10:00 AM", first.Clock)
	assert.Equal(t, 480, first.MaxDurationMinutes)

	last := slots[len(slots)-1]
	assert.Equal(t, time.Date(2026, 9, 7, 17, 0, 0, 0, time.UTC), last.Start)
	assert.Equal(t, "5:00 PM", last.Clock)
	assert.Equal(t, 60, last.MaxDurationMinutes)
}

func TestEnumerateSlots_MinDurationFiltersTail(t *testing.T) {
	// При минимуме 240 минут последний подходящий старт - 14:00
	slots := EnumerateSlots(testNextMonday, mondayWeek, testNow, 30, 240)

	require.NotEmpty(t, slots)
	last := slots[len(slots)-1]
	assert.Equal(t, time.Date(2026, 9, 7, 14, 0, 0, 0, time.UTC), last.Start)
	assert.Equal(t, 240, last.MaxDurationMinutes)
}

func TestEnumerateSlots_DefaultsApplied(t *testing.T) {
	withDefaults := EnumerateSlots(testNextMonday, mondayWeek, testNow, 0, 0)
	explicit := EnumerateSlots(testNextMonday, mondayWeek, testNow, DefaultIntervalMinutes, DefaultMinSlotDurationMinutes)

	assert.Equal(t, explicit, withDefaults)
}

func TestEnumerateSlots_ClosedDay(t *testing.T) {
	wednesday := time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)
	assert.Nil(t, EnumerateSlots(wednesday, mondayWeek, testNow, 30, 60))
}
