package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateStatusOf(t *testing.T) {
	week := WeeklyAvailability{
		{Day: "Monday", From: "10:00 AM", Until: "6:00 PM"},
		{Day: "Tuesday", From: "8:00 AM", Until: "10:00 PM"},
		{Day: "Friday", Unavailable: true},
		{Day: "Saturday", From: "6:00 PM", Until: "10:00 AM"}, // инвертированное окно
	}

	cases := []struct {
		name string
		date time.Time
		now  time.Time
		want DayStatus
	}{
		{"past", testNow.AddDate(0, 0, -1), testNow, DayStatusPast},
		{"no rule for weekday", time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC), testNow, DayStatusUnavailable},
		{"explicitly blocked", time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC), testNow, DayStatusBlocked},
		{"invalid rule blocked", time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC), testNow, DayStatusBlocked},
		{"future open day", time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), testNow, DayStatusAvailable},
		{"today with time left", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), testNow, DayStatusAvailableToday},
		{
			"today with no time left",
			time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 1, 21, 0, 0, 0, time.UTC), // 21:00 + 2ч - позже закрытия
			DayStatusNoTimeLeft,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DateStatusOf(tc.date, week, tc.now))
		})
	}
}

func TestSummary_InclusiveRange(t *testing.T) {
	// Вторник 2026-09-01 .. понедельник 2026-09-07, 7 записей
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	entries := Summary(start, end, mondayWeek, testNow)
	require.Len(t, entries, 7)

	assert.Equal(t, "Tuesday", entries[0].DayName)
	assert.Equal(t, "Monday", entries[6].DayName)

	// Единственный открытый день - последний понедельник
	for i, entry := range entries[:6] {
		assert.False(t, entry.IsAvailable, "entry %d", i)
		assert.Nil(t, entry.Window, "entry %d", i)
	}

	monday := entries[6]
	assert.True(t, monday.IsAvailable)
	assert.Equal(t, DayStatusAvailable, monday.Status)
	require.NotNil(t, monday.Window)
	assert.Equal(t, "10:00 AM", monday.Window.FromClock)
}

func TestSummary_PastDaysFlagged(t *testing.T) {
	start := testNow.AddDate(0, 0, -2)
	end := testNow

	entries := Summary(start, end, mondayWeek, testNow)
	require.Len(t, entries, 3)

	assert.True(t, entries[0].IsPast)
	assert.True(t, entries[1].IsPast)
	assert.False(t, entries[2].IsPast)
	assert.Equal(t, DayStatusPast, entries[0].Status)
}

func TestSummary_InvertedRangeEmpty(t *testing.T) {
	assert.Nil(t, Summary(testNow, testNow.AddDate(0, 0, -1), mondayWeek, testNow))
}
