package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday(t *testing.T) {
	cases := []struct {
		input string
		want  time.Weekday
		ok    bool
	}{
		{"Monday", time.Monday, true},
		{"monday", time.Monday, true},
		{"MONDAY", time.Monday, true},
		{"  sunday  ", time.Sunday, true},
		{"Mon", 0, false},
		{"", 0, false},
		{"someday", 0, false},
	}

	for _, tc := range cases {
		got, ok := ParseWeekday(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		if tc.ok {
			assert.Equal(t, tc.want, got, "input %q", tc.input)
		}
	}
}

func TestDayNameOf(t *testing.T) {
	// 2026-09-07 - понедельник
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Monday", DayNameOf(monday))
	assert.Equal(t, "", DayNameOf(time.Time{}))
}

func TestNormalizeDayRule_Valid(t *testing.T) {
	avail := NormalizeDayRule(&DayRule{Day: "Monday", From: "10:00 AM", Until: "6:00 PM"})

	require.True(t, avail.IsAvailable)
	assert.Empty(t, avail.Reason)
	assert.Equal(t, "10:00", avail.From.String())
	assert.Equal(t, "18:00", avail.Until.String())
}

func TestNormalizeDayRule_AcceptsMixedFormats(t *testing.T) {
	avail := NormalizeDayRule(&DayRule{Day: "Friday", From: "10AM", Until: "22:00"})

	require.True(t, avail.IsAvailable)
	assert.Equal(t, "10:00", avail.From.String())
	assert.Equal(t, "22:00", avail.Until.String())
}

func TestNormalizeDayRule_NilRule(t *testing.T) {
	avail := NormalizeDayRule(nil)

	assert.False(t, avail.IsAvailable)
	assert.Equal(t, ReasonNoRule, avail.Reason)
}

func TestNormalizeDayRule_MissingDay(t *testing.T) {
	avail := NormalizeDayRule(&DayRule{From: "10:00 AM", Until: "6:00 PM"})

	assert.False(t, avail.IsAvailable)
	assert.Equal(t, ReasonMissingDay, avail.Reason)
}

func TestNormalizeDayRule_UnavailableWinsOverTimes(t *testing.T) {
	// Явная блокировка дня важнее любых времен, даже валидных
	avail := NormalizeDayRule(&DayRule{Day: "Monday", Unavailable: true, From: "10:00 AM", Until: "6:00 PM"})

	assert.False(t, avail.IsAvailable)
	assert.Equal(t, ReasonMarkedUnavailable, avail.Reason)
}

func TestNormalizeDayRule_BlankTimesAreClosed(t *testing.T) {
	// Пустое время не подменяется окном по умолчанию - день закрыт
	avail := NormalizeDayRule(&DayRule{Day: "Monday"})

	assert.False(t, avail.IsAvailable)
	assert.Equal(t, ReasonInvalidTimeFormat, avail.Reason)
}

func TestNormalizeDayRule_GarbageTimes(t *testing.T) {
	avail := NormalizeDayRule(&DayRule{Day: "Monday", From: "whenever", Until: "6:00 PM"})

	assert.False(t, avail.IsAvailable)
	assert.Equal(t, ReasonInvalidTimeFormat, avail.Reason)
}

func TestNormalizeDayRule_InvertedRangeIsClosed(t *testing.T) {
	avail := NormalizeDayRule(&DayRule{Day: "Monday", From: "6:00 PM", Until: "10:00 AM"})

	assert.False(t, avail.IsAvailable)
	assert.Equal(t, ReasonInvalidTimeRange, avail.Reason)
}

func TestNormalizeDayRule_EqualBoundariesAreClosed(t *testing.T) {
	avail := NormalizeDayRule(&DayRule{Day: "Monday", From: "10:00 AM", Until: "10:00 AM"})

	assert.False(t, avail.IsAvailable)
	assert.Equal(t, ReasonInvalidTimeRange, avail.Reason)
}

func TestDayRuleFor_CaseInsensitiveLookup(t *testing.T) {
	week := WeeklyAvailability{
		{Day: "tuesday", From: "9:00 AM", Until: "5:00 PM"},
		{Day: "MONDAY", From: "10:00 AM", Until: "6:00 PM"},
	}

	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	rule := DayRuleFor(monday, week)
	require.NotNil(t, rule)
	assert.Equal(t, "MONDAY", rule.Day)

	// Среды в расписании нет
	wednesday := time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)
	assert.Nil(t, DayRuleFor(wednesday, week))
}
