package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	// Нормализация однозначного часа
	ts, err = NewTimeStringFromString("9:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("10:00 AM")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("10:45")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 10*60+45, minutes)

	_, err = TimeString("bogus").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("10:00")

	added, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "11:30", added.String())

	// Выход за пределы суток - ошибка, не перенос на следующий день
	_, err = TimeString("23:30").AddMinutes(45)
	assert.ErrorIs(t, err, ErrTimeOverflow)

	_, err = TimeString("00:30").AddMinutes(-60)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("10:00").IsBefore("10:01"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("18:00").IsAfter("17:59"))
	assert.False(t, TimeString("18:00").IsAfter("18:00"))
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2026, 9, 7, 15, 42, 11, 0, time.UTC)

	at, err := TimeString("10:30").OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 7, 10, 30, 0, 0, time.UTC), at)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres TIME приходит с секундами
	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, "10:00", ts.String())

	require.NoError(t, ts.Scan([]byte("22:15")))
	assert.Equal(t, "22:15", ts.String())

	assert.Error(t, ts.Scan(42))
}

func TestParseClockText_AcceptedFormats(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"10:00 AM", "10:00"},
		{"10:00 PM", "22:00"},
		{"12:00 AM", "00:00"}, // полночь, отличима от ошибки
		{"12:00 PM", "12:00"},
		{"22:00", "22:00"},
		{"9:05", "09:05"},
		{"10:00AM", "10:00"},
		{"10 AM", "10:00"},
		{"10AM", "10:00"},
		{"3pm", "15:00"},
		{"22", "22:00"},
		{"7", "07:00"},
		{" 10:00 am ", "10:00"},
	}

	for _, tc := range cases {
		got, err := ParseClockText(tc.input)
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got.String(), "input %q", tc.input)
	}
}

func TestParseClockText_Rejected(t *testing.T) {
	for _, input := range []string{"", "   ", "25:00", "10:61", "noon", "10:00 XM", "24"} {
		_, err := ParseClockText(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseClockText_RoundTrip12Hour(t *testing.T) {
	// Для любой валидной строки "h:mm A" разбор и форматирование
	// обратно дают ту же строку
	for _, input := range []string{"10:00 AM", "12:00 AM", "12:00 PM", "5:30 PM", "11:59 PM", "1:05 AM"} {
		ts, err := ParseClockText(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, input, ts.Clock12(), "input %q", input)
	}
}

func TestClock12(t *testing.T) {
	at := time.Date(2026, 9, 7, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "6:00 PM", Clock12(at))

	midnight := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "12:00 AM", Clock12(midnight))
}
