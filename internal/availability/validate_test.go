package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Фикстуры: "сейчас" - вторник 2026-09-01 09:00 UTC,
// ближайший понедельник - 2026-09-07
var (
	testNow        = time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	testNextMonday = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	mondayWeek = WeeklyAvailability{
		{Day: "Monday", From: "10:00 AM", Until: "6:00 PM"},
	}
)

func TestValidateBooking_Valid(t *testing.T) {
	result := ValidateBooking(Candidate{
		Date:            testNextMonday,
		StartTime:       "11:00 AM",
		DurationMinutes: 60,
	}, mondayWeek, nil, testNow)

	require.True(t, result.IsValid, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, time.Date(2026, 9, 7, 11, 0, 0, 0, time.UTC), result.BookingStart)
	assert.Equal(t, time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC), result.BookingEnd)
	assert.Equal(t, 60, result.DurationMinutes)
	require.NotNil(t, result.Window)
	assert.Equal(t, "10:00 AM", result.Window.FromClock)
	assert.Equal(t, "6:00 PM", result.Window.UntilClock)
}

func TestValidateBooking_MissingFieldsListedTogether(t *testing.T) {
	result := ValidateBooking(Candidate{}, mondayWeek, nil, testNow)

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 3)
	assert.Contains(t, result.Errors, "date is required")
	assert.Contains(t, result.Errors, "start time is required")
	assert.Contains(t, result.Errors, "duration is required")
}

func TestValidateBooking_InvalidStartTime(t *testing.T) {
	result := ValidateBooking(Candidate{
		Date:            testNextMonday,
		StartTime:       "eleven-ish",
		DurationMinutes: 60,
	}, mondayWeek, nil, testNow)

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "invalid start time format", result.Errors[0])
}

func TestValidateBooking_StructuredStartTime(t *testing.T) {
	// Вместо текста передано уже разобранное время
	result := ValidateBooking(Candidate{
		Date:            testNextMonday,
		StartAt:         time.Date(2026, 9, 7, 14, 30, 0, 0, time.UTC),
		DurationMinutes: 90,
	}, mondayWeek, nil, testNow)

	require.True(t, result.IsValid, "errors: %v", result.Errors)
	assert.Equal(t, time.Date(2026, 9, 7, 14, 30, 0, 0, time.UTC), result.BookingStart)
	assert.Equal(t, time.Date(2026, 9, 7, 16, 0, 0, 0, time.UTC), result.BookingEnd)
}

func TestValidateBooking_NegativeDuration(t *testing.T) {
	result := ValidateBooking(Candidate{
		Date:            testNextMonday,
		StartTime:       "11:00 AM",
		DurationMinutes: -30,
	}, mondayWeek, nil, testNow)

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "duration must be a positive number of minutes", result.Errors[0])
}

func TestValidateBooking_MaxDurationExceeded(t *testing.T) {
	// 721 минута - на одну больше предела в 12 часов
	result := ValidateBooking(Candidate{
		Date:            testNextMonday,
		StartTime:       "11:00 AM",
		DurationMinutes: MaxDurationMinutes + 1,
	}, mondayWeek, nil, testNow)

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "maximum duration")
}

func TestValidateBooking_PastDateRejected(t *testing.T) {
	yesterday := testNow.AddDate(0, 0, -1)

	result := ValidateBooking(Candidate{
		Date:            yesterday,
		StartTime:       "11:00 AM",
		DurationMinutes: 60,
	}, mondayWeek, nil, testNow)

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "selected date is not available", result.Errors[0])
}

func TestValidateBooking_WeekdayWithoutRule(t *testing.T) {
	wednesday := time.Date(2026, 9, 9, 0, 0, 0, 0, time.UTC)

	result := ValidateBooking(Candidate{
		Date:            wednesday,
		StartTime:       "11:00 AM",
		DurationMinutes: 60,
	}, mondayWeek, nil, testNow)

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "selected date is not available", result.Errors[0])
}

func TestValidateBooking_EndAfterWindowClose(t *testing.T) {
	result := ValidateBooking(Candidate{
		Date:            testNextMonday,
		StartTime:       "5:30 PM",
		DurationMinutes: 60,
	}, mondayWeek, nil, testNow)

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "end time must be before 6:00 PM")
	// Вычисленные границы возвращаются и при невалидном результате
	assert.Equal(t, time.Date(2026, 9, 7, 17, 30, 0, 0, time.UTC), result.BookingStart)
}

func TestValidateBooking_BothBoundaryErrorsTogether(t *testing.T) {
	// Начало раньше открытия И конец позже закрытия
	result := ValidateBooking(Candidate{
		Date:            testNextMonday,
		StartTime:       "9:00 AM",
		DurationMinutes: 600,
	}, mondayWeek, nil, testNow)

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "start time must be after 10:00 AM")
	assert.Contains(t, result.Errors[1], "end time must be before 6:00 PM")
}

func TestValidateBooking_ConflictWithExisting(t *testing.T) {
	existing := []ExistingBooking{
		{Date: testNextMonday, StartTime: "11:00 AM", DurationMinutes: 60, Status: "confirmed"},
	}

	result := ValidateBooking(Candidate{
		Date:            testNextMonday,
		StartTime:       "11:30 AM",
		DurationMinutes: 30,
	}, mondayWeek, existing, testNow)

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "conflicts with existing bookings")
	assert.Contains(t, result.Errors[0], "11:00 AM - 12:00 PM")
}

func TestValidateBooking_TouchingBoundaryIsNotConflict(t *testing.T) {
	// Кандидат заканчивается ровно там, где начинается существующее
	existing := []ExistingBooking{
		{Date: testNextMonday, StartTime: "12:00 PM", DurationMinutes: 60, Status: "confirmed"},
	}

	result := ValidateBooking(Candidate{
		Date:            testNextMonday,
		StartTime:       "11:00 AM",
		DurationMinutes: 60,
	}, mondayWeek, existing, testNow)

	assert.True(t, result.IsValid, "errors: %v", result.Errors)

	// На минуту дольше - уже конфликт
	result = ValidateBooking(Candidate{
		Date:            testNextMonday,
		StartTime:       "11:00 AM",
		DurationMinutes: 61,
	}, mondayWeek, existing, testNow)

	assert.False(t, result.IsValid)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "conflicts with existing bookings")
}

func TestValidateBooking_CancelledBookingsIgnored(t *testing.T) {
	existing := []ExistingBooking{
		{Date: testNextMonday, StartTime: "11:00 AM", DurationMinutes: 60, Status: "cancelled_by_client"},
		{Date: testNextMonday, StartTime: "11:00 AM", DurationMinutes: 60, Status: "rejected"},
	}

	result := ValidateBooking(Candidate{
		Date:            testNextMonday,
		StartTime:       "11:00 AM",
		DurationMinutes: 60,
	}, mondayWeek, existing, testNow)

	assert.True(t, result.IsValid, "errors: %v", result.Errors)
}

func TestValidateBooking_MalformedExistingSkippedWithWarning(t *testing.T) {
	existing := []ExistingBooking{
		{Date: testNextMonday, StartTime: "half past noon", DurationMinutes: 60, Status: "confirmed"},
	}

	result := ValidateBooking(Candidate{
		Date:            testNextMonday,
		StartTime:       "11:00 AM",
		DurationMinutes: 60,
	}, mondayWeek, existing, testNow)

	// Испорченная запись истории не блокирует кандидата
	assert.True(t, result.IsValid, "errors: %v", result.Errors)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "skipped malformed existing booking")
}

func TestValidateBooking_SameDayShortNoticeIsWarningOnly(t *testing.T) {
	// Сейчас вторник 09:00, бронирование сегодня на 10:00 - меньше 2 часов
	week := WeeklyAvailability{
		{Day: "Tuesday", From: "8:00 AM", Until: "10:00 PM"},
	}
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	result := ValidateBooking(Candidate{
		Date:            today,
		StartTime:       "10:00 AM",
		DurationMinutes: 60,
	}, week, nil, testNow)

	assert.True(t, result.IsValid, "errors: %v", result.Errors)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "less than 2 hours notice")
}

func TestValidateBooking_Idempotent(t *testing.T) {
	existing := []ExistingBooking{
		{Date: testNextMonday, StartTime: "2:00 PM", DurationMinutes: 120, Status: "pending"},
	}
	candidate := Candidate{
		Date:            testNextMonday,
		StartTime:       "3:00 PM",
		DurationMinutes: 60,
	}

	first := ValidateBooking(candidate, mondayWeek, existing, testNow)
	second := ValidateBooking(candidate, mondayWeek, existing, testNow)

	assert.Equal(t, first, second)
}
