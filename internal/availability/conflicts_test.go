package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindConflicts_StrictOverlapOnly(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	existing := []ExistingBooking{
		{Start: day.Add(11 * time.Hour), End: day.Add(12 * time.Hour), Status: "confirmed"},
	}

	// Касание границ - не конфликт
	conflicts, skipped := FindConflicts(day.Add(10*time.Hour), day.Add(11*time.Hour), existing)
	assert.Empty(t, conflicts)
	assert.Empty(t, skipped)

	conflicts, _ = FindConflicts(day.Add(12*time.Hour), day.Add(13*time.Hour), existing)
	assert.Empty(t, conflicts)

	// Минутное пересечение - конфликт
	conflicts, _ = FindConflicts(day.Add(10*time.Hour), day.Add(11*time.Hour+time.Minute), existing)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "11:00 AM - 12:00 PM", conflicts[0])
}

func TestFindConflicts_DerivedFromDateTriple(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	existing := []ExistingBooking{
		{Date: day, StartTime: "2:00 PM", DurationMinutes: 90, Status: "pending"},
	}

	conflicts, _ := FindConflicts(day.Add(15*time.Hour), day.Add(16*time.Hour), existing)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "2:00 PM - 3:30 PM", conflicts[0])
}

func TestFindConflicts_AllOverlapsListed(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	existing := []ExistingBooking{
		{Date: day, StartTime: "10:00 AM", DurationMinutes: 60, Status: "confirmed"},
		{Date: day, StartTime: "11:30 AM", DurationMinutes: 60, Status: "pending"},
	}

	conflicts, _ := FindConflicts(day.Add(10*time.Hour+30*time.Minute), day.Add(12*time.Hour), existing)
	require.Len(t, conflicts, 2)
	assert.Equal(t, "10:00 AM - 11:00 AM", conflicts[0])
	assert.Equal(t, "11:30 AM - 12:30 PM", conflicts[1])
}

func TestFindConflicts_InactiveStatusesSkipped(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	existing := []ExistingBooking{
		{Date: day, StartTime: "11:00 AM", DurationMinutes: 60, Status: "cancelled_by_companion"},
		{Date: day, StartTime: "11:00 AM", DurationMinutes: 60, Status: "rejected"},
		{Date: day, StartTime: "11:00 AM", DurationMinutes: 60, Status: "no_show"},
	}

	conflicts, skipped := FindConflicts(day.Add(11*time.Hour), day.Add(12*time.Hour), existing)
	assert.Empty(t, conflicts)
	assert.Empty(t, skipped)
}

func TestFindConflicts_MalformedRecordsSkippedNotFatal(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	existing := []ExistingBooking{
		{Status: "confirmed"}, // нет ни пары Start/End, ни даты
		{Date: day, StartTime: "bogus", DurationMinutes: 60, Status: "confirmed"},
		{Date: day, StartTime: "11:00 AM", DurationMinutes: 0, Status: "confirmed"},
		{Date: day, StartTime: "11:00 AM", DurationMinutes: 60, Status: "confirmed"},
	}

	conflicts, skipped := FindConflicts(day.Add(11*time.Hour), day.Add(12*time.Hour), existing)
	require.Len(t, conflicts, 1)
	assert.Len(t, skipped, 3)
}

func TestFindConflicts_ExplicitPairValidated(t *testing.T) {
	day := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	existing := []ExistingBooking{
		// Конец раньше начала - запись испорчена
		{Start: day.Add(12 * time.Hour), End: day.Add(11 * time.Hour), Status: "confirmed"},
	}

	conflicts, skipped := FindConflicts(day.Add(11*time.Hour), day.Add(12*time.Hour), existing)
	assert.Empty(t, conflicts)
	assert.Len(t, skipped, 1)
}
