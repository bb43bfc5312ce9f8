package availability

import (
	"fmt"
	"strings"
	"time"

	"github.com/d1mayak/CPB-AvailabilityService/pkg/types"
)

// FindConflicts ищет пересечения кандидата [start, end) с существующими
// бронированиями и возвращает список описаний конфликтующих окон
// в формате "h:mm A - h:mm A".
//
// Пересечение считается по строгим неравенствам (полуоткрытые интервалы):
// кандидат конфликтует, только если start < existingEnd И end > existingStart.
// Границы, касающиеся друг друга, конфликтом не являются:
//   - кандидат 11:30-12:00, бронирование 11:00-11:30 → НЕТ конфликта
//   - кандидат 11:30-12:00, бронирование 11:40-12:10 → ЕСТЬ конфликт
//
// Бронирования со статусом cancelled/rejected/no_show пропускаются.
// Бронирования с нечитаемыми данными пропускаются и попадают в skipped —
// частично испорченная история не должна ронять валидацию кандидата
func FindConflicts(start, end time.Time, existing []ExistingBooking) (conflicts []string, skipped []string) {
	for i := range existing {
		booking := &existing[i]

		if isInactiveStatus(booking.Status) {
			continue
		}

		bookingStart, bookingEnd, err := bookingInterval(booking)
		if err != nil {
			skipped = append(skipped, fmt.Sprintf("skipped malformed existing booking: %v", err))
			continue
		}

		if start.Before(bookingEnd) && end.After(bookingStart) {
			conflicts = append(conflicts, fmt.Sprintf("%s - %s",
				types.Clock12(bookingStart), types.Clock12(bookingEnd)))
		}
	}

	return conflicts, skipped
}

// bookingInterval вычисляет абсолютный интервал существующего бронирования:
// либо из явной пары Start/End, либо из Date + StartTime + DurationMinutes
func bookingInterval(booking *ExistingBooking) (time.Time, time.Time, error) {
	if !booking.Start.IsZero() && !booking.End.IsZero() {
		if !booking.End.After(booking.Start) {
			return time.Time{}, time.Time{}, fmt.Errorf("end %s is not after start %s",
				booking.End.Format(time.RFC3339), booking.Start.Format(time.RFC3339))
		}
		return booking.Start, booking.End, nil
	}

	if booking.Date.IsZero() {
		return time.Time{}, time.Time{}, fmt.Errorf("booking has no date")
	}

	clock, err := types.ParseClockText(booking.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("unparsable start time %q", booking.StartTime)
	}

	start, err := clock.OnDate(booking.Date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if booking.DurationMinutes <= 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("non-positive duration %d", booking.DurationMinutes)
	}

	return start, start.Add(time.Duration(booking.DurationMinutes) * time.Minute), nil
}

// isInactiveStatus проверяет, что бронирование не занимает свое окно
func isInactiveStatus(status string) bool {
	normalized := strings.ToLower(strings.TrimSpace(status))
	return strings.HasPrefix(normalized, "cancelled") ||
		normalized == "rejected" ||
		normalized == "no_show"
}
