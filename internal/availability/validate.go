package availability

import (
	"fmt"
	"strings"
	"time"

	"github.com/d1mayak/CPB-AvailabilityService/pkg/types"
)

// Сообщения об ошибках валидации (показываются пользователю как есть)
const (
	errDateRequired      = "date is required"
	errStartTimeRequired = "start time is required"
	errDurationRequired  = "duration is required"
	errInvalidStartTime  = "invalid start time format"
	errInvalidDuration   = "duration must be a positive number of minutes"
	errMaxDuration       = "maximum duration exceeded: bookings are limited to 12 hours"
	errDateNotAvailable  = "selected date is not available"
	errNoTimeSlots       = "no available time slots for this date"
)

// ValidateBooking выполняет полную валидацию кандидата на бронирование
// против недельного расписания и существующих бронирований.
//
// Структурные ошибки (шаги 1-3) прерывают проверку сразу; недоступность
// даты и отсутствие окна (шаги 4-5) возвращают единственную блокирующую
// ошибку; граничные ошибки окна и конфликты (шаги 6-9) накапливаются
// и могут вернуться вместе. Недостаточное уведомление для бронирования
// на сегодня — предупреждение, а не ошибка: решение остается за клиентом.
//
// Все проблемы возвращаются данными в Result, функция не паникует
// и не пишет в лог — испорченные записи истории попадают в Warnings
func ValidateBooking(candidate Candidate, week WeeklyAvailability, existing []ExistingBooking, now time.Time) Result {
	result := Result{}

	// 1. Обязательные поля; перечисляем все отсутствующие сразу
	if candidate.Date.IsZero() {
		result.Errors = append(result.Errors, errDateRequired)
	}
	if candidate.StartTime == "" && candidate.StartAt.IsZero() {
		result.Errors = append(result.Errors, errStartTimeRequired)
	}
	if candidate.DurationMinutes == 0 {
		result.Errors = append(result.Errors, errDurationRequired)
	}
	if len(result.Errors) > 0 {
		return result
	}

	// 2. Разбираем время начала: текст в приоритете, иначе берем
	// уже структурированное значение
	var startClock types.TimeString
	if candidate.StartTime != "" {
		parsed, err := types.ParseClockText(candidate.StartTime)
		if err != nil {
			result.Errors = append(result.Errors, errInvalidStartTime)
			return result
		}
		startClock = parsed
	} else {
		startClock = types.NewTimeString(candidate.StartAt)
	}

	// 3. Длительность: строго положительная, не больше максимума
	if candidate.DurationMinutes < 0 {
		result.Errors = append(result.Errors, errInvalidDuration)
		return result
	}
	if candidate.DurationMinutes > MaxDurationMinutes {
		result.Errors = append(result.Errors, errMaxDuration)
		return result
	}
	result.DurationMinutes = candidate.DurationMinutes

	// 4. Доступность даты на уровне дня
	if !IsDateAvailable(candidate.Date, week, now) {
		result.Errors = append(result.Errors, errDateNotAvailable)
		return result
	}

	// 5. Доступное окно на дату (для сегодня — с учетом минимального уведомления)
	window, ok := DayWindowFor(candidate.Date, week, now)
	if !ok {
		result.Errors = append(result.Errors, errNoTimeSlots)
		return result
	}
	result.Window = window

	// 6. Абсолютные границы кандидата
	bookingStart, err := startClock.OnDate(candidate.Date)
	if err != nil {
		result.Errors = append(result.Errors, errInvalidStartTime)
		return result
	}
	bookingEnd := bookingStart.Add(time.Duration(candidate.DurationMinutes) * time.Minute)
	result.BookingStart = bookingStart
	result.BookingEnd = bookingEnd

	// 7. Номинальное окно правила, перенесенное на дату кандидата.
	// Для границ используем именно номинальное окно, а не сдвинутое
	// уведомлением: недостаточное уведомление дает предупреждение (шаг 10),
	// а не ошибку границы
	avail := AvailabilityFor(candidate.Date, week)
	availableStart, _ := avail.From.OnDate(candidate.Date)
	availableEnd, _ := avail.Until.OnDate(candidate.Date)

	// 8. Границы окна; обе проверки выполняются всегда,
	// обе ошибки могут попасть в результат вместе
	if bookingStart.Before(availableStart) {
		result.Errors = append(result.Errors,
			fmt.Sprintf("start time must be after %s", types.Clock12(availableStart)))
	}
	if bookingEnd.After(availableEnd) {
		result.Errors = append(result.Errors,
			fmt.Sprintf("end time must be before %s", types.Clock12(availableEnd)))
	}

	// 9. Конфликты с существующими бронированиями: одна ошибка
	// со списком всех конфликтующих окон
	conflicts, skipped := FindConflicts(bookingStart, bookingEnd, existing)
	result.Warnings = append(result.Warnings, skipped...)
	if len(conflicts) > 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("conflicts with existing bookings: %s", strings.Join(conflicts, ", ")))
	}

	// 10. Короткое уведомление для бронирования на сегодня — предупреждение
	if isSameDay(candidate.Date, now) && bookingStart.Sub(now) < MinNoticeHours*time.Hour {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("less than %d hours notice before the requested start time", MinNoticeHours))
	}

	result.IsValid = len(result.Errors) == 0
	return result
}
