package availability

import "time"

// IsDateAvailable проверяет доступность даты на уровне дня:
// дата не в прошлом, правило для дня недели существует и корректно.
// Остаток времени на сегодня здесь не учитывается — это проверяется
// на уровне окна (DayWindowFor), чтобы "сегодня без свободного времени"
// давало свою собственную ошибку, а не общую "дата недоступна"
func IsDateAvailable(date time.Time, week WeeklyAvailability, now time.Time) bool {
	if date.IsZero() {
		return false
	}
	if isDateInPast(date, now) {
		return false
	}
	return AvailabilityFor(date, week).IsAvailable
}

// DateStatusOf классифицирует дату для календарного UI
func DateStatusOf(date time.Time, week WeeklyAvailability, now time.Time) DayStatus {
	if date.IsZero() || isDateInPast(date, now) {
		return DayStatusPast
	}

	avail := AvailabilityFor(date, week)
	if avail.Rule == nil {
		return DayStatusUnavailable
	}
	if !avail.IsAvailable {
		return DayStatusBlocked
	}

	if isSameDay(date, now) {
		if _, ok := DayWindowFor(date, week, now); !ok {
			return DayStatusNoTimeLeft
		}
		return DayStatusAvailableToday
	}

	return DayStatusAvailable
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	return startOfDay(date).Before(startOfDay(now))
}

// startOfDay возвращает полночь даты в её таймзоне
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// roundUpToHour округляет время вверх до ближайшего целого часа
func roundUpToHour(t time.Time) time.Time {
	truncated := t.Truncate(time.Hour)
	if truncated.Equal(t) {
		return t
	}
	return truncated.Add(time.Hour)
}
