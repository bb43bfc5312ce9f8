package availability

import "time"

// Summary строит посуточную сводку доступности для включительного
// диапазона дат. Каждая запись несет название дня, флаги прошедшей даты
// и доступности, вычисленное окно (если день открыт) и грубый статус
// для календарного UI
func Summary(startDate, endDate time.Time, week WeeklyAvailability, now time.Time) []DaySummary {
	if startDate.IsZero() || endDate.IsZero() {
		return nil
	}

	start := startOfDay(startDate)
	end := startOfDay(endDate)
	if end.Before(start) {
		return nil
	}

	var entries []DaySummary
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		entry := DaySummary{
			Date:    date,
			DayName: DayNameOf(date),
			IsPast:  isDateInPast(date, now),
			Status:  DateStatusOf(date, week, now),
		}

		entry.IsAvailable = IsDateAvailable(date, week, now)
		if entry.IsAvailable {
			if window, ok := DayWindowFor(date, week, now); ok {
				entry.Window = window
			}
		}

		entries = append(entries, entry)
	}

	return entries
}
