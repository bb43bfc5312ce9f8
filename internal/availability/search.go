package availability

import (
	"fmt"
	"time"
)

// NextAvailableSlot ищет самый ранний свободный слот запрошенной длительности
// в пределах горизонта DefaultHorizonDays, начиная с сегодняшнего дня.
//
// Линейный короткозамкнутый проход: дни по порядку, внутри дня слоты
// по порядку, первый слот без конфликтов выигрывает. Оптимальность
// не ищется — только первый подходящий вариант
func NextAvailableSlot(week WeeklyAvailability, existing []ExistingBooking, durationMinutes int, now time.Time) (*NextSlot, bool) {
	if durationMinutes <= 0 {
		durationMinutes = DefaultMinSlotDurationMinutes
	}

	duration := time.Duration(durationMinutes) * time.Minute
	today := startOfDay(now)

	for offset := 0; offset < DefaultHorizonDays; offset++ {
		date := today.AddDate(0, 0, offset)

		if !IsDateAvailable(date, week, now) {
			continue
		}

		slots := EnumerateSlots(date, week, now, DefaultIntervalMinutes, durationMinutes)
		for _, slot := range slots {
			conflicts, _ := FindConflicts(slot.Start, slot.Start.Add(duration), existing)
			if len(conflicts) > 0 {
				continue
			}

			dayName := DayNameOf(date)
			return &NextSlot{
				Date:            date,
				Start:           slot.Start,
				DayName:         dayName,
				Clock:           slot.Clock,
				DurationMinutes: durationMinutes,
				Description:     fmt.Sprintf("%s, %s at %s", dayName, date.Format("Jan 2"), slot.Clock),
			}, true
		}
	}

	return nil, false
}
