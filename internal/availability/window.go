package availability

import (
	"time"

	"github.com/d1mayak/CPB-AvailabilityService/pkg/types"
)

// DayWindowFor вычисляет доступное окно на конкретную дату.
//
// Окно правила переносится на целевую дату. Если дата — сегодня,
// эффективное начало сдвигается вперед до now + MinNoticeHours,
// округленного вверх до целого часа, когда это позже номинального начала.
// Если после сдвига начало не раньше конца — свободного времени
// на день не осталось, окна нет
func DayWindowFor(date time.Time, week WeeklyAvailability, now time.Time) (*DayWindow, bool) {
	avail := AvailabilityFor(date, week)
	if !avail.IsAvailable {
		return nil, false
	}

	from, err := avail.From.OnDate(date)
	if err != nil {
		return nil, false
	}
	until, err := avail.Until.OnDate(date)
	if err != nil {
		return nil, false
	}

	isToday := isSameDay(date, now)
	if isToday {
		earliest := roundUpToHour(now.Add(MinNoticeHours * time.Hour))
		if earliest.After(from) {
			from = earliest
		}
	}

	if !from.Before(until) {
		return nil, false
	}

	return &DayWindow{
		From:          from,
		Until:         until,
		FromClock:     types.Clock12(from),
		UntilClock:    types.Clock12(until),
		DurationHours: until.Sub(from).Hours(),
		IsToday:       isToday,
		NoticeHours:   MinNoticeHours,
	}, true
}

// EnumerateSlots генерирует кандидатов времени начала внутри дневного окна
// с шагом intervalMinutes. Каждый слот аннотирован максимальной доступной
// длительностью (минуты до закрытия окна); слоты короче minDurationMinutes
// в выдачу не попадают.
//
// Чистая функция своих аргументов — перечисление можно перезапускать
// с теми же входами и получать тот же результат
func EnumerateSlots(date time.Time, week WeeklyAvailability, now time.Time, intervalMinutes, minDurationMinutes int) []Slot {
	if intervalMinutes <= 0 {
		intervalMinutes = DefaultIntervalMinutes
	}
	if minDurationMinutes <= 0 {
		minDurationMinutes = DefaultMinSlotDurationMinutes
	}

	window, ok := DayWindowFor(date, week, now)
	if !ok {
		return nil
	}

	interval := time.Duration(intervalMinutes) * time.Minute
	var slots []Slot

	for start := window.From; start.Before(window.Until); start = start.Add(interval) {
		maxDuration := int(window.Until.Sub(start) / time.Minute)
		if maxDuration < minDurationMinutes {
			break
		}
		slots = append(slots, Slot{
			Start:              start,
			Clock:              types.Clock12(start),
			MaxDurationMinutes: maxDuration,
		})
	}

	return slots
}
