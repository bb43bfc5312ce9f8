package availability

import (
	"strings"
	"time"
)

// weekdayNames сопоставление канонических английских названий дням недели
var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday разбирает название дня недели без учета регистра
func ParseWeekday(name string) (time.Weekday, bool) {
	day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	return day, ok
}

// DayNameOf возвращает каноническое английское название дня недели даты.
// Не зависит от локали: правила расписания сопоставляются по имени дня,
// поэтому название должно быть стабильным
func DayNameOf(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Weekday().String()
}

// DayRuleFor возвращает правило для дня недели даты или nil.
// Сопоставление по названию дня без учета регистра, первое совпадение выигрывает
func DayRuleFor(date time.Time, week WeeklyAvailability) *DayRule {
	if date.IsZero() {
		return nil
	}

	weekday := date.Weekday()
	for i := range week {
		ruleDay, ok := ParseWeekday(week[i].Day)
		if !ok {
			continue
		}
		if ruleDay == weekday {
			return &week[i]
		}
	}
	return nil
}
