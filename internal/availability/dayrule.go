package availability

import (
	"time"

	"github.com/d1mayak/CPB-AvailabilityService/pkg/types"
)

// NormalizeDayRule нормализует сырое правило дня в аннотированную форму.
//
// Порядок проверок:
//  1. Нет правила или нет названия дня — недоступен
//  2. Явный флаг Unavailable — недоступен, время не проверяется
//  3. From/Until должны разбираться в одном из поддерживаемых форматов
//  4. Until должен быть строго позже From
//
// Правило с пустым или нечитаемым временем считается закрытым,
// окно по умолчанию здесь не подставляется — это забота границы
// приёма расписания, движок с дефолтами не угадывает
func NormalizeDayRule(rule *DayRule) DayAvailability {
	if rule == nil {
		return DayAvailability{IsAvailable: false, Reason: ReasonNoRule}
	}
	if rule.Day == "" {
		return DayAvailability{Rule: rule, IsAvailable: false, Reason: ReasonMissingDay}
	}
	if rule.Unavailable {
		return DayAvailability{Rule: rule, IsAvailable: false, Reason: ReasonMarkedUnavailable}
	}

	from, errFrom := types.ParseClockText(rule.From)
	until, errUntil := types.ParseClockText(rule.Until)
	if errFrom != nil || errUntil != nil {
		return DayAvailability{Rule: rule, IsAvailable: false, Reason: ReasonInvalidTimeFormat}
	}

	// Инвертированное или пустое окно не обрезаем молча — день закрыт
	if !until.IsAfter(from) {
		return DayAvailability{Rule: rule, IsAvailable: false, Reason: ReasonInvalidTimeRange}
	}

	return DayAvailability{
		Rule:        rule,
		IsAvailable: true,
		From:        from,
		Until:       until,
	}
}

// AvailabilityFor возвращает нормализованное правило для дня недели даты
func AvailabilityFor(date time.Time, week WeeklyAvailability) DayAvailability {
	return NormalizeDayRule(DayRuleFor(date, week))
}
