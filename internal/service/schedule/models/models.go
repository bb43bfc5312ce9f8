package models

import (
	"github.com/d1mayak/CPB-AvailabilityService/internal/domain"
	"github.com/d1mayak/CPB-AvailabilityService/pkg/types"
)

// Request модели

// DayRuleRequest правило доступности на один день недели, как его присылает клиент.
// Флаг unavailable принимается в любом историческом виде (true/1/"1"),
// время - в любом поддерживаемом формате ("10:00 AM", "22:00", "10AM", ...)
type DayRuleRequest struct {
	Day         string         `json:"day"`
	Unavailable types.FlexBool `json:"unavailable"`
	From        string         `json:"from"`
	Until       string         `json:"until"`
}

// UpdateWeekRequest запрос на полную замену недельного расписания
type UpdateWeekRequest struct {
	UserID      int64            `json:"userId"`
	CompanionID int64            `json:"companionId"`
	Days        []DayRuleRequest `json:"days"`
}

// Response модели

// DayRuleResponse правило доступности в нормализованном виде
type DayRuleResponse struct {
	Day         string `json:"day"`
	Unavailable bool   `json:"unavailable"`
	From        string `json:"from,omitempty"`       // "10:00"
	Until       string `json:"until,omitempty"`      // "18:00"
	FromClock   string `json:"fromClock,omitempty"`  // "10:00 AM"
	UntilClock  string `json:"untilClock,omitempty"` // "6:00 PM"
}

// WeekResponse недельное расписание
type WeekResponse struct {
	CompanionID int64             `json:"companionId"`
	Days        []DayRuleResponse `json:"days"`
}

// FromDomainWeek конвертирует domain модель в DTO
func FromDomainWeek(companionID int64, week domain.WeeklySchedule) *WeekResponse {
	resp := &WeekResponse{
		CompanionID: companionID,
		Days:        make([]DayRuleResponse, 0, len(week)),
	}

	for _, rule := range week {
		day := DayRuleResponse{
			Day:         rule.DayName,
			Unavailable: rule.IsUnavailable,
		}
		if rule.FromTime != nil {
			day.From = rule.FromTime.String()
			day.FromClock = rule.FromTime.Clock12()
		}
		if rule.UntilTime != nil {
			day.Until = rule.UntilTime.String()
			day.UntilClock = rule.UntilTime.Clock12()
		}
		resp.Days = append(resp.Days, day)
	}

	return resp
}
