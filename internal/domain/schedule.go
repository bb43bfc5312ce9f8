package domain

import (
	"time"

	"github.com/d1mayak/CPB-AvailabilityService/pkg/types"
)

// AvailabilityRule describes one weekday of a companion's weekly schedule.
// A weekday without a rule is implicitly unavailable.
type AvailabilityRule struct {
	ID            int64
	CompanionID   int64
	DayName       string // Канонические английские названия: "Monday" ... "Sunday"
	FromTime      *types.TimeString
	UntilTime     *types.TimeString
	IsUnavailable bool // Явная блокировка дня, имеет приоритет над FromTime/UntilTime

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasWindow returns true if both window boundaries are set
func (r *AvailabilityRule) HasWindow() bool {
	return r.FromTime != nil && r.UntilTime != nil
}

// WeeklySchedule is the full weekly schedule of one companion,
// at most one rule per weekday
type WeeklySchedule []*AvailabilityRule

// RuleFor returns the rule for the given weekday name or nil
func (s WeeklySchedule) RuleFor(dayName string) *AvailabilityRule {
	for _, rule := range s {
		if rule.DayName == dayName {
			return rule
		}
	}
	return nil
}
