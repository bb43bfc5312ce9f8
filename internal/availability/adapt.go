package availability

import (
	"github.com/d1mayak/CPB-AvailabilityService/internal/domain"
)

// FromSchedule конвертирует хранимое недельное расписание во входной формат движка
func FromSchedule(week domain.WeeklySchedule) WeeklyAvailability {
	rules := make(WeeklyAvailability, 0, len(week))
	for _, rule := range week {
		dayRule := DayRule{
			Day:         rule.DayName,
			Unavailable: rule.IsUnavailable,
		}
		if rule.FromTime != nil {
			dayRule.From = rule.FromTime.String()
		}
		if rule.UntilTime != nil {
			dayRule.Until = rule.UntilTime.String()
		}
		rules = append(rules, dayRule)
	}
	return rules
}

// FromBookings конвертирует хранимые бронирования в существующие интервалы движка
func FromBookings(bookings []*domain.Booking) []ExistingBooking {
	existing := make([]ExistingBooking, 0, len(bookings))
	for _, b := range bookings {
		existing = append(existing, ExistingBooking{
			Date:            b.BookingDate,
			StartTime:       b.StartTime.String(),
			DurationMinutes: b.DurationMinutes,
			Status:          string(b.Status),
		})
	}
	return existing
}
