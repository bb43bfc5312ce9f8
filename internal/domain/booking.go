package domain

import (
	"time"

	"github.com/d1mayak/CPB-AvailabilityService/pkg/types"
)

// BookingStatus represents the status of a booking request
type BookingStatus string

const (
	StatusPending              BookingStatus = "pending"
	StatusConfirmed            BookingStatus = "confirmed"
	StatusCompleted            BookingStatus = "completed"
	StatusRejected             BookingStatus = "rejected"
	StatusCancelledByClient    BookingStatus = "cancelled_by_client"
	StatusCancelledByCompanion BookingStatus = "cancelled_by_companion"
	StatusNoShow               BookingStatus = "no_show"
)

// Booking represents a client's booking of a companion's time
type Booking struct {
	ID              int64
	ClientID        int64
	CompanionID     int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Denormalized data for history
	CompanionName string
	RatePerHour   float64
	MeetingPlace  *string
	Notes         *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its time window.
// Cancelled, rejected and no-show bookings do not block other candidates.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByClient &&
		b.Status != StatusCancelledByCompanion &&
		b.Status != StatusRejected &&
		b.Status != StatusNoShow
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeResponded returns true if the companion can still confirm or reject the request
func (b *Booking) CanBeResponded() bool {
	return b.Status == StatusPending
}

// IsCancelled returns true if the booking has been cancelled by either side
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByClient || b.Status == StatusCancelledByCompanion
}

// StartAt returns the absolute start timestamp of the booking
func (b *Booking) StartAt() (time.Time, error) {
	return b.StartTime.OnDate(b.BookingDate)
}

// EndAt returns the absolute end timestamp of the booking
func (b *Booking) EndAt() (time.Time, error) {
	start, err := b.StartAt()
	if err != nil {
		return time.Time{}, err
	}
	return start.Add(time.Duration(b.DurationMinutes) * time.Minute), nil
}

// CompanionBookingsFilter фильтр для получения бронирований собеседника
type CompanionBookingsFilter struct {
	CompanionID     int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально, если nil - без ограничения)
	EndDate         *time.Time     // Конец периода (опционально, если nil - без ограничения)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли неактивные бронирования (отмененные, rejected, no-show)
}
