package domain

// Default availability window, substituted when a companion enables a day
// without specifying times. Применяется один раз на границе приёма расписания,
// движок доступности никогда не подставляет окно сам.
const (
	DefaultWindowFrom  = "10:00" // 10:00 AM
	DefaultWindowUntil = "22:00" // 10:00 PM
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxMeetingPlaceLength       = 200
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не блокирующих временное окно
// Используется при проверке конфликтов бронирований
var InactiveStatuses = []BookingStatus{
	StatusCancelledByClient,
	StatusCancelledByCompanion,
	StatusRejected,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
