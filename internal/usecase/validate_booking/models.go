package validate_booking

import "time"

// Request модель запроса на проверку кандидата бронирования
type Request struct {
	CompanionID     int64     // ID собеседника
	Date            time.Time // Дата бронирования (без времени)
	StartTime       string    // Время начала в любом поддерживаемом формате ("2:30 PM", "14:30", ...)
	DurationMinutes int       // Длительность в минутах
}

// Window доступное окно дня для отображения рядом с результатом
type Window struct {
	From          time.Time
	Until         time.Time
	FromClock     string // "h:mm A"
	UntilClock    string
	DurationHours float64
	IsToday       bool
}

// Response результат проверки: все найденные ошибки плюс предупреждения,
// не блокирующие бронирование
type Response struct {
	IsValid         bool
	Errors          []string
	Warnings        []string
	BookingStart    time.Time
	BookingEnd      time.Time
	DurationMinutes int
	Window          *Window
}
