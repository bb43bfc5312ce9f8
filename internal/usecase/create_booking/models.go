package create_booking

import (
	"time"

	"github.com/d1mayak/CPB-AvailabilityService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	ClientID        int64     // ID клиента
	CompanionID     int64     // ID собеседника
	Date            time.Time // Дата бронирования (без времени)
	StartTime       string    // Время начала в любом поддерживаемом формате ("2:30 PM", "14:30", ...)
	DurationMinutes int       // Длительность в минутах
	MeetingPlace    *string   // Место встречи (опционально, по умолчанию из профиля собеседника)
	Notes           *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	ClientID        int64            // ID клиента
	CompanionID     int64            // ID собеседника
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Нормализованное время начала ("14:30")
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования

	// Денормализованные данные
	CompanionName string  // Имя собеседника
	RatePerHour   float64 // Ставка в час на момент бронирования
	MeetingPlace  *string // Место встречи
	Notes         *string // Заметки

	Warnings []string // Предупреждения движка доступности (не блокируют создание)

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
