package get_next_slot

import "time"

// Request модель запроса на поиск ближайшего свободного слота
type Request struct {
	CompanionID     int64 // ID собеседника
	DurationMinutes int   // Желаемая длительность; 0 означает минимальную (60 минут)
}

// Response найденный ближайший свободный слот
type Response struct {
	CompanionID     int64     // ID собеседника
	Date            time.Time // Дата слота
	Start           time.Time // Абсолютное время начала
	DayName         string    // Название дня недели
	Clock           string    // Время начала для отображения ("10:00 AM")
	DurationMinutes int       // Длительность слота
	Description     string    // Человекочитаемое описание ("Monday, Sep 7 at 10:00 AM")
}
