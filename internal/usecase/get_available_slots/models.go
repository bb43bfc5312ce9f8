package get_available_slots

import "time"

// Request модель запроса на получение слотов
type Request struct {
	CompanionID int64     // ID собеседника
	Date        time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	Date        time.Time // Дата, на которую запрашивались слоты
	CompanionID int64     // ID собеседника
	DayName     string    // Название дня недели
	IsAvailable bool      // Доступен ли день вообще
	Reason      string    // Причина недоступности (пустая строка, если день доступен)
	Slots       []Slot    // Список слотов внутри дневного окна
}

// Slot модель временного слота
type Slot struct {
	Start              time.Time // Абсолютное время начала
	Clock              string    // Время начала для отображения ("10:30 AM")
	MaxDurationMinutes int       // Сколько минут остается до закрытия окна
	IsFree             bool      // Свободен ли слот минимальной длительности от конфликтов
}
