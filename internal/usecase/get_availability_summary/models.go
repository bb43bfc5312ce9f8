package get_availability_summary

import "time"

// MaxRangeDays максимальная длина запрашиваемого периода в днях
const MaxRangeDays = 31

// Request модель запроса сводки доступности за период
type Request struct {
	CompanionID int64     // ID собеседника
	StartDate   time.Time // Первая дата периода (включительно)
	EndDate     time.Time // Последняя дата периода (включительно)
}

// Response модель ответа со сводкой по дням
type Response struct {
	CompanionID int64        // ID собеседника
	StartDate   time.Time    // Первая дата периода
	EndDate     time.Time    // Последняя дата периода
	Days        []DaySummary // По одной записи на каждую дату периода
}

// DaySummary сводка доступности на одну дату
type DaySummary struct {
	Date        time.Time // Дата
	DayName     string    // Название дня недели
	Status      string    // past / unavailable / blocked / available_today / no_time_left / available
	IsPast      bool      // Дата раньше сегодняшней
	IsAvailable bool      // Доступен ли день для бронирования
	FromClock   string    // Начало окна для отображения (пустая строка, если окна нет)
	UntilClock  string    // Конец окна для отображения
}
