// Package availability реализует движок проверки доступности бронирований:
// разбор расписания на неделю, вычисление окон и слотов на конкретную дату,
// полную валидацию кандидата с накоплением ошибок, поиск конфликтов
// с существующими бронированиями и поиск ближайшего свободного слота.
//
// Все функции пакета чистые: не держат состояния, не делают I/O и получают
// текущее время явным аргументом. Пакет безопасно вызывать конкурентно.
package availability

import (
	"time"

	"github.com/d1mayak/CPB-AvailabilityService/pkg/types"
)

// Правила бронирования
const (
	// MaxDurationMinutes максимальная длительность бронирования (12 часов)
	MaxDurationMinutes = 720

	// MinNoticeHours минимальное время между "сейчас" и началом бронирования сегодня
	MinNoticeHours = 2

	// DefaultIntervalMinutes шаг сетки слотов
	DefaultIntervalMinutes = 30

	// DefaultMinSlotDurationMinutes минимальная длительность, при которой слот попадает в выдачу
	DefaultMinSlotDurationMinutes = 60

	// DefaultHorizonDays горизонт поиска ближайшего свободного слота
	DefaultHorizonDays = 14
)

// DayRule сырое правило доступности на один день недели,
// как его присылает клиент или хранит расписание
type DayRule struct {
	Day         string // Название дня недели, регистр не важен
	Unavailable bool   // Явная блокировка дня, приоритетнее времени
	From        string // Время начала в любом поддерживаемом формате ("10:00 AM", "22:00", "10AM", ...)
	Until       string // Время окончания
}

// WeeklyAvailability расписание на неделю: не более одного правила на день.
// День недели без правила считается недоступным.
type WeeklyAvailability []DayRule

// Причины недоступности дня после нормализации правила
const (
	ReasonNoRule            = "no availability rule for this day"
	ReasonMissingDay        = "rule has no day name"
	ReasonMarkedUnavailable = "day is marked unavailable"
	ReasonInvalidTimeFormat = "invalid time format"
	ReasonInvalidTimeRange  = "invalid time range"
)

// DayAvailability нормализованное правило дня
// From/Until валидны только при IsAvailable = true
type DayAvailability struct {
	Rule        *DayRule // nil, если правила для этого дня недели нет вовсе
	IsAvailable bool
	Reason      string // Причина недоступности, пустая строка при IsAvailable = true
	From        types.TimeString
	Until       types.TimeString
}

// Candidate кандидат на бронирование
// Время начала задается либо текстом (StartTime), либо уже разобранным
// значением (StartAt); текст имеет приоритет
type Candidate struct {
	Date            time.Time
	StartTime       string
	StartAt         time.Time
	DurationMinutes int
}

// ExistingBooking существующее бронирование для проверки конфликтов.
// Интервал задается либо явной парой Start/End, либо тройкой
// Date + StartTime + DurationMinutes
type ExistingBooking struct {
	Start           time.Time
	End             time.Time
	Date            time.Time
	StartTime       string
	DurationMinutes int
	Status          string // cancelled/rejected бронирования не участвуют в проверке
}

// DayWindow доступное окно на конкретную дату
type DayWindow struct {
	From          time.Time
	Until         time.Time
	FromClock     string // "h:mm A", для отображения
	UntilClock    string
	DurationHours float64
	IsToday       bool
	NoticeHours   int // Использованная константа минимального уведомления
}

// Slot кандидат времени начала внутри дневного окна
type Slot struct {
	Start              time.Time
	Clock              string // "h:mm A"
	MaxDurationMinutes int    // Сколько минут остается до закрытия окна
}

// Result результат полной валидации бронирования
// BookingStart/BookingEnd и Window заполняются, когда их удалось вычислить,
// независимо от итоговой валидности — UI показывает их вместе с ошибками
type Result struct {
	IsValid         bool
	Errors          []string
	Warnings        []string
	BookingStart    time.Time
	BookingEnd      time.Time
	DurationMinutes int
	Window          *DayWindow
}

// NextSlot найденный ближайший свободный слот
type NextSlot struct {
	Date            time.Time
	Start           time.Time
	DayName         string
	Clock           string // "h:mm A"
	DurationMinutes int
	Description     string // Например "Monday, Jan 5 at 10:00 AM"
}

// DayStatus грубая классификация даты
type DayStatus string

const (
	DayStatusPast           DayStatus = "past"            // Дата раньше сегодняшней
	DayStatusUnavailable    DayStatus = "unavailable"     // Правила для дня недели нет
	DayStatusBlocked        DayStatus = "blocked"         // Правило есть, но день закрыт или правило некорректно
	DayStatusAvailableToday DayStatus = "available_today" // Сегодня, время еще осталось
	DayStatusNoTimeLeft     DayStatus = "no_time_left"    // Сегодня, доступного времени не осталось
	DayStatusAvailable      DayStatus = "available"       // Будущий открытый день
)

// DaySummary строка сводки доступности на одну дату
type DaySummary struct {
	Date        time.Time
	DayName     string
	IsPast      bool
	IsAvailable bool
	Window      *DayWindow // nil, если день недоступен
	Status      DayStatus
}
