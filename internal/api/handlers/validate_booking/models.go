package validate_booking

import (
	"time"

	"github.com/d1mayak/CPB-AvailabilityService/internal/domain"
	validateBooking "github.com/d1mayak/CPB-AvailabilityService/internal/usecase/validate_booking"
)

// ValidateBookingRequest HTTP request model
// Дата, время и длительность могут отсутствовать: движок доступности
// вернет их отсутствие накопленными ошибками, а не 400
type ValidateBookingRequest struct {
	CompanionID     int64  `json:"companionId"`
	BookingDate     string `json:"bookingDate"` // "2026-09-07"
	StartTime       string `json:"startTime"`   // "2:30 PM", "14:30", "2PM", ...
	DurationMinutes int    `json:"durationMinutes"`
}

// WindowResponse окно дня в HTTP-ответе
type WindowResponse struct {
	From          string  `json:"from"` // ISO 8601
	Until         string  `json:"until"`
	FromClock     string  `json:"fromClock"` // "10:00 AM"
	UntilClock    string  `json:"untilClock"`
	DurationHours float64 `json:"durationHours"`
	IsToday       bool    `json:"isToday"`
}

// ValidateBookingResponse HTTP response model
type ValidateBookingResponse struct {
	IsValid         bool            `json:"isValid"`
	Errors          []string        `json:"errors"`
	Warnings        []string        `json:"warnings,omitempty"`
	BookingStart    string          `json:"bookingStart,omitempty"` // ISO 8601
	BookingEnd      string          `json:"bookingEnd,omitempty"`
	DurationMinutes int             `json:"durationMinutes"`
	Window          *WindowResponse `json:"window,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Некорректная дата не отклоняется: пустая дата превращается в zero time,
// и движок сообщает об этом своей ошибкой
func (r *ValidateBookingRequest) ToUseCaseRequest() (*validateBooking.Request, error) {
	var bookingDate time.Time
	if r.BookingDate != "" {
		parsed, err := time.Parse(domain.DateFormat, r.BookingDate)
		if err != nil {
			return nil, err
		}
		bookingDate = parsed
	}

	return &validateBooking.Request{
		CompanionID:     r.CompanionID,
		Date:            bookingDate,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validateBooking.Response) *ValidateBookingResponse {
	out := &ValidateBookingResponse{
		IsValid:         resp.IsValid,
		Errors:          resp.Errors,
		Warnings:        resp.Warnings,
		DurationMinutes: resp.DurationMinutes,
	}

	if out.Errors == nil {
		out.Errors = []string{}
	}

	if !resp.BookingStart.IsZero() {
		out.BookingStart = resp.BookingStart.Format(time.RFC3339)
	}
	if !resp.BookingEnd.IsZero() {
		out.BookingEnd = resp.BookingEnd.Format(time.RFC3339)
	}

	if resp.Window != nil {
		out.Window = &WindowResponse{
			From:          resp.Window.From.Format(time.RFC3339),
			Until:         resp.Window.Until.Format(time.RFC3339),
			FromClock:     resp.Window.FromClock,
			UntilClock:    resp.Window.UntilClock,
			DurationHours: resp.Window.DurationHours,
			IsToday:       resp.Window.IsToday,
		}
	}

	return out
}
