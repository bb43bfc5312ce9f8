package create_booking

import (
	"time"

	"github.com/d1mayak/CPB-AvailabilityService/internal/domain"
	createBooking "github.com/d1mayak/CPB-AvailabilityService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CompanionID     int64   `json:"companionId"`
	BookingDate     string  `json:"bookingDate"` // "2026-09-07"
	StartTime       string  `json:"startTime"`   // "2:30 PM", "14:30", "2PM", ...
	DurationMinutes int     `json:"durationMinutes"`
	MeetingPlace    *string `json:"meetingPlace,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64    `json:"id"`
	ClientID        int64    `json:"clientId"`
	CompanionID     int64    `json:"companionId"`
	BookingDate     string   `json:"bookingDate"`
	StartTime       string   `json:"startTime"`
	DurationMinutes int      `json:"durationMinutes"`
	Status          string   `json:"status"`
	CompanionName   string   `json:"companionName"`
	RatePerHour     float64  `json:"ratePerHour"`
	MeetingPlace    *string  `json:"meetingPlace,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	Warnings        []string `json:"warnings,omitempty"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// ValidationErrorResponse ответ 422 с полным списком причин отказа
type ValidationErrorResponse struct {
	Error    string   `json:"error"`
	Reasons  []string `json:"reasons"`
	Warnings []string `json:"warnings,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(clientID int64) (*createBooking.Request, error) {
	var bookingDate time.Time
	if r.BookingDate != "" {
		parsed, err := time.Parse(domain.DateFormat, r.BookingDate)
		if err != nil {
			return nil, err
		}
		bookingDate = parsed
	}

	return &createBooking.Request{
		ClientID:        clientID,
		CompanionID:     r.CompanionID,
		Date:            bookingDate,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
		MeetingPlace:    r.MeetingPlace,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		CompanionID:     resp.CompanionID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		CompanionName:   resp.CompanionName,
		RatePerHour:     resp.RatePerHour,
		MeetingPlace:    resp.MeetingPlace,
		Notes:           resp.Notes,
		Warnings:        resp.Warnings,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
