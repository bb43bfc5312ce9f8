package get_available_slots

import (
	"time"

	"github.com/d1mayak/CPB-AvailabilityService/internal/domain"
	getAvailableSlots "github.com/d1mayak/CPB-AvailabilityService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель слота
type SlotResponse struct {
	Start              string `json:"start"` // ISO 8601
	Clock              string `json:"clock"` // "10:30 AM"
	MaxDurationMinutes int    `json:"maxDurationMinutes"`
	IsFree             bool   `json:"isFree"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date        string         `json:"date"` // "2026-09-07"
	CompanionID int64          `json:"companionId"`
	DayName     string         `json:"dayName"`
	IsAvailable bool           `json:"isAvailable"`
	Reason      string         `json:"reason,omitempty"`
	Slots       []SlotResponse `json:"slots"`
}

// ToUseCaseRequest формирует запрос к use case из параметров URL
func ToUseCaseRequest(companionID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		CompanionID: companionID,
		Date:        date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	out := &SlotsResponse{
		Date:        resp.Date.Format(domain.DateFormat),
		CompanionID: resp.CompanionID,
		DayName:     resp.DayName,
		IsAvailable: resp.IsAvailable,
		Reason:      resp.Reason,
		Slots:       make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, slot := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			Start:              slot.Start.Format(time.RFC3339),
			Clock:              slot.Clock,
			MaxDurationMinutes: slot.MaxDurationMinutes,
			IsFree:             slot.IsFree,
		})
	}

	return out
}
