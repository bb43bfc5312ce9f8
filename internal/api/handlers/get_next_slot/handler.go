package get_next_slot

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/d1mayak/CPB-AvailabilityService/internal/api/handlers"
	"github.com/d1mayak/CPB-AvailabilityService/internal/domain"
	getNextSlot "github.com/d1mayak/CPB-AvailabilityService/internal/usecase/get_next_slot"
)

const (
	msgInvalidCompanionID = "некорректный ID собеседника"
	msgInvalidDuration    = "некорректная длительность"
	msgNoSlots            = "нет свободных слотов в ближайшие две недели"
)

// NextSlotResponse HTTP response model
type NextSlotResponse struct {
	CompanionID     int64  `json:"companionId"`
	Date            string `json:"date"`  // "2026-09-07"
	Start           string `json:"start"` // ISO 8601
	DayName         string `json:"dayName"`
	Clock           string `json:"clock"` // "10:00 AM"
	DurationMinutes int    `json:"durationMinutes"`
	Description     string `json:"description"` // "Monday, Sep 7 at 10:00 AM"
}

type Handler struct {
	useCase GetNextSlotUseCase
	logger  Logger
}

func NewHandler(useCase GetNextSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/companions/{companionId}/next-slot
// Query params: duration - желаемая длительность в минутах (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем companionId из URL
	companionIDStr := vars["companionId"]
	companionID, err := strconv.ParseInt(companionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /companions/{id}/next-slot - Invalid companion ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanionID)
		return
	}

	// Извлекаем duration из query параметров (опционально)
	duration := 0
	if durationStr := r.URL.Query().Get("duration"); durationStr != "" {
		duration, err = strconv.Atoi(durationStr)
		if err != nil {
			h.logger.Warn("GET /companions/{id}/next-slot - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getNextSlot.Request{
		CompanionID:     companionID,
		DurationMinutes: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getNextSlot.ErrNoSlotsAvailable):
			h.logger.Info("GET /companions/{id}/next-slot - No slots: companion_id=%d", companionID)
			handlers.RespondNotFound(w, msgNoSlots)

		case errors.Is(err, getNextSlot.ErrInvalidInput):
			h.logger.Warn("GET /companions/{id}/next-slot - Invalid input: companion_id=%d, error=%v",
				companionID, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("GET /companions/{id}/next-slot - Failed to find slot: companion_id=%d, error=%v",
				companionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /companions/{id}/next-slot - Slot found: companion_id=%d, %s",
		companionID, result.Description)
	handlers.RespondJSON(w, http.StatusOK, &NextSlotResponse{
		CompanionID:     result.CompanionID,
		Date:            result.Date.Format(domain.DateFormat),
		Start:           result.Start.Format(time.RFC3339),
		DayName:         result.DayName,
		Clock:           result.Clock,
		DurationMinutes: result.DurationMinutes,
		Description:     result.Description,
	})
}
