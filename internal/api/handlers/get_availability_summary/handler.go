package get_availability_summary

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/d1mayak/CPB-AvailabilityService/internal/api/handlers"
	"github.com/d1mayak/CPB-AvailabilityService/internal/domain"
	getAvailabilitySummary "github.com/d1mayak/CPB-AvailabilityService/internal/usecase/get_availability_summary"
)

const (
	msgInvalidCompanionID = "некорректный ID собеседника"
	msgMissingDates       = "параметры startDate и endDate обязательны"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRangeTooLarge      = "слишком длинный период"
	msgInvalidInput       = "некорректные входные данные"
)

// DaySummaryResponse HTTP модель сводки на один день
type DaySummaryResponse struct {
	Date        string `json:"date"` // "2026-09-07"
	DayName     string `json:"dayName"`
	Status      string `json:"status"`
	IsPast      bool   `json:"isPast"`
	IsAvailable bool   `json:"isAvailable"`
	FromClock   string `json:"fromClock,omitempty"`  // "10:00 AM"
	UntilClock  string `json:"untilClock,omitempty"` // "6:00 PM"
}

// SummaryResponse HTTP response model
type SummaryResponse struct {
	CompanionID int64                `json:"companionId"`
	StartDate   string               `json:"startDate"`
	EndDate     string               `json:"endDate"`
	Days        []DaySummaryResponse `json:"days"`
}

type Handler struct {
	useCase GetAvailabilitySummaryUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilitySummaryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/companions/{companionId}/availability
// Query params: startDate, endDate (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем companionId из URL
	companionIDStr := vars["companionId"]
	companionID, err := strconv.ParseInt(companionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /companions/{id}/availability - Invalid companion ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanionID)
		return
	}

	// Извлекаем период из query параметров
	query := r.URL.Query()
	startDateStr := query.Get("startDate")
	endDateStr := query.Get("endDate")
	if startDateStr == "" || endDateStr == "" {
		h.logger.Warn("GET /companions/{id}/availability - Missing dates")
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, startDateStr)
	if err != nil {
		h.logger.Warn("GET /companions/{id}/availability - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse(domain.DateFormat, endDateStr)
	if err != nil {
		h.logger.Warn("GET /companions/{id}/availability - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getAvailabilitySummary.Request{
		CompanionID: companionID,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailabilitySummary.ErrRangeTooLarge):
			h.logger.Warn("GET /companions/{id}/availability - Range too large: companion_id=%d", companionID)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getAvailabilitySummary.ErrInvalidInput):
			h.logger.Warn("GET /companions/{id}/availability - Invalid input: companion_id=%d, error=%v",
				companionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /companions/{id}/availability - Failed to build summary: companion_id=%d, error=%v",
				companionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := &SummaryResponse{
		CompanionID: result.CompanionID,
		StartDate:   result.StartDate.Format(domain.DateFormat),
		EndDate:     result.EndDate.Format(domain.DateFormat),
		Days:        make([]DaySummaryResponse, 0, len(result.Days)),
	}

	for _, day := range result.Days {
		response.Days = append(response.Days, DaySummaryResponse{
			Date:        day.Date.Format(domain.DateFormat),
			DayName:     day.DayName,
			Status:      day.Status,
			IsPast:      day.IsPast,
			IsAvailable: day.IsAvailable,
			FromClock:   day.FromClock,
			UntilClock:  day.UntilClock,
		})
	}

	h.logger.Info("GET /companions/{id}/availability - Summary built: companion_id=%d, days=%d",
		companionID, len(response.Days))
	handlers.RespondJSON(w, http.StatusOK, response)
}
