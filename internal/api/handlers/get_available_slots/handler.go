package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/d1mayak/CPB-AvailabilityService/internal/api/handlers"
	getAvailableSlots "github.com/d1mayak/CPB-AvailabilityService/internal/usecase/get_available_slots"
)

const (
	msgInvalidCompanionID = "некорректный ID собеседника"
	msgMissingDate        = "дата обязательна"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/companions/{companionId}/slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем companionId из URL
	companionIDStr := vars["companionId"]
	companionID, err := strconv.ParseInt(companionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /companions/{id}/slots - Invalid companion ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanionID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /companions/{id}/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(companionID, dateStr)
	if err != nil {
		h.logger.Warn("GET /companions/{id}/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /companions/{id}/slots - Invalid input: companion_id=%d, error=%v",
				companionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /companions/{id}/slots - Failed to get slots: companion_id=%d, error=%v",
				companionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /companions/{id}/slots - Slots retrieved successfully: companion_id=%d, date=%s, count=%d",
		companionID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
