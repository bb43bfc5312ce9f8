package get_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/d1mayak/CPB-AvailabilityService/internal/api/handlers"
	"github.com/d1mayak/CPB-AvailabilityService/internal/service/schedule"
)

const (
	msgInvalidCompanionID = "некорректный ID собеседника"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/companions/{companionId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем companionId из URL
	vars := mux.Vars(r)
	companionIDStr := vars["companionId"]

	companionID, err := strconv.ParseInt(companionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /companions/{id}/schedule - Invalid companion ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanionID)
		return
	}

	// Получаем расписание
	week, err := h.service.GetWeek(r.Context(), companionID)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidInput) {
			h.logger.Warn("GET /companions/{id}/schedule - Invalid input: companion_id=%d", companionID)
			handlers.RespondBadRequest(w, msgInvalidCompanionID)
			return
		}
		h.logger.Error("GET /companions/{id}/schedule - Failed to get schedule: companion_id=%d, error=%v",
			companionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /companions/{id}/schedule - Schedule retrieved successfully: companion_id=%d, rules=%d",
		companionID, len(week.Days))
	handlers.RespondJSON(w, http.StatusOK, week)
}
