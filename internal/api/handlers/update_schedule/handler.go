package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/d1mayak/CPB-AvailabilityService/internal/api/handlers"
	"github.com/d1mayak/CPB-AvailabilityService/internal/api/middleware"
	"github.com/d1mayak/CPB-AvailabilityService/internal/service/schedule"
	"github.com/d1mayak/CPB-AvailabilityService/internal/service/schedule/models"
)

const (
	msgInvalidCompanionID = "некорректный ID собеседника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgInvalidRule        = "некорректное правило расписания"
	msgDuplicateDay       = "в расписании два правила на один день недели"
)

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	Days []models.DayRuleRequest `json:"days"`
}

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

// Handle PUT /api/v1/companions/{companionId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем companionId из URL
	vars := mux.Vars(r)
	companionIDStr := vars["companionId"]

	companionID, err := strconv.ParseInt(companionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /companions/{id}/schedule - Invalid companion ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanionID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /companions/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /companions/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Обновляем расписание
	week, err := h.service.UpdateWeek(r.Context(), &models.UpdateWeekRequest{
		UserID:      userID,
		CompanionID: companionID,
		Days:        req.Days,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /companions/{id}/schedule - Access denied: companion_id=%d, user_id=%d",
				companionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrDuplicateDay):
			h.logger.Warn("PUT /companions/{id}/schedule - Duplicate day: companion_id=%d, error=%v",
				companionID, err)
			handlers.RespondBadRequest(w, msgDuplicateDay)

		case errors.Is(err, schedule.ErrInvalidRule), errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /companions/{id}/schedule - Invalid rule: companion_id=%d, error=%v",
				companionID, err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		default:
			h.logger.Error("PUT /companions/{id}/schedule - Failed to update schedule: companion_id=%d, error=%v",
				companionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /companions/{id}/schedule - Schedule updated successfully: companion_id=%d, rules=%d",
		companionID, len(week.Days))
	handlers.RespondJSON(w, http.StatusOK, week)
}
