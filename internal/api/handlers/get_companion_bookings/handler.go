package get_companion_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/d1mayak/CPB-AvailabilityService/internal/api/handlers"
	"github.com/d1mayak/CPB-AvailabilityService/internal/api/middleware"
	"github.com/d1mayak/CPB-AvailabilityService/internal/domain"
	"github.com/d1mayak/CPB-AvailabilityService/internal/service/bookings"
	"github.com/d1mayak/CPB-AvailabilityService/internal/service/bookings/models"
)

const (
	msgInvalidCompanionID = "некорректный ID собеседника"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidFilter      = "некорректные параметры фильтрации"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/companions/{companionId}/bookings
// Query params: startDate, endDate (YYYY-MM-DD), status, includeInactive - все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем companionId из URL
	vars := mux.Vars(r)
	companionIDStr := vars["companionId"]

	companionID, err := strconv.ParseInt(companionIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /companions/{id}/bookings - Invalid companion ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanionID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /companions/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Разбираем query параметры фильтрации
	query := r.URL.Query()

	serviceReq := &models.GetCompanionBookingsRequest{
		UserID:          userID,
		CompanionID:     companionID,
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			h.logger.Warn("GET /companions/{id}/bookings - Invalid start date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		serviceReq.StartDate = &startDate
	}

	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			h.logger.Warn("GET /companions/{id}/bookings - Invalid end date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		serviceReq.EndDate = &endDate
	}

	if status := query.Get("status"); status != "" {
		serviceReq.Status = &status
	}

	// Получаем бронирования собеседника
	result, err := h.service.GetCompanionBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /companions/{id}/bookings - Access denied: companion_id=%d, user_id=%d",
				companionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /companions/{id}/bookings - Invalid filter: companion_id=%d, error=%v",
				companionID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /companions/{id}/bookings - Failed to get bookings: companion_id=%d, error=%v",
				companionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /companions/{id}/bookings - Bookings retrieved successfully: companion_id=%d, count=%d",
		companionID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
