package create_booking

import (
	"errors"
	"net/http"

	"github.com/d1mayak/CPB-AvailabilityService/internal/api/handlers"
	"github.com/d1mayak/CPB-AvailabilityService/internal/api/middleware"
	createBooking "github.com/d1mayak/CPB-AvailabilityService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgCompanionNotFound  = "собеседник не найден"
	msgCompanionInactive  = "собеседник не принимает бронирования"
	msgClientNotFound     = "профиль клиента не найден"
	msgClientBlocked      = "профиль клиента заблокирован"
	msgNotAvailable       = "выбранное время недоступно"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем clientID из контекста (через middleware Auth)
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Отказ движка доступности: отдаем все причины разом
		var validationErr *createBooking.ValidationError
		if errors.As(err, &validationErr) {
			h.logger.Warn("POST /bookings - Not available: client_id=%d, companion_id=%d, reasons=%d",
				clientID, req.CompanionID, len(validationErr.Reasons))
			handlers.RespondJSON(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
				Error:    msgNotAvailable,
				Reasons:  validationErr.Reasons,
				Warnings: validationErr.Warnings,
			})
			return
		}

		switch {
		case errors.Is(err, createBooking.ErrCompanionNotFound):
			h.logger.Warn("POST /bookings - Companion not found: companion_id=%d", req.CompanionID)
			handlers.RespondNotFound(w, msgCompanionNotFound)

		case errors.Is(err, createBooking.ErrCompanionInactive):
			h.logger.Warn("POST /bookings - Companion inactive: companion_id=%d", req.CompanionID)
			handlers.RespondError(w, http.StatusConflict, msgCompanionInactive)

		case errors.Is(err, createBooking.ErrClientNotFound):
			h.logger.Warn("POST /bookings - Client not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, createBooking.ErrClientBlocked):
			h.logger.Warn("POST /bookings - Client blocked: client_id=%d", clientID)
			handlers.RespondForbidden(w, msgClientBlocked)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: client_id=%d, companion_id=%d, error=%v",
				clientID, req.CompanionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, client_id=%d, companion_id=%d",
		result.ID, clientID, req.CompanionID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
