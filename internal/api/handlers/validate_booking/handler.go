package validate_booking

import (
	"errors"
	"net/http"

	"github.com/d1mayak/CPB-AvailabilityService/internal/api/handlers"
	validateBooking "github.com/d1mayak/CPB-AvailabilityService/internal/usecase/validate_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidCompanionID = "некорректный ID собеседника"
)

type Handler struct {
	useCase ValidateBookingUseCase
	logger  Logger
}

func NewHandler(useCase ValidateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/validate - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, validateBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/validate - Invalid input: companion_id=%d", req.CompanionID)
			handlers.RespondBadRequest(w, msgInvalidCompanionID)

		default:
			h.logger.Error("POST /bookings/validate - Failed to validate: companion_id=%d, error=%v",
				req.CompanionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/validate - Validated: companion_id=%d, is_valid=%t, errors=%d",
		req.CompanionID, result.IsValid, len(result.Errors))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
