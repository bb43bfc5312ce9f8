package respond_booking

import (
	"github.com/d1mayak/CPB-AvailabilityService/internal/service/bookings/models"
)

// RespondBookingRequest HTTP request model
type RespondBookingRequest struct {
	Accept bool    `json:"accept"`
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *RespondBookingRequest) ToServiceRequest(userID int64) *models.RespondBookingRequest {
	reason := ""
	if r.Reason != nil {
		reason = *r.Reason
	}

	return &models.RespondBookingRequest{
		UserID: userID,
		Accept: r.Accept,
		Reason: reason,
	}
}
