package respond_booking

import (
	"context"

	"github.com/d1mayak/CPB-AvailabilityService/internal/service/bookings/models"
)

type BookingService interface {
	Respond(ctx context.Context, bookingID int64, req *models.RespondBookingRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
