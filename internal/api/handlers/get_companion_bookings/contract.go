package get_companion_bookings

import (
	"context"

	"github.com/d1mayak/CPB-AvailabilityService/internal/service/bookings/models"
)

type BookingService interface {
	GetCompanionBookings(ctx context.Context, req *models.GetCompanionBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
