package get_schedule

import (
	"context"

	"github.com/d1mayak/CPB-AvailabilityService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetWeek(ctx context.Context, companionID int64) (*models.WeekResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
