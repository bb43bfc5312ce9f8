package schedule

import (
	"context"

	"github.com/d1mayak/CPB-AvailabilityService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetByCompanion(ctx context.Context, companionID int64) (domain.WeeklySchedule, error)
	ReplaceWeek(ctx context.Context, companionID int64, week domain.WeeklySchedule) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
