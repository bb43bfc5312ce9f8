package get_availability_summary

import (
	"context"
	"fmt"

	"github.com/d1mayak/CPB-AvailabilityService/internal/availability"
	"github.com/d1mayak/CPB-AvailabilityService/internal/domain"
)

// UseCase use case сводки доступности за период (например, для календаря в UI)
type UseCase struct {
	scheduleRepo ScheduleRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(scheduleRepo ScheduleRepository, logger Logger) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения сводки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailabilitySummary: companion=%d, from=%s, to=%s",
		req.CompanionID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailabilitySummary: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем недельное расписание собеседника
	week, err := uc.scheduleRepo.GetByCompanion(ctx, req.CompanionID)
	if err != nil {
		uc.logger.Error("GetAvailabilitySummary: failed to get schedule for companion=%d: %v", req.CompanionID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 4. Строим сводку по дням
	summary := availability.Summary(req.StartDate, req.EndDate, availability.FromSchedule(week), now)

	days := make([]DaySummary, 0, len(summary))
	for _, day := range summary {
		entry := DaySummary{
			Date:        day.Date,
			DayName:     day.DayName,
			Status:      string(day.Status),
			IsPast:      day.IsPast,
			IsAvailable: day.IsAvailable,
		}
		if day.Window != nil {
			entry.FromClock = day.Window.FromClock
			entry.UntilClock = day.Window.UntilClock
		}
		days = append(days, entry)
	}

	uc.logger.Info("GetAvailabilitySummary: built %d day(s) for companion=%d", len(days), req.CompanionID)

	return &Response{
		CompanionID: req.CompanionID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Days:        days,
	}, nil
}
