package get_next_slot

import (
	"context"
	"fmt"

	"github.com/d1mayak/CPB-AvailabilityService/internal/availability"
	"github.com/d1mayak/CPB-AvailabilityService/internal/domain"
)

// UseCase use case поиска ближайшего свободного слота
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет поиск ближайшего свободного слота в двухнедельном горизонте
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetNextSlot: companion=%d, duration=%d", req.CompanionID, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetNextSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем недельное расписание собеседника
	week, err := uc.scheduleRepo.GetByCompanion(ctx, req.CompanionID)
	if err != nil {
		uc.logger.Error("GetNextSlot: failed to get schedule for companion=%d: %v", req.CompanionID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 4. Получаем активные бронирования собеседника в горизонте поиска
	startDate := now
	endDate := now.AddDate(0, 0, availability.DefaultHorizonDays)
	filter := domain.CompanionBookingsFilter{
		CompanionID:     req.CompanionID,
		StartDate:       &startDate,
		EndDate:         &endDate,
		IncludeInactive: false, // Только активные бронирования
	}

	bookings, err := uc.bookingRepo.GetByCompanionWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetNextSlot: failed to get bookings for companion=%d: %v", req.CompanionID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Ищем первый конфликтно-свободный слот
	slot, found := availability.NextAvailableSlot(
		availability.FromSchedule(week),
		availability.FromBookings(bookings),
		req.DurationMinutes,
		now,
	)

	if !found {
		uc.logger.Info("GetNextSlot: no slots found for companion=%d within %d days",
			req.CompanionID, availability.DefaultHorizonDays)
		return nil, ErrNoSlotsAvailable
	}

	uc.logger.Info("GetNextSlot: found slot for companion=%d: %s", req.CompanionID, slot.Description)

	return &Response{
		CompanionID:     req.CompanionID,
		Date:            slot.Date,
		Start:           slot.Start,
		DayName:         slot.DayName,
		Clock:           slot.Clock,
		DurationMinutes: slot.DurationMinutes,
		Description:     slot.Description,
	}, nil
}
