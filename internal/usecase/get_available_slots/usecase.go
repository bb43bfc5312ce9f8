package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/d1mayak/CPB-AvailabilityService/internal/availability"
	"github.com/d1mayak/CPB-AvailabilityService/internal/domain"
)

// UseCase use case получения слотов на дату
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

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: companion=%d, date=%s",
		req.CompanionID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем недельное расписание собеседника
	week, err := uc.scheduleRepo.GetByCompanion(ctx, req.CompanionID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule for companion=%d: %v", req.CompanionID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	rules := availability.FromSchedule(week)
	dayName := availability.DayNameOf(req.Date)

	// 4. Нормализуем правило дня: закрытый день возвращаем с причиной и без слотов
	day := availability.AvailabilityFor(req.Date, rules)
	if !day.IsAvailable {
		uc.logger.Info("GetAvailableSlots: day %s is not available for companion=%d: %s",
			req.Date.Format(domain.DateFormat), req.CompanionID, day.Reason)
		return &Response{
			Date:        req.Date,
			CompanionID: req.CompanionID,
			DayName:     dayName,
			IsAvailable: false,
			Reason:      day.Reason,
			Slots:       []Slot{},
		}, nil
	}

	// 5. Получаем активные бронирования собеседника на эту дату
	filter := domain.CompanionBookingsFilter{
		CompanionID:     req.CompanionID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false, // Только активные бронирования
	}

	bookings, err := uc.bookingRepo.GetByCompanionWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for companion=%d: %v", req.CompanionID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	existing := availability.FromBookings(bookings)

	// 6. Генерируем слоты и помечаем занятые
	timeSlots := availability.EnumerateSlots(
		req.Date,
		rules,
		now,
		availability.DefaultIntervalMinutes,
		availability.DefaultMinSlotDurationMinutes,
	)

	slots := make([]Slot, 0, len(timeSlots))
	for _, slot := range timeSlots {
		slotEnd := slot.Start.Add(time.Duration(availability.DefaultMinSlotDurationMinutes) * time.Minute)
		conflicts, _ := availability.FindConflicts(slot.Start, slotEnd, existing)

		slots = append(slots, Slot{
			Start:              slot.Start,
			Clock:              slot.Clock,
			MaxDurationMinutes: slot.MaxDurationMinutes,
			IsFree:             len(conflicts) == 0,
		})
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for companion=%d, date=%s",
		len(slots), req.CompanionID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:        req.Date,
		CompanionID: req.CompanionID,
		DayName:     dayName,
		IsAvailable: true,
		Slots:       slots,
	}, nil
}
