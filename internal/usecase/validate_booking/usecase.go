package validate_booking

import (
	"context"
	"fmt"

	"github.com/d1mayak/CPB-AvailabilityService/internal/availability"
	"github.com/d1mayak/CPB-AvailabilityService/internal/domain"
)

// UseCase use case проверки кандидата бронирования.
// Не пишет в БД: собирает расписание и активные бронирования собеседника
// и прогоняет кандидата через движок доступности
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

// Execute выполняет проверку кандидата бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ValidateBooking: companion=%d, date=%s, time=%q, duration=%d",
		req.CompanionID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ValidateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем недельное расписание собеседника
	week, err := uc.scheduleRepo.GetByCompanion(ctx, req.CompanionID)
	if err != nil {
		uc.logger.Error("ValidateBooking: failed to get schedule for companion=%d: %v", req.CompanionID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// 4. Получаем активные бронирования собеседника на эту дату
	filter := domain.CompanionBookingsFilter{
		CompanionID:     req.CompanionID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false, // Только активные бронирования
	}

	bookings, err := uc.bookingRepo.GetByCompanionWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("ValidateBooking: failed to get bookings for companion=%d: %v", req.CompanionID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Прогоняем кандидата через движок доступности
	candidate := availability.Candidate{
		Date:            req.Date,
		StartTime:       req.StartTime,
		DurationMinutes: req.DurationMinutes,
	}

	result := availability.ValidateBooking(
		candidate,
		availability.FromSchedule(week),
		availability.FromBookings(bookings),
		now,
	)

	if result.IsValid {
		uc.logger.Info("ValidateBooking: candidate is valid, companion=%d, start=%s",
			req.CompanionID, result.BookingStart.Format("2006-01-02 15:04"))
	} else {
		uc.logger.Info("ValidateBooking: candidate rejected with %d error(s), companion=%d",
			len(result.Errors), req.CompanionID)
	}

	return toResponse(result), nil
}

func toResponse(result availability.Result) *Response {
	resp := &Response{
		IsValid:         result.IsValid,
		Errors:          result.Errors,
		Warnings:        result.Warnings,
		BookingStart:    result.BookingStart,
		BookingEnd:      result.BookingEnd,
		DurationMinutes: result.DurationMinutes,
	}

	if result.Window != nil {
		resp.Window = &Window{
			From:          result.Window.From,
			Until:         result.Window.Until,
			FromClock:     result.Window.FromClock,
			UntilClock:    result.Window.UntilClock,
			DurationHours: result.Window.DurationHours,
			IsToday:       result.Window.IsToday,
		}
	}

	return resp
}
