package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/d1mayak/CPB-AvailabilityService/internal/availability"
	"github.com/d1mayak/CPB-AvailabilityService/internal/domain"
	profileClient "github.com/d1mayak/CPB-AvailabilityService/internal/integrations/profileservice"
	"github.com/d1mayak/CPB-AvailabilityService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	scheduleRepo  ScheduleRepository
	profileClient ProfileServiceClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	profileClient ProfileServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		scheduleRepo:  scheduleRepo,
		profileClient: profileClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка доступности и вставка выполняются в сериализуемой транзакции,
// чтобы два параллельных клиента не забронировали пересекающиеся интервалы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: client=%d, companion=%d, date=%s, time=%q, duration=%d",
		req.ClientID, req.CompanionID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем профиль клиента
	client, err := uc.profileClient.GetClient(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, profileClient.ErrClientNotFound) {
			uc.logger.Warn("CreateBooking: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateBooking: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	if client.IsBlocked {
		uc.logger.Warn("CreateBooking: client id=%d is blocked", req.ClientID)
		return nil, ErrClientBlocked
	}

	// 4. Получаем профиль собеседника
	companion, err := uc.profileClient.GetCompanion(ctx, req.CompanionID)
	if err != nil {
		if errors.Is(err, profileClient.ErrCompanionNotFound) {
			uc.logger.Warn("CreateBooking: companion id=%d not found", req.CompanionID)
			return nil, ErrCompanionNotFound
		}
		uc.logger.Error("CreateBooking: failed to get companion id=%d: %v", req.CompanionID, err)
		return nil, fmt.Errorf("%w: failed to get companion: %v", ErrInternal, err)
	}

	if !companion.IsActive {
		uc.logger.Warn("CreateBooking: companion id=%d is not accepting bookings", req.CompanionID)
		return nil, ErrCompanionInactive
	}

	// Переменные для хранения результата
	var result *domain.Booking
	var warnings []string

	// 5. Выполняем проверку доступности и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем недельное расписание собеседника
		week, err := uc.scheduleRepo.GetByCompanion(txCtx, req.CompanionID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		// 5.2. Получаем активные бронирования собеседника на эту дату
		filter := domain.CompanionBookingsFilter{
			CompanionID:     req.CompanionID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false, // Только активные бронирования
		}

		bookings, err := uc.bookingRepo.GetByCompanionWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.3. Полная проверка кандидата движком доступности
		candidate := availability.Candidate{
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: req.DurationMinutes,
		}

		validation := availability.ValidateBooking(
			candidate,
			availability.FromSchedule(week),
			availability.FromBookings(bookings),
			now,
		)

		if !validation.IsValid {
			uc.logger.Warn("CreateBooking: candidate rejected with %d error(s): %v",
				len(validation.Errors), validation.Errors)
			return &ValidationError{
				Reasons:  validation.Errors,
				Warnings: validation.Warnings,
			}
		}

		warnings = validation.Warnings

		// 5.4. Создаем бронирование с денормализацией данных профиля
		meetingPlace := req.MeetingPlace
		if meetingPlace == nil && companion.MeetingPlace != "" {
			meetingPlace = &companion.MeetingPlace
		}

		booking := &domain.Booking{
			ClientID:        req.ClientID,
			CompanionID:     req.CompanionID,
			BookingDate:     req.Date,
			StartTime:       types.NewTimeString(validation.BookingStart),
			DurationMinutes: validation.DurationMinutes,
			Status:          domain.StatusPending,
			// Денормализация данных собеседника
			CompanionName: companion.Name,
			RatePerHour:   companion.RatePerHour,
			MeetingPlace:  meetingPlace,
			// Заметки
			Notes: req.Notes,
		}

		// 5.5. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		ClientID:        result.ClientID,
		CompanionID:     result.CompanionID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		CompanionName:   result.CompanionName,
		RatePerHour:     result.RatePerHour,
		MeetingPlace:    result.MeetingPlace,
		Notes:           result.Notes,
		Warnings:        warnings,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
