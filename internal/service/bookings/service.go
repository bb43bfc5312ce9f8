package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/d1mayak/CPB-AvailabilityService/internal/domain"
	bookingRepo "github.com/d1mayak/CPB-AvailabilityService/internal/infra/storage/booking"
	"github.com/d1mayak/CPB-AvailabilityService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - бронирование видят только его клиент и собеседник
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if booking.ClientID != userID && booking.CompanionID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetClientBookings получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) GetClientBookings(ctx context.Context, req *models.GetClientBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientBookings: fetching bookings for client=%d, status=%v", req.ClientID, req.Status)

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetClientBookings: invalid status=%s for client=%d", *req.Status, req.ClientID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByClientID(ctx, req.ClientID, domainStatus)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for client=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientBookings: successfully fetched %d bookings for client=%d", len(bookings), req.ClientID)
	return models.FromDomainBookingList(bookings), nil
}

// GetCompanionBookings получает бронирования собеседника с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению неактивных бронирований
// Доступно только самому собеседнику
func (s *Service) GetCompanionBookings(ctx context.Context, req *models.GetCompanionBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCompanionBookings: fetching bookings for companion=%d, user=%d, includeInactive=%t",
		req.CompanionID, req.UserID, req.IncludeInactive)

	// Расписание и календарь собеседника видит только он сам
	if req.UserID != req.CompanionID {
		s.logger.Warn("GetCompanionBookings: access denied for user=%d to companion=%d bookings",
			req.UserID, req.CompanionID)
		return nil, ErrAccessDenied
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetCompanionBookings: invalid filter for companion=%d: %v", req.CompanionID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	// Получаем бронирования с фильтрацией
	bookings, err := s.bookingRepo.GetByCompanionWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetCompanionBookings: repository error for companion=%d: %v", req.CompanionID, err)
		return nil, fmt.Errorf("%w: GetCompanionBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCompanionBookings: successfully fetched %d bookings for companion=%d",
		len(bookings), req.CompanionID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Клиент отменяет своё бронирование (cancelled_by_client),
// собеседник - входящее бронирование (cancelled_by_companion)
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for booking id=%d", bookingID)
		return fmt.Errorf("%w: cancellation reason must be at most %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Определяем статус отмены в зависимости от стороны
	var cancelStatus domain.BookingStatus
	switch req.UserID {
	case booking.ClientID:
		cancelStatus = domain.StatusCancelledByClient
	case booking.CompanionID:
		cancelStatus = domain.StatusCancelledByCompanion
	default:
		s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
		return ErrAccessDenied
	}

	// Отменяем бронирование
	if err := s.bookingRepo.Cancel(ctx, bookingID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d with status=%s", bookingID, cancelStatus)
	return nil
}

// Respond отвечает на входящий запрос бронирования
// Доступно только собеседнику: accept=true подтверждает запрос,
// accept=false отклоняет его
func (s *Service) Respond(ctx context.Context, bookingID int64, req *models.RespondBookingRequest) error {
	s.logger.Info("Respond: responding to booking id=%d by user=%d, accept=%t", bookingID, req.UserID, req.Accept)

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Respond: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Respond: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Respond - repository error: %v", ErrInternal, err)
	}

	// Отвечать на запрос может только собеседник
	if booking.CompanionID != req.UserID {
		s.logger.Warn("Respond: access denied for user=%d to booking id=%d", req.UserID, bookingID)
		return ErrAccessDenied
	}

	// Отвечать можно только на ожидающий запрос
	if !booking.CanBeResponded() {
		s.logger.Warn("Respond: booking id=%d cannot be responded, status=%s", bookingID, booking.Status)
		return ErrCannotRespond
	}

	if req.Accept {
		if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusConfirmed); err != nil {
			s.logger.Error("Respond: failed to confirm booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Respond - repository error: %v", ErrInternal, err)
		}
		s.logger.Info("Respond: booking id=%d confirmed", bookingID)
		return nil
	}

	// Отклонение сохраняет причину, как и отмена
	if err := s.bookingRepo.Cancel(ctx, bookingID, domain.StatusRejected, req.Reason); err != nil {
		s.logger.Error("Respond: failed to reject booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Respond - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Respond: booking id=%d rejected", bookingID)
	return nil
}
