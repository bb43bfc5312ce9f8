package create_booking

import (
	"errors"
	"strings"
)

var (
	// ErrCompanionNotFound возвращается, когда профиль собеседника не найден
	ErrCompanionNotFound = errors.New("create_booking: companion not found")

	// ErrCompanionInactive возвращается, когда собеседник скрыл профиль и не принимает бронирования
	ErrCompanionInactive = errors.New("create_booking: companion is not accepting bookings")

	// ErrClientNotFound возвращается, когда профиль клиента не найден
	ErrClientNotFound = errors.New("create_booking: client not found")

	// ErrClientBlocked возвращается, когда клиент заблокирован
	ErrClientBlocked = errors.New("create_booking: client is blocked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrNotAvailable возвращается, когда кандидат не прошел проверку доступности
	// Ошибка всегда обернута в *ValidationError с полным списком причин
	ErrNotAvailable = errors.New("create_booking: requested time is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationError несет полный список причин отказа движка доступности,
// чтобы API мог вернуть их все разом, а не по одной
type ValidationError struct {
	Reasons  []string
	Warnings []string
}

func (e *ValidationError) Error() string {
	return ErrNotAvailable.Error() + ": " + strings.Join(e.Reasons, "; ")
}

// Unwrap позволяет проверять ошибку через errors.Is(err, ErrNotAvailable)
func (e *ValidationError) Unwrap() error {
	return ErrNotAvailable
}
