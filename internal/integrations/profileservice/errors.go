package profileservice

import "errors"

var (
	// ErrCompanionNotFound возвращается, когда профиль собеседника не существует или скрыт
	ErrCompanionNotFound = errors.New("companion profile not found")

	// ErrClientNotFound возвращается, когда профиль клиента не существует
	ErrClientNotFound = errors.New("client profile not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("profileservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("profileservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что ProfileService недоступен и денормализованные поля
	// бронирования (имя, ставка) следует оставить из последнего известного состояния
	ErrServiceDegraded = errors.New("profileservice unavailable: graceful degradation applied")
)
