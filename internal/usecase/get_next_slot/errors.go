package get_next_slot

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_next_slot: invalid input data")

	// ErrNoSlotsAvailable возвращается, когда в горизонте поиска нет свободных слотов
	ErrNoSlotsAvailable = errors.New("get_next_slot: no available slots within the search horizon")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_next_slot: internal error")
)
