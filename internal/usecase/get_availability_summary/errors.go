package get_availability_summary

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability_summary: invalid input data")

	// ErrRangeTooLarge возвращается, когда запрошенный период превышает ограничение
	ErrRangeTooLarge = errors.New("get_availability_summary: requested range is too large")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_availability_summary: internal error")
)
