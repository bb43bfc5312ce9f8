package schedule

import "errors"

var (
	// ErrAccessDenied возвращается, когда пользователь меняет чужое расписание
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidRule возвращается, когда правило дня не проходит проверку движка
	ErrInvalidRule = errors.New("invalid availability rule")

	// ErrDuplicateDay возвращается, когда в запросе два правила на один день недели
	ErrDuplicateDay = errors.New("duplicate day in schedule")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
