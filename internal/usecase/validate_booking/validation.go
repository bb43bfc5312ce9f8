package validate_booking

import "fmt"

// validateRequest валидирует входные данные запроса.
// Пустые дата/время/длительность НЕ отклоняются здесь: движок доступности
// сообщает о них накопленными ошибками в ответе
func validateRequest(req *Request) error {
	if req.CompanionID <= 0 {
		return fmt.Errorf("%w: companionID must be positive", ErrInvalidInput)
	}
	return nil
}
