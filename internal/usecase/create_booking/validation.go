package create_booking

import (
	"fmt"
	"strings"

	"github.com/d1mayak/CPB-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Дата, время и длительность проверяются движком доступности внутри
// транзакции: он накапливает все ошибки сразу
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.CompanionID <= 0 {
		return fmt.Errorf("%w: companionID must be positive", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.MeetingPlace != nil && len(*req.MeetingPlace) > domain.MaxMeetingPlaceLength {
		return fmt.Errorf("%w: meeting place must be at most %d characters", ErrInvalidInput, domain.MaxMeetingPlaceLength)
	}

	if req.Notes != nil && strings.TrimSpace(*req.Notes) == "" {
		req.Notes = nil
	}

	return nil
}
