package get_next_slot

import (
	"fmt"

	"github.com/d1mayak/CPB-AvailabilityService/internal/availability"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CompanionID <= 0 {
		return fmt.Errorf("%w: companionID must be positive", ErrInvalidInput)
	}

	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: durationMinutes must not be negative", ErrInvalidInput)
	}

	if req.DurationMinutes > availability.MaxDurationMinutes {
		return fmt.Errorf("%w: durationMinutes must be at most %d", ErrInvalidInput, availability.MaxDurationMinutes)
	}

	return nil
}
