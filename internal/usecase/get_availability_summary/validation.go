package get_availability_summary

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CompanionID <= 0 {
		return fmt.Errorf("%w: companionID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}

	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	if req.EndDate.Sub(req.StartDate).Hours() > 24*MaxRangeDays {
		return fmt.Errorf("%w: at most %d days per request", ErrRangeTooLarge, MaxRangeDays)
	}

	return nil
}
