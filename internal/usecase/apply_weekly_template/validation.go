package apply_weekly_template

import (
	"fmt"

	"github.com/m04kA/PM-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.PhotographerID <= 0 {
		return fmt.Errorf("%w: photographerID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if len(req.Days) != domain.DaysPerWeek {
		return fmt.Errorf("%w: expected %d day entries, got %d", ErrInvalidInput, domain.DaysPerWeek, len(req.Days))
	}

	if req.CopyFromDay != nil && (*req.CopyFromDay < 0 || *req.CopyFromDay >= domain.DaysPerWeek) {
		return fmt.Errorf("%w: copyFromDay must be in range 0-6", ErrInvalidInput)
	}

	if !domain.IsAllowedHorizon(req.HorizonMonths) {
		return fmt.Errorf("%w: horizonMonths must be one of %v", ErrInvalidHorizon, domain.AllowedHorizonMonths)
	}

	return nil
}
