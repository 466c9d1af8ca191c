package get_calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/PM-AvailabilityService/internal/domain"
)

// validateRequest валидирует запрос и возвращает разобранные границы диапазона
func validateRequest(req *Request) (time.Time, time.Time, error) {
	if req.PhotographerID <= 0 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: photographerID must be positive", ErrInvalidInput)
	}

	from, err := req.From.Time()
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from: %v", ErrInvalidInput, err)
	}

	to, err := req.To.Time()
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: to: %v", ErrInvalidInput, err)
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: to is before from", ErrInvalidRange)
	}

	days := int(to.Sub(from).Hours()/24) + 1
	if days > domain.MaxCalendarRangeDays {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %d days requested, limit is %d",
			ErrRangeTooWide, days, domain.MaxCalendarRangeDays)
	}

	return from, to, nil
}
