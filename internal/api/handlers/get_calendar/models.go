package get_calendar

import (
	"github.com/m04kA/PM-AvailabilityService/pkg/types"

	getCalendar "github.com/m04kA/PM-AvailabilityService/internal/usecase/get_calendar"
)

// ToUseCaseRequest создает запрос use case из path и query параметров
func ToUseCaseRequest(photographerID int64, fromStr, toStr string) (*getCalendar.Request, error) {
	from, err := types.NewDateStringFromString(fromStr)
	if err != nil {
		return nil, err
	}

	to, err := types.NewDateStringFromString(toStr)
	if err != nil {
		return nil, err
	}

	return &getCalendar.Request{
		PhotographerID: photographerID,
		From:           from,
		To:             to,
	}, nil
}
