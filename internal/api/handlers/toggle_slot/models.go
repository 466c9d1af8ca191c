package toggle_slot

import (
	"github.com/m04kA/PM-AvailabilityService/pkg/types"

	"github.com/m04kA/PM-AvailabilityService/internal/service/availability/models"
)

// ToggleSlotRequest HTTP request model
type ToggleSlotRequest struct {
	Date    string `json:"date"`    // "2025-10-15"
	Time    string `json:"time"`    // "10:30"
	Blocked bool   `json:"blocked"` // Текущее состояние слота у вызывающего
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ToggleSlotRequest) ToServiceRequest(photographerID, userID int64) (*models.ToggleSlotRequest, error) {
	date, err := types.NewDateStringFromString(r.Date)
	if err != nil {
		return nil, err
	}

	slotTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	return &models.ToggleSlotRequest{
		PhotographerID: photographerID,
		UserID:         userID,
		Date:           date,
		Time:           slotTime,
		Blocked:        r.Blocked,
	}, nil
}
