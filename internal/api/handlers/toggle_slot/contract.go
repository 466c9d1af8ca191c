package toggle_slot

import (
	"context"

	"github.com/m04kA/PM-AvailabilityService/internal/service/availability/models"
)

type AvailabilityService interface {
	ToggleSlot(ctx context.Context, req *models.ToggleSlotRequest) (*models.ToggleSlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
