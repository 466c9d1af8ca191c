package get_weekly_template

import (
	"context"

	"github.com/m04kA/PM-AvailabilityService/internal/service/availability/models"
)

type AvailabilityService interface {
	GetWeeklyTemplate(ctx context.Context, req *models.GetTemplateRequest) (*models.WeeklyTemplateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
