package apply_weekly_template

import (
	"context"

	applyWeeklyTemplate "github.com/m04kA/PM-AvailabilityService/internal/usecase/apply_weekly_template"
)

type ApplyWeeklyTemplateUseCase interface {
	Execute(ctx context.Context, req *applyWeeklyTemplate.Request) (*applyWeeklyTemplate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
