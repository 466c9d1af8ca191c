package get_calendar

import (
	"context"

	"github.com/m04kA/PM-AvailabilityService/internal/domain"
)

// AvailabilityRepository интерфейс репозитория карты доступности
type AvailabilityRepository interface {
	GetByPhotographer(ctx context.Context, photographerID int64) (domain.Availability, error)
}

// SessionRepository интерфейс read-only репозитория фотосессий
type SessionRepository interface {
	GetByPhotographerWithFilter(ctx context.Context, filter domain.SessionFilter) ([]*domain.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
