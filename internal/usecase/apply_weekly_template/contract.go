package apply_weekly_template

import (
	"context"
	"time"

	"github.com/m04kA/PM-AvailabilityService/internal/domain"
	"github.com/m04kA/PM-AvailabilityService/internal/integrations/profileservice"
)

// AvailabilityRepository интерфейс репозитория карты доступности
type AvailabilityRepository interface {
	GetByPhotographer(ctx context.Context, photographerID int64) (domain.Availability, error)
	ReplaceAll(ctx context.Context, photographerID int64, avail domain.Availability) error
}

// ProfileServiceClient интерфейс клиента для ProfileService
type ProfileServiceClient interface {
	GetPhotographer(ctx context.Context, photographerID int64) (*profileservice.Photographer, error)
}

// TxManager интерфейс менеджера транзакций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
// Проекция привязана к "сегодня", поэтому время инжектируется явно
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
