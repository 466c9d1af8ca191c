package availability

import (
	"context"

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
// Чтение и полная замена карты выполняются в одной транзакции
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
