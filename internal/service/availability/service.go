package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PM-AvailabilityService/internal/domain"
	profileClient "github.com/m04kA/PM-AvailabilityService/internal/integrations/profileservice"
	"github.com/m04kA/PM-AvailabilityService/internal/service/availability/models"
)

// Service сервис управления доступностью фотографа
type Service struct {
	availabilityRepo AvailabilityRepository
	profileClient    ProfileServiceClient
	txManager        TxManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	availabilityRepo AvailabilityRepository,
	profileClient ProfileServiceClient,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		profileClient:    profileClient,
		txManager:        txManager,
		logger:           logger,
	}
}

// GetWeeklyTemplate восстанавливает недельный шаблон из текущей карты
// доступности фотографа
// Доступно только самому фотографу
func (s *Service) GetWeeklyTemplate(ctx context.Context, req *models.GetTemplateRequest) (*models.WeeklyTemplateResponse, error) {
	s.logger.Info("GetWeeklyTemplate: photographer=%d, user=%d", req.PhotographerID, req.UserID)

	// 1. Проверяем существование фотографа и права доступа
	if err := s.authorize(ctx, req.PhotographerID, req.UserID, "GetWeeklyTemplate"); err != nil {
		return nil, err
	}

	// 2. Загружаем карту доступности
	avail, err := s.availabilityRepo.GetByPhotographer(ctx, req.PhotographerID)
	if err != nil {
		s.logger.Error("GetWeeklyTemplate: repository error for photographer=%d: %v", req.PhotographerID, err)
		return nil, fmt.Errorf("%w: GetWeeklyTemplate - repository error: %v", ErrInternal, err)
	}

	// 3. Восстанавливаем шаблон из истории
	// Пустая карта дает 7 выключенных дней - ожидаемое состояние холодного старта
	template := domain.MineWeeklyTemplate(avail)

	s.logger.Info("GetWeeklyTemplate: mined template for photographer=%d from %d configured dates",
		req.PhotographerID, len(avail))
	return models.FromDomainTemplate(req.PhotographerID, template), nil
}

// ToggleSlot переключает один слот между доступным и заблокированным
// состоянием, не затрагивая остальные даты и недельный шаблон
// Чтение и полная замена карты выполняются в одной serializable-транзакции
// Доступно только самому фотографу
func (s *Service) ToggleSlot(ctx context.Context, req *models.ToggleSlotRequest) (*models.ToggleSlotResponse, error) {
	s.logger.Info("ToggleSlot: photographer=%d, user=%d, date=%s, time=%s, blocked=%t",
		req.PhotographerID, req.UserID, req.Date, req.Time, req.Blocked)

	// 1. Валидация входных данных
	if _, err := req.Date.Time(); err != nil {
		s.logger.Warn("ToggleSlot: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: invalid date", ErrInvalidInput)
	}
	if !domain.IsValidSlot(req.Time) {
		s.logger.Warn("ToggleSlot: time %q is not on the slot grid", req.Time)
		return nil, fmt.Errorf("%w: time is not on the half-hour grid", ErrInvalidInput)
	}

	// 2. Проверяем существование фотографа и права доступа
	if err := s.authorize(ctx, req.PhotographerID, req.UserID, "ToggleSlot"); err != nil {
		return nil, err
	}

	// 3. Читаем карту, переключаем слот и записываем карту целиком
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		avail, err := s.availabilityRepo.GetByPhotographer(txCtx, req.PhotographerID)
		if err != nil {
			return fmt.Errorf("load availability: %w", err)
		}

		if err := avail.Toggle(req.Date, req.Time, req.Blocked); err != nil {
			return fmt.Errorf("toggle slot: %w", err)
		}

		if err := s.availabilityRepo.ReplaceAll(txCtx, req.PhotographerID, avail); err != nil {
			return fmt.Errorf("persist availability: %w", err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrInvalidSlot) {
			s.logger.Warn("ToggleSlot: invalid slot for photographer=%d: %v", req.PhotographerID, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		s.logger.Error("ToggleSlot: transaction failed for photographer=%d: %v", req.PhotographerID, err)
		return nil, fmt.Errorf("%w: ToggleSlot - transaction failed: %v", ErrInternal, err)
	}

	status := string(domain.SlotStatusBlocked)
	if req.Blocked {
		// Слот был заблокирован - после переключения он доступен
		status = string(domain.SlotStatusAvailable)
	}

	s.logger.Info("ToggleSlot: photographer=%d, date=%s, time=%s -> %s",
		req.PhotographerID, req.Date, req.Time, status)

	return &models.ToggleSlotResponse{
		Date:   req.Date.String(),
		Time:   req.Time.String(),
		Status: status,
	}, nil
}

// authorize проверяет, что фотограф существует и запрос выполняет он сам
func (s *Service) authorize(ctx context.Context, photographerID, userID int64, op string) error {
	photographer, err := s.profileClient.GetPhotographer(ctx, photographerID)
	if err != nil {
		if errors.Is(err, profileClient.ErrPhotographerNotFound) {
			s.logger.Warn("%s: photographer id=%d not found", op, photographerID)
			return ErrPhotographerNotFound
		}
		s.logger.Error("%s: failed to get photographer id=%d: %v", op, photographerID, err)
		return fmt.Errorf("%w: failed to get photographer: %v", ErrInternal, err)
	}

	if photographer.UserID != userID {
		s.logger.Warn("%s: user=%d is not the owner of photographer=%d", op, userID, photographerID)
		return ErrAccessDenied
	}

	return nil
}
