package apply_weekly_template

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/PM-AvailabilityService/internal/domain"
	profileClient "github.com/m04kA/PM-AvailabilityService/internal/integrations/profileservice"
)

// UseCase use case применения недельного шаблона доступности
// Шаблон проецируется на окно [сегодня, сегодня + horizonMonths]:
// это операция "сбросить к недельному расписанию", а не инкрементальный
// патч - ручные правки дат внутри окна перезаписываются
type UseCase struct {
	availabilityRepo AvailabilityRepository
	profileClient    ProfileServiceClient
	txManager        TxManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	profileClient ProfileServiceClient,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		profileClient:    profileClient,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case применения недельного шаблона
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ApplyWeeklyTemplate: photographer=%d, user=%d, horizon=%d months",
		req.PhotographerID, req.UserID, req.HorizonMonths)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ApplyWeeklyTemplate: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование фотографа
	photographer, err := uc.profileClient.GetPhotographer(ctx, req.PhotographerID)
	if err != nil {
		if errors.Is(err, profileClient.ErrPhotographerNotFound) {
			uc.logger.Warn("ApplyWeeklyTemplate: photographer id=%d not found", req.PhotographerID)
			return nil, ErrPhotographerNotFound
		}
		uc.logger.Error("ApplyWeeklyTemplate: failed to get photographer id=%d: %v", req.PhotographerID, err)
		return nil, fmt.Errorf("%w: failed to get photographer: %v", ErrInternal, err)
	}

	// 3. Проверяем права доступа: шаблон меняет только сам фотограф
	if photographer.UserID != req.UserID {
		uc.logger.Warn("ApplyWeeklyTemplate: user=%d is not the owner of photographer=%d",
			req.UserID, req.PhotographerID)
		return nil, ErrAccessDenied
	}

	// 4. Собираем шаблон из запроса через операции редактора
	template, err := buildTemplate(req)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownPreset) ||
			errors.Is(err, domain.ErrInvalidSlot) ||
			errors.Is(err, domain.ErrInvalidWeekday) {
			uc.logger.Warn("ApplyWeeklyTemplate: invalid template: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("ApplyWeeklyTemplate: failed to build template: %v", err)
		return nil, fmt.Errorf("%w: failed to build template: %v", ErrInternal, err)
	}

	// 5. Фиксируем "сегодня" один раз на всю проекцию
	now := uc.timeProvider.Now()

	// 6. Читаем карту, проецируем шаблон и записываем карту целиком
	var resp *Response
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		avail, err := uc.availabilityRepo.GetByPhotographer(txCtx, req.PhotographerID)
		if err != nil {
			return fmt.Errorf("load availability: %w", err)
		}

		from, to, written, removed := projectTemplate(avail, template, now, req.HorizonMonths)

		if err := uc.availabilityRepo.ReplaceAll(txCtx, req.PhotographerID, avail); err != nil {
			return fmt.Errorf("persist availability: %w", err)
		}

		resp = &Response{
			PhotographerID: req.PhotographerID,
			From:           from.String(),
			To:             to.String(),
			DatesWritten:   written,
			DatesRemoved:   removed,
		}
		return nil
	})

	if err != nil {
		uc.logger.Error("ApplyWeeklyTemplate: transaction failed for photographer=%d: %v",
			req.PhotographerID, err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("ApplyWeeklyTemplate: photographer=%d, window %s..%s, written=%d, removed=%d",
		req.PhotographerID, resp.From, resp.To, resp.DatesWritten, resp.DatesRemoved)

	return resp, nil
}
