package get_calendar

import (
	"context"
	"fmt"

	"github.com/m04kA/PM-AvailabilityService/internal/domain"
	"github.com/m04kA/PM-AvailabilityService/pkg/ptr"
)

// UseCase use case получения календаря фотографа:
// доступность, заблокированные слоты и наложенные сессии за диапазон дат
type UseCase struct {
	availabilityRepo AvailabilityRepository
	sessionRepo      SessionRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	sessionRepo SessionRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		sessionRepo:      sessionRepo,
		logger:           logger,
	}
}

// Execute выполняет use case получения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: photographer=%d, from=%s, to=%s",
		req.PhotographerID, req.From, req.To)

	// 1. Валидация входных данных и разбор диапазона
	from, to, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем карту доступности
	avail, err := uc.availabilityRepo.GetByPhotographer(ctx, req.PhotographerID)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to load availability for photographer=%d: %v",
			req.PhotographerID, err)
		return nil, fmt.Errorf("%w: failed to load availability: %v", ErrInternal, err)
	}

	// 3. Загружаем сессии за диапазон (без отмененных)
	filter := domain.SessionFilter{
		PhotographerID:  req.PhotographerID,
		StartDate:       ptr.Ptr(req.From),
		EndDate:         ptr.Ptr(req.To),
		IncludeCanceled: false,
	}

	sessions, err := uc.sessionRepo.GetByPhotographerWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to load sessions for photographer=%d: %v",
			req.PhotographerID, err)
		return nil, fmt.Errorf("%w: failed to load sessions: %v", ErrInternal, err)
	}

	// 4. Накладываем сессии на доступность
	days := mergeCalendar(from, to, avail, sessions)

	uc.logger.Info("GetCalendar: photographer=%d, %d days, %d sessions overlaid",
		req.PhotographerID, len(days), len(sessions))

	return &Response{
		PhotographerID: req.PhotographerID,
		From:           req.From.String(),
		To:             req.To.String(),
		Days:           days,
	}, nil
}
