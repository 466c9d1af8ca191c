package session

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/PM-AvailabilityService/internal/domain"
	"github.com/m04kA/PM-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/PM-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/PM-AvailabilityService/pkg/types"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository read-only репозиторий фотосессий
// Сессии создает и изменяет внешний booking-сервис; здесь они только
// читаются для наложения на календарь
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByPhotographerWithFilter получает сессии фотографа с фильтрацией
// по периоду и статусу
func (r *Repository) GetByPhotographerWithFilter(ctx context.Context, filter domain.SessionFilter) ([]*domain.Session, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"photographer_id",
		"client_name",
		"title",
		"session_date",
		"start_time",
		"duration_minutes",
		"status",
		"created_at",
		"updated_at",
	).
		From("sessions").
		Where(squirrel.Eq{"photographer_id": filter.PhotographerID})

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"session_date": filter.StartDate.String()})
	}

	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"session_date": filter.EndDate.String()})
	}

	if !filter.IncludeCanceled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.SessionStatusCanceled})
	}

	query, args, err := selectBuilder.
		OrderBy("session_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhotographerWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhotographerWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sessions := make([]*domain.Session, 0)

	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByPhotographerWithFilter - rows error: %v", ErrScanRow, err)
	}

	return sessions, nil
}

func scanSession(rows *sql.Rows) (*domain.Session, error) {
	var s domain.Session
	var sessionDate time.Time
	var startTime string
	var createdAt, updatedAt sql.NullTime

	err := rows.Scan(
		&s.ID,
		&s.PhotographerID,
		&s.ClientName,
		&s.Title,
		&sessionDate,
		&startTime,
		&s.DurationMinutes,
		&s.Status,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: scan session: %v", ErrScanRow, err)
	}

	s.SessionDate = types.NewDateString(sessionDate)

	parsedStart, err := types.NewTimeStringFromString(startTime)
	if err != nil {
		return nil, fmt.Errorf("%w: scan session id=%d: %v", ErrScanRow, s.ID, err)
	}
	s.StartTime = parsedStart

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}
