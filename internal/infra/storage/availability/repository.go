package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/PM-AvailabilityService/internal/domain"
	"github.com/m04kA/PM-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/PM-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/PM-AvailabilityService/pkg/types"
)

// Repository репозиторий карты доступности фотографа
// Хранит по строке на настроенную дату: (photographer_id, date, slots text[])
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByPhotographer загружает полную карту доступности фотографа
// Отсутствие строк - валидное состояние (фотограф ничего не настраивал),
// возвращается пустая карта
func (r *Repository) GetByPhotographer(ctx context.Context, photographerID int64) (domain.Availability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"date",
		"slots",
	).
		From("availability").
		Where(squirrel.Eq{"photographer_id": photographerID}).
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhotographer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPhotographer - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	avail := make(domain.Availability)

	for rows.Next() {
		var date time.Time
		var rawSlots []string

		if err := rows.Scan(&date, pq.Array(&rawSlots)); err != nil {
			return nil, fmt.Errorf("%w: GetByPhotographer - scan row: %v", ErrScanRow, err)
		}

		slots := make([]types.TimeString, 0, len(rawSlots))
		for _, raw := range rawSlots {
			slots = append(slots, types.TimeString(raw))
		}

		normalized, err := domain.NormalizeSlots(slots)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByPhotographer - date %s: %v",
				ErrInvalidSlots, date.Format(domain.DateFormat), err)
		}

		avail[types.NewDateString(date)] = normalized
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByPhotographer - rows error: %v", ErrScanRow, err)
	}

	return avail, nil
}

// ReplaceAll полностью заменяет карту доступности фотографа:
// удаляет все его строки и вставляет переданную карту
// Замена целиком (а не диффом) повторяет модель записи источника:
// при конкурентных записях побеждает последняя завершившаяся
//
// Вызывать внутри транзакции (txmanager.DoSerializable), иначе между
// DELETE и INSERT возможно чтение пустой карты
func (r *Repository) ReplaceAll(ctx context.Context, photographerID int64, avail domain.Availability) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("availability").
		Where(squirrel.Eq{"photographer_id": photographerID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceAll - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceAll - execute delete: %v", ErrExecQuery, err)
	}

	if len(avail) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("availability").
		Columns("photographer_id", "date", "slots")

	for date, slots := range avail {
		raw := make([]string, 0, len(slots))
		for _, slot := range slots {
			raw = append(raw, slot.String())
		}
		insertBuilder = insertBuilder.Values(photographerID, date.String(), pq.Array(raw))
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAll - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceAll - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
