package apply_weekly_template

import (
	"fmt"
	"time"

	"github.com/m04kA/PM-AvailabilityService/internal/domain"
	"github.com/m04kA/PM-AvailabilityService/pkg/types"
)

// buildTemplate собирает доменный шаблон из запроса через операции редактора
func buildTemplate(req *Request) (domain.WeeklyTemplate, error) {
	var template domain.WeeklyTemplate

	for day, input := range req.Days {
		if err := template.SetEnabled(day, input.Enabled); err != nil {
			return template, err
		}

		// Явный список слотов имеет приоритет над пресетом
		switch {
		case len(input.Slots) > 0:
			slots := make([]types.TimeString, 0, len(input.Slots))
			for _, raw := range input.Slots {
				slots = append(slots, types.TimeString(raw))
			}
			if err := template.SetSlots(day, slots); err != nil {
				return template, fmt.Errorf("day %d: %w", day, err)
			}
		case input.Preset != nil:
			if err := template.ApplyPreset(day, *input.Preset); err != nil {
				return template, fmt.Errorf("day %d: %w", day, err)
			}
		}
	}

	if req.CopyFromDay != nil {
		if err := template.CopyToEnabledDays(*req.CopyFromDay); err != nil {
			return template, err
		}
	}

	return template, nil
}

// projectTemplate проецирует недельный шаблон на окно [today, today+months]
// включительно, перезаписывая карту доступности:
//   - включенный день недели: слоты даты заменяются слотами шаблона целиком,
//     ручные правки отдельных слотов на этой дате теряются
//   - выключенный день недели: запись даты удаляется
//
// Даты вне окна не затрагиваются независимо от содержимого шаблона
// Возвращает границы окна и количество перезаписанных/удаленных дат
func projectTemplate(
	avail domain.Availability,
	template domain.WeeklyTemplate,
	today time.Time,
	months int,
) (from, to types.DateString, written, removed int) {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, months, 0)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := types.NewDateString(d)
		day := template[int(d.Weekday())]

		if day.Enabled {
			slots := make([]types.TimeString, len(day.Slots))
			copy(slots, day.Slots)
			avail[key] = slots
			written++
			continue
		}

		if _, ok := avail[key]; ok {
			delete(avail, key)
			removed++
		}
	}

	return types.NewDateString(start), types.NewDateString(end), written, removed
}
