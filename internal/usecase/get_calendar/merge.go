package get_calendar

import (
	"time"

	"github.com/m04kA/PM-AvailabilityService/internal/domain"
	"github.com/m04kA/PM-AvailabilityService/pkg/types"
)

// mergeCalendar строит календарное представление диапазона дат,
// накладывая сессии на конфигурацию доступности
//
// Статус каждого слота разрешается по приоритету:
// booked > blocked > available > unconfigured
// Сессия помечает ровно свой стартовый слот (длительность передается
// в полезной нагрузке) и побеждает независимо от состояния доступности:
// конфигурация доступности и занятость сессиями - независимые источники,
// их расхождение показывается, а не разрешается
func mergeCalendar(
	from, to time.Time,
	avail domain.Availability,
	sessions []*domain.Session,
) []DayView {
	blocked := domain.DeriveBlocked(avail)

	// Индекс сессий по (дата, стартовый слот)
	// Отмененные сессии в выборку не попадают (фильтр репозитория),
	// но на случай прямого вызова отсекаем их и здесь
	type slotKey struct {
		date types.DateString
		time types.TimeString
	}
	sessionIndex := make(map[slotKey]*domain.Session, len(sessions))
	for _, s := range sessions {
		if s.IsCanceled() {
			continue
		}
		sessionIndex[slotKey{date: s.SessionDate, time: s.StartTime}] = s
	}

	universe := domain.SlotUniverse()
	days := make([]DayView, 0)

	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		date := types.NewDateString(d)
		available, configured := avail[date]
		blockedSlots := blocked[date]

		day := DayView{
			Date:       date.String(),
			Configured: configured,
			Slots:      make([]SlotView, 0, len(universe)),
		}

		for _, slot := range universe {
			view := SlotView{
				Time:   slot.String(),
				Status: string(domain.SlotStatusUnconfigured),
			}

			if configured {
				if domain.ContainsSlot(available, slot) {
					view.Status = string(domain.SlotStatusAvailable)
				} else if domain.ContainsSlot(blockedSlots, slot) {
					view.Status = string(domain.SlotStatusBlocked)
				}
			}

			if s, ok := sessionIndex[slotKey{date: date, time: slot}]; ok {
				view.Status = string(domain.SlotStatusBooked)
				view.Session = &SessionInfo{
					Title:           s.Title,
					DurationMinutes: s.DurationMinutes,
					Status:          string(s.Status),
				}
			}

			day.Slots = append(day.Slots, view)
		}

		days = append(days, day)
	}

	return days
}
