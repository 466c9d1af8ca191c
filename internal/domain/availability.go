package domain

import (
	"github.com/m04kA/PM-AvailabilityService/pkg/types"
)

// Availability карта доступности фотографа: дата -> отсортированный набор
// доступных для бронирования слотов
// Единственный источник истины о доступности; отсутствие даты в карте
// означает "не настроено", а не "полностью заблокировано"
type Availability map[types.DateString][]types.TimeString

// Clone возвращает глубокую копию карты доступности
func (a Availability) Clone() Availability {
	cloned := make(Availability, len(a))
	for date, slots := range a {
		copied := make([]types.TimeString, len(slots))
		copy(copied, slots)
		cloned[date] = copied
	}
	return cloned
}

// DeriveBlocked вычисляет заблокированные слоты как дополнение доступных
// до полной сетки - для каждой даты, присутствующей в карте
// Даты без записи в карте не порождают записи в результате
//
// Инвариант: для каждой даты available ∪ blocked = полная сетка,
// available ∩ blocked = ∅
func DeriveBlocked(a Availability) Availability {
	blocked := make(Availability, len(a))

	for date, available := range a {
		availableSet := make(map[types.TimeString]struct{}, len(available))
		for _, slot := range available {
			availableSet[slot] = struct{}{}
		}

		complement := make([]types.TimeString, 0, SlotsPerDay-len(availableSet))
		for _, slot := range slotUniverse {
			if _, ok := availableSet[slot]; !ok {
				complement = append(complement, slot)
			}
		}

		blocked[date] = complement
	}

	return blocked
}

// Toggle переключает один слот между доступным и заблокированным состоянием
// currentlyBlocked сообщает текущее состояние слота с точки зрения вызывающего:
//   - true: слот разблокируется - добавляется в доступные (идемпотентно)
//   - false: слот блокируется - удаляется из доступных
//
// Удаление последнего слота оставляет пустую запись даты - дата остается
// настроенной (полностью заблокированной), а не исчезает из карты
func (a Availability) Toggle(date types.DateString, slot types.TimeString, currentlyBlocked bool) error {
	if !IsValidSlot(slot) {
		return ErrInvalidSlot
	}

	if currentlyBlocked {
		// Разблокировка: вставляем слот с сохранением сортировки, без дубликатов
		if ContainsSlot(a[date], slot) {
			return nil
		}
		inserted, err := NormalizeSlots(append(a[date], slot))
		if err != nil {
			return err
		}
		a[date] = inserted
		return nil
	}

	// Блокировка: убираем слот из доступных
	// Для ненастроенной даты блокировать нечего - no-op без создания записи
	current, ok := a[date]
	if !ok {
		return nil
	}
	remaining := make([]types.TimeString, 0, len(current))
	for _, s := range current {
		if !s.Equal(slot) {
			remaining = append(remaining, s)
		}
	}
	a[date] = remaining
	return nil
}

// SlotsEqual сравнивает два отсортированных набора слотов поэлементно
func SlotsEqual(left, right []types.TimeString) bool {
	if len(left) != len(right) {
		return false
	}
	for i := range left {
		if !left[i].Equal(right[i]) {
			return false
		}
	}
	return true
}
