package domain

import (
	"fmt"
	"sort"

	"github.com/m04kA/PM-AvailabilityService/pkg/types"
)

// slotUniverse фиксированная сетка из 48 получасовых слотов: 00:00 ... 23:30
// Единственный допустимый домен значений для слотов доступности
var slotUniverse = buildSlotUniverse()

// slotSet множество слотов сетки для быстрой валидации
var slotSet = buildSlotSet()

func buildSlotUniverse() []types.TimeString {
	universe := make([]types.TimeString, 0, SlotsPerDay)
	for m := 0; m < 24*60; m += SlotStepMinutes {
		universe = append(universe, types.TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)))
	}
	return universe
}

func buildSlotSet() map[types.TimeString]struct{} {
	set := make(map[types.TimeString]struct{}, SlotsPerDay)
	for _, slot := range slotUniverse {
		set[slot] = struct{}{}
	}
	return set
}

// SlotUniverse возвращает копию полной сетки слотов в каноническом порядке
func SlotUniverse() []types.TimeString {
	universe := make([]types.TimeString, len(slotUniverse))
	copy(universe, slotUniverse)
	return universe
}

// IsValidSlot проверяет, что значение лежит на получасовой сетке
func IsValidSlot(slot types.TimeString) bool {
	_, ok := slotSet[slot]
	return ok
}

// NormalizeSlots приводит набор слотов к каноническому виду:
// удаляет дубликаты и сортирует по возрастанию
// Возвращает ошибку, если встречено значение вне сетки
func NormalizeSlots(slots []types.TimeString) ([]types.TimeString, error) {
	seen := make(map[types.TimeString]struct{}, len(slots))
	normalized := make([]types.TimeString, 0, len(slots))

	for _, slot := range slots {
		if !IsValidSlot(slot) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidSlot, slot)
		}
		if _, ok := seen[slot]; ok {
			continue
		}
		seen[slot] = struct{}{}
		normalized = append(normalized, slot)
	}

	sort.Slice(normalized, func(i, j int) bool {
		return normalized[i].IsBefore(normalized[j])
	})

	return normalized, nil
}

// ContainsSlot проверяет вхождение слота в отсортированный набор
func ContainsSlot(slots []types.TimeString, slot types.TimeString) bool {
	for _, s := range slots {
		if s.Equal(slot) {
			return true
		}
	}
	return false
}

// SlotStatus статус слота в объединенном календарном представлении
type SlotStatus string

const (
	// SlotStatusBooked слот занят сессией (имеет приоритет над остальными статусами)
	SlotStatusBooked SlotStatus = "booked"
	// SlotStatusBlocked слот заблокирован для бронирования
	SlotStatusBlocked SlotStatus = "blocked"
	// SlotStatusAvailable слот открыт для бронирования
	SlotStatusAvailable SlotStatus = "available"
	// SlotStatusUnconfigured дата не настроена: доступность для неё не задавалась
	SlotStatusUnconfigured SlotStatus = "unconfigured"
)
