package domain

import (
	"fmt"

	"github.com/m04kA/PM-AvailabilityService/pkg/types"
)

// DayTemplate шаблон доступности одного дня недели
// Выключение дня не очищает Slots: повторное включение восстанавливает
// прежнюю конфигурацию; "выключено" интерпретирует только проекция
type DayTemplate struct {
	Enabled bool
	Slots   []types.TimeString
}

// WeeklyTemplate недельный шаблон доступности: 7 дней,
// индекс 0 = воскресенье ... 6 = суббота
// Шаблон - сводка истории доступности, а не живое представление:
// его правки не меняют карту доступности до явного запуска проекции
type WeeklyTemplate [DaysPerWeek]DayTemplate

// presetRanges именованные непрерывные диапазоны слотов [from, to)
var presetRanges = map[string]struct {
	from types.TimeString
	to   types.TimeString
}{
	PresetMorning:   {from: "08:00", to: "12:00"},
	PresetAfternoon: {from: "12:00", to: "17:00"},
	PresetEvening:   {from: "17:00", to: "21:00"},
	PresetAll:       {from: "08:00", to: "21:00"},
}

// PresetSlots возвращает набор слотов именованного пресета
func PresetSlots(name string) ([]types.TimeString, error) {
	r, ok := presetRanges[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}

	slots := make([]types.TimeString, 0, SlotsPerDay)
	for _, slot := range slotUniverse {
		if !slot.IsBefore(r.from) && slot.IsBefore(r.to) {
			slots = append(slots, slot)
		}
	}
	return slots, nil
}

// MineWeeklyTemplate восстанавливает недельный шаблон из карты доступности:
// для каждого дня недели объединяются слоты всех дат, выпадающих на этот день;
// день включен, если объединение непусто
// Даты с некорректным ключом пропускаются
// Пустая карта дает 7 выключенных дней с пустыми наборами - ожидаемое
// состояние холодного старта, не ошибка
func MineWeeklyTemplate(a Availability) WeeklyTemplate {
	unions := [DaysPerWeek]map[types.TimeString]struct{}{}
	for day := range unions {
		unions[day] = make(map[types.TimeString]struct{})
	}

	for date, slots := range a {
		weekday, err := date.Weekday()
		if err != nil {
			continue
		}
		for _, slot := range slots {
			unions[int(weekday)][slot] = struct{}{}
		}
	}

	var template WeeklyTemplate
	for day := range template {
		slots := make([]types.TimeString, 0, len(unions[day]))
		for slot := range unions[day] {
			slots = append(slots, slot)
		}
		// Значения из карты валидны по построению, ошибка невозможна
		slots, _ = NormalizeSlots(slots)

		template[day] = DayTemplate{
			Enabled: len(slots) > 0,
			Slots:   slots,
		}
	}

	return template
}

// SetEnabled включает или выключает день недели
func (t *WeeklyTemplate) SetEnabled(day int, enabled bool) error {
	if err := checkWeekday(day); err != nil {
		return err
	}
	t[day].Enabled = enabled
	return nil
}

// SetSlots целиком заменяет набор слотов дня
// Набор нормализуется: сортировка, удаление дубликатов, проверка сетки
func (t *WeeklyTemplate) SetSlots(day int, slots []types.TimeString) error {
	if err := checkWeekday(day); err != nil {
		return err
	}
	normalized, err := NormalizeSlots(slots)
	if err != nil {
		return err
	}
	t[day].Slots = normalized
	return nil
}

// ApplyPreset заменяет набор слотов дня именованным пресетом
func (t *WeeklyTemplate) ApplyPreset(day int, preset string) error {
	if err := checkWeekday(day); err != nil {
		return err
	}
	slots, err := PresetSlots(preset)
	if err != nil {
		return err
	}
	t[day].Slots = slots
	return nil
}

// CopyToEnabledDays копирует слоты исходного дня во все остальные
// включенные дни; выключенные дни не затрагиваются и не включаются
// No-op, если у исходного дня нет слотов
func (t *WeeklyTemplate) CopyToEnabledDays(sourceDay int) error {
	if err := checkWeekday(sourceDay); err != nil {
		return err
	}

	source := t[sourceDay].Slots
	if len(source) == 0 {
		return nil
	}

	for day := range t {
		if day == sourceDay || !t[day].Enabled {
			continue
		}
		copied := make([]types.TimeString, len(source))
		copy(copied, source)
		t[day].Slots = copied
	}

	return nil
}

func checkWeekday(day int) error {
	if day < 0 || day >= DaysPerWeek {
		return fmt.Errorf("%w: %d", ErrInvalidWeekday, day)
	}
	return nil
}
