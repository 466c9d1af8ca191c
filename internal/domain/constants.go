package domain

// Slot grid constants
const (
	SlotStepMinutes = 30
	SlotsPerDay     = 24 * 60 / SlotStepMinutes // 48
	DaysPerWeek     = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Preset names for bulk slot assignment in the weekly template
const (
	PresetMorning   = "morning"
	PresetAfternoon = "afternoon"
	PresetEvening   = "evening"
	PresetAll       = "all"
)

// AllowedHorizonMonths допустимые горизонты проекции шаблона (в месяцах)
var AllowedHorizonMonths = []int{1, 2, 3, 6, 12}

// MaxCalendarRangeDays максимальная длина диапазона дат в запросе календаря
const MaxCalendarRangeDays = 62

// IsAllowedHorizon проверяет, что горизонт проекции входит в список допустимых
func IsAllowedHorizon(months int) bool {
	for _, m := range AllowedHorizonMonths {
		if m == months {
			return true
		}
	}
	return false
}
