package domain

import "errors"

var (
	// ErrInvalidSlot возвращается, когда значение времени не лежит на получасовой сетке
	ErrInvalidSlot = errors.New("domain: slot is not on the half-hour grid")

	// ErrInvalidWeekday возвращается при индексе дня недели вне диапазона 0-6
	ErrInvalidWeekday = errors.New("domain: weekday index out of range")

	// ErrUnknownPreset возвращается при неизвестном имени пресета
	ErrUnknownPreset = errors.New("domain: unknown slot preset")
)
