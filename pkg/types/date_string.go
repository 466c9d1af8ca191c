package types

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateString календарная дата в формате YYYY-MM-DD (без времени)
// Как и TimeString, сортируется лексикографически в хронологическом порядке
type DateString string

// NewDateString создает DateString из time.Time (отбрасывает время)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString создает DateString из строки с валидацией формата
func NewDateStringFromString(s string) (DateString, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date format %q, expected YYYY-MM-DD: %w", s, err)
	}
	return DateString(t.Format(dateLayout)), nil
}

// String возвращает строковое представление даты
func (ds DateString) String() string {
	return string(ds)
}

// Time парсит дату в time.Time (полночь, UTC)
func (ds DateString) Time() (time.Time, error) {
	t, err := time.Parse(dateLayout, string(ds))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", string(ds), err)
	}
	return t, nil
}

// Weekday возвращает день недели (0 = воскресенье ... 6 = суббота)
func (ds DateString) Weekday() (time.Weekday, error) {
	t, err := ds.Time()
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}

// IsBefore проверяет, что ds строго раньше other
func (ds DateString) IsBefore(other DateString) bool {
	return string(ds) < string(other)
}

// IsAfter проверяет, что ds строго позже other
func (ds DateString) IsAfter(other DateString) bool {
	return string(ds) > string(other)
}
