package get_calendar

import (
	"github.com/m04kA/PM-AvailabilityService/pkg/types"
)

// Request модель запроса календаря фотографа
type Request struct {
	PhotographerID int64
	From           types.DateString // Первая дата диапазона (включительно)
	To             types.DateString // Последняя дата диапазона (включительно)
}

// SessionInfo сведения о сессии, занимающей слот
type SessionInfo struct {
	Title           string `json:"title"`
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`
}

// SlotView статус одного слота в календарном представлении
type SlotView struct {
	Time    string       `json:"time"`
	Status  string       `json:"status"` // booked | blocked | available | unconfigured
	Session *SessionInfo `json:"session,omitempty"`
}

// DayView календарное представление одной даты
type DayView struct {
	Date       string     `json:"date"`
	Configured bool       `json:"configured"` // Есть ли запись доступности для даты
	Slots      []SlotView `json:"slots"`
}

// Response модель ответа: календарь за диапазон дат
type Response struct {
	PhotographerID int64     `json:"photographerId"`
	From           string    `json:"from"`
	To             string    `json:"to"`
	Days           []DayView `json:"days"`
}
