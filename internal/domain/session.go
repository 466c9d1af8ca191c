package domain

import (
	"time"

	"github.com/m04kA/PM-AvailabilityService/pkg/types"
)

// SessionStatus represents the status of a photo session
type SessionStatus string

const (
	SessionStatusPending   SessionStatus = "pending"
	SessionStatusConfirmed SessionStatus = "confirmed"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCanceled  SessionStatus = "canceled"
)

// Session represents a booked photo session
// Sessions are read-only for this service: they are created and managed by
// the booking collaborator and only overlaid on the calendar here
type Session struct {
	ID              int64
	PhotographerID  int64
	ClientName      string
	Title           string
	SessionDate     types.DateString
	StartTime       types.TimeString
	DurationMinutes int
	Status          SessionStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCanceled returns true if the session has been canceled
// Canceled sessions are excluded from the calendar overlay
func (s *Session) IsCanceled() bool {
	return s.Status == SessionStatusCanceled
}

// OverlaySessionStatuses статусы сессий, попадающих в календарное представление
var OverlaySessionStatuses = []SessionStatus{
	SessionStatusPending,
	SessionStatusConfirmed,
	SessionStatusCompleted,
}

// SessionFilter фильтр выборки сессий фотографа
type SessionFilter struct {
	PhotographerID  int64             // Обязательный параметр
	StartDate       *types.DateString // Начало периода (опционально)
	EndDate         *types.DateString // Конец периода (опционально)
	IncludeCanceled bool              // Включать ли отмененные сессии
}
