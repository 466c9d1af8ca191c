package models

import (
	"github.com/m04kA/PM-AvailabilityService/internal/domain"
	"github.com/m04kA/PM-AvailabilityService/pkg/types"
)

// GetTemplateRequest запрос на получение недельного шаблона
type GetTemplateRequest struct {
	PhotographerID int64
	UserID         int64
}

// DayTemplateView представление шаблона одного дня недели
type DayTemplateView struct {
	Weekday int      `json:"weekday"` // 0 = воскресенье ... 6 = суббота
	Enabled bool     `json:"enabled"`
	Slots   []string `json:"slots"`
}

// WeeklyTemplateResponse ответ с недельным шаблоном доступности
type WeeklyTemplateResponse struct {
	PhotographerID int64             `json:"photographerId"`
	Days           []DayTemplateView `json:"days"`
}

// FromDomainTemplate конвертирует доменный шаблон в ответ сервиса
func FromDomainTemplate(photographerID int64, template domain.WeeklyTemplate) *WeeklyTemplateResponse {
	days := make([]DayTemplateView, domain.DaysPerWeek)
	for day := range template {
		slots := make([]string, 0, len(template[day].Slots))
		for _, slot := range template[day].Slots {
			slots = append(slots, slot.String())
		}
		days[day] = DayTemplateView{
			Weekday: day,
			Enabled: template[day].Enabled,
			Slots:   slots,
		}
	}

	return &WeeklyTemplateResponse{
		PhotographerID: photographerID,
		Days:           days,
	}
}

// ToggleSlotRequest запрос на переключение одного слота
type ToggleSlotRequest struct {
	PhotographerID int64
	UserID         int64
	Date           types.DateString
	Time           types.TimeString
	Blocked        bool // Текущее состояние слота с точки зрения вызывающего
}

// ToggleSlotResponse результат переключения слота
type ToggleSlotResponse struct {
	Date   string `json:"date"`
	Time   string `json:"time"`
	Status string `json:"status"` // Новое состояние: available или blocked
}
