package apply_weekly_template

import (
	applyWeeklyTemplate "github.com/m04kA/PM-AvailabilityService/internal/usecase/apply_weekly_template"
)

// DayRequest конфигурация одного дня недели в HTTP запросе
type DayRequest struct {
	Enabled bool     `json:"enabled"`
	Slots   []string `json:"slots,omitempty"`  // Явный список слотов "HH:MM"
	Preset  *string  `json:"preset,omitempty"` // morning | afternoon | evening | all
}

// ApplyTemplateRequest HTTP request model
// Days содержит ровно 7 записей: индекс 0 = воскресенье ... 6 = суббота
type ApplyTemplateRequest struct {
	Days          []DayRequest `json:"days"`
	CopyFromDay   *int         `json:"copyFromDay,omitempty"`
	HorizonMonths int          `json:"horizonMonths"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ApplyTemplateRequest) ToUseCaseRequest(photographerID, userID int64) *applyWeeklyTemplate.Request {
	days := make([]applyWeeklyTemplate.DayInput, len(r.Days))
	for i, day := range r.Days {
		days[i] = applyWeeklyTemplate.DayInput{
			Enabled: day.Enabled,
			Slots:   day.Slots,
			Preset:  day.Preset,
		}
	}

	return &applyWeeklyTemplate.Request{
		PhotographerID: photographerID,
		UserID:         userID,
		Days:           days,
		CopyFromDay:    r.CopyFromDay,
		HorizonMonths:  r.HorizonMonths,
	}
}
