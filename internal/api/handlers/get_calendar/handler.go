package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PM-AvailabilityService/internal/api/handlers"
	getCalendar "github.com/m04kA/PM-AvailabilityService/internal/usecase/get_calendar"
)

const (
	msgInvalidPhotographerID = "некорректный ID фотографа"
	msgMissingFrom           = "параметр from обязателен"
	msgMissingTo             = "параметр to обязателен"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange          = "некорректный диапазон дат"
	msgRangeTooWide          = "диапазон дат превышает допустимый лимит"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/photographers/{photographerId}/calendar
// Query params: from (required, YYYY-MM-DD), to (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем photographerId из URL
	photographerIDStr := vars["photographerId"]
	photographerID, err := strconv.ParseInt(photographerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /photographers/{id}/calendar - Invalid photographer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPhotographerID)
		return
	}

	// Извлекаем from и to из query параметров
	fromStr := r.URL.Query().Get("from")
	if fromStr == "" {
		h.logger.Warn("GET /photographers/{id}/calendar - Missing from parameter")
		handlers.RespondBadRequest(w, msgMissingFrom)
		return
	}

	toStr := r.URL.Query().Get("to")
	if toStr == "" {
		h.logger.Warn("GET /photographers/{id}/calendar - Missing to parameter")
		handlers.RespondBadRequest(w, msgMissingTo)
		return
	}

	// Формируем запрос к use case (с парсингом дат)
	useCaseReq, err := ToUseCaseRequest(photographerID, fromStr, toStr)
	if err != nil {
		h.logger.Warn("GET /photographers/{id}/calendar - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrRangeTooWide):
			h.logger.Warn("GET /photographers/{id}/calendar - Range too wide: photographer_id=%d, from=%s, to=%s",
				photographerID, fromStr, toStr)
			handlers.RespondBadRequest(w, msgRangeTooWide)

		case errors.Is(err, getCalendar.ErrInvalidRange), errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /photographers/{id}/calendar - Invalid range: photographer_id=%d, from=%s, to=%s, error=%v",
				photographerID, fromStr, toStr, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /photographers/{id}/calendar - Failed to build calendar: photographer_id=%d, error=%v",
				photographerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /photographers/{id}/calendar - Calendar built successfully: photographer_id=%d, days=%d",
		photographerID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
