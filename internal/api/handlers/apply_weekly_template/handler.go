package apply_weekly_template

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PM-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/PM-AvailabilityService/internal/api/middleware"
	applyWeeklyTemplate "github.com/m04kA/PM-AvailabilityService/internal/usecase/apply_weekly_template"
)

const (
	msgInvalidPhotographerID = "некорректный ID фотографа"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgUnauthorized          = "требуется аутентификация"
	msgPhotographerNotFound  = "фотограф не найден"
	msgAccessDenied          = "доступ запрещен"
	msgInvalidHorizon        = "некорректный горизонт проекции, допустимы 1, 2, 3, 6 или 12 месяцев"
	msgInvalidTemplate       = "некорректный недельный шаблон"
)

type Handler struct {
	useCase ApplyWeeklyTemplateUseCase
	logger  Logger
}

func NewHandler(useCase ApplyWeeklyTemplateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/photographers/{photographerId}/weekly-template
// Требует аутентификации: идентификатор пользователя берется из контекста
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем photographerId из URL
	photographerIDStr := vars["photographerId"]
	photographerID, err := strconv.ParseInt(photographerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /photographers/{id}/weekly-template - Invalid photographer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPhotographerID)
		return
	}

	// Извлекаем userID из контекста (проставлен auth middleware)
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /photographers/{id}/weekly-template - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req ApplyTemplateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /photographers/{id}/weekly-template - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(photographerID, userID))
	if err != nil {
		switch {
		case errors.Is(err, applyWeeklyTemplate.ErrPhotographerNotFound):
			h.logger.Warn("PUT /photographers/{id}/weekly-template - Photographer not found: photographer_id=%d",
				photographerID)
			handlers.RespondNotFound(w, msgPhotographerNotFound)

		case errors.Is(err, applyWeeklyTemplate.ErrAccessDenied):
			h.logger.Warn("PUT /photographers/{id}/weekly-template - Access denied: photographer_id=%d, user_id=%d",
				photographerID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, applyWeeklyTemplate.ErrInvalidHorizon):
			h.logger.Warn("PUT /photographers/{id}/weekly-template - Invalid horizon: photographer_id=%d, horizon=%d",
				photographerID, req.HorizonMonths)
			handlers.RespondBadRequest(w, msgInvalidHorizon)

		case errors.Is(err, applyWeeklyTemplate.ErrInvalidInput):
			h.logger.Warn("PUT /photographers/{id}/weekly-template - Invalid template: photographer_id=%d, error=%v",
				photographerID, err)
			handlers.RespondBadRequest(w, msgInvalidTemplate)

		default:
			h.logger.Error("PUT /photographers/{id}/weekly-template - Failed to apply template: photographer_id=%d, error=%v",
				photographerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /photographers/{id}/weekly-template - Template applied successfully: photographer_id=%d, written=%d, removed=%d",
		photographerID, result.DatesWritten, result.DatesRemoved)
	handlers.RespondJSON(w, http.StatusOK, result)
}
