package get_weekly_template

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PM-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/PM-AvailabilityService/internal/api/middleware"
	availabilityService "github.com/m04kA/PM-AvailabilityService/internal/service/availability"
	"github.com/m04kA/PM-AvailabilityService/internal/service/availability/models"
)

const (
	msgInvalidPhotographerID = "некорректный ID фотографа"
	msgUnauthorized          = "требуется аутентификация"
	msgPhotographerNotFound  = "фотограф не найден"
	msgAccessDenied          = "доступ запрещен"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/photographers/{photographerId}/weekly-template
// Требует аутентификации: идентификатор пользователя берется из контекста
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем photographerId из URL
	photographerIDStr := vars["photographerId"]
	photographerID, err := strconv.ParseInt(photographerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /photographers/{id}/weekly-template - Invalid photographer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPhotographerID)
		return
	}

	// Извлекаем userID из контекста (проставлен auth middleware)
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /photographers/{id}/weekly-template - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	// Вызываем сервис
	result, err := h.service.GetWeeklyTemplate(r.Context(), &models.GetTemplateRequest{
		PhotographerID: photographerID,
		UserID:         userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrPhotographerNotFound):
			h.logger.Warn("GET /photographers/{id}/weekly-template - Photographer not found: photographer_id=%d",
				photographerID)
			handlers.RespondNotFound(w, msgPhotographerNotFound)

		case errors.Is(err, availabilityService.ErrAccessDenied):
			h.logger.Warn("GET /photographers/{id}/weekly-template - Access denied: photographer_id=%d, user_id=%d",
				photographerID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /photographers/{id}/weekly-template - Failed to get template: photographer_id=%d, error=%v",
				photographerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /photographers/{id}/weekly-template - Template retrieved successfully: photographer_id=%d",
		photographerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
