package toggle_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/PM-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/PM-AvailabilityService/internal/api/middleware"
	availabilityService "github.com/m04kA/PM-AvailabilityService/internal/service/availability"
)

const (
	msgInvalidPhotographerID = "некорректный ID фотографа"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDateOrTime     = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgUnauthorized          = "требуется аутентификация"
	msgPhotographerNotFound  = "фотограф не найден"
	msgAccessDenied          = "доступ запрещен"
	msgInvalidSlot           = "некорректный временной слот"
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

// Handle PATCH /api/v1/photographers/{photographerId}/availability/slots
// Требует аутентификации: идентификатор пользователя берется из контекста
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем photographerId из URL
	photographerIDStr := vars["photographerId"]
	photographerID, err := strconv.ParseInt(photographerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /photographers/{id}/availability/slots - Invalid photographer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPhotographerID)
		return
	}

	// Извлекаем userID из контекста (проставлен auth middleware)
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /photographers/{id}/availability/slots - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req ToggleSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /photographers/{id}/availability/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель сервиса (с парсингом даты и времени)
	serviceReq, err := req.ToServiceRequest(photographerID, userID)
	if err != nil {
		h.logger.Warn("PATCH /photographers/{id}/availability/slots - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем сервис
	result, err := h.service.ToggleSlot(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrPhotographerNotFound):
			h.logger.Warn("PATCH /photographers/{id}/availability/slots - Photographer not found: photographer_id=%d",
				photographerID)
			handlers.RespondNotFound(w, msgPhotographerNotFound)

		case errors.Is(err, availabilityService.ErrAccessDenied):
			h.logger.Warn("PATCH /photographers/{id}/availability/slots - Access denied: photographer_id=%d, user_id=%d",
				photographerID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("PATCH /photographers/{id}/availability/slots - Invalid slot: photographer_id=%d, date=%s, time=%s",
				photographerID, req.Date, req.Time)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		default:
			h.logger.Error("PATCH /photographers/{id}/availability/slots - Failed to toggle slot: photographer_id=%d, error=%v",
				photographerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /photographers/{id}/availability/slots - Slot toggled successfully: photographer_id=%d, date=%s, time=%s, status=%s",
		photographerID, result.Date, result.Time, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
