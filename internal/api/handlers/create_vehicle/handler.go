package create_vehicle

import (
	"errors"
	"net/http"

	"github.com/autovalley/AV-RentalService/internal/api/handlers"
	"github.com/autovalley/AV-RentalService/internal/api/middleware"
	"github.com/autovalley/AV-RentalService/internal/service/vehicles"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные транспорта"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgUserNotFound       = "пользователь не найден"
)

type Handler struct {
	service VehicleService
	logger  Logger
}

func NewHandler(service VehicleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/vehicles
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /vehicles - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /vehicles - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrInvalidInput):
			h.logger.Warn("POST /vehicles - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, vehicles.ErrAccessDenied):
			h.logger.Warn("POST /vehicles - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, vehicles.ErrUserNotFound):
			h.logger.Warn("POST /vehicles - User not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("POST /vehicles - Failed to create vehicle: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /vehicles - Vehicle created successfully: vehicle_id=%s, user_id=%s", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
