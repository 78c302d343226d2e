package get_vehicle

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/autovalley/AV-RentalService/internal/api/handlers"
	"github.com/autovalley/AV-RentalService/internal/service/vehicles"
)

const (
	msgNotFound = "транспорт не найден"
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

// Handle GET /api/v1/vehicles/{vehicleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	vehicleID := vars["vehicleId"]

	result, err := h.service.GetByID(r.Context(), vehicleID)
	if err != nil {
		switch {
		case errors.Is(err, vehicles.ErrVehicleNotFound):
			h.logger.Warn("GET /vehicles/{id} - Vehicle not found: vehicle_id=%s", vehicleID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /vehicles/{id} - Failed to get vehicle: vehicle_id=%s, error=%v", vehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
