package list_vehicles

import (
	"net/http"

	"github.com/autovalley/AV-RentalService/internal/api/handlers"
	"github.com/autovalley/AV-RentalService/internal/service/vehicles/models"
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

// Handle GET /api/v1/vehicles?available=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	onlyAvailable := r.URL.Query().Get("available") == "true"

	var (
		result *models.VehicleListResponse
		err    error
	)
	if onlyAvailable {
		result, err = h.service.ListAvailable(r.Context())
	} else {
		result, err = h.service.List(r.Context())
	}

	if err != nil {
		h.logger.Error("GET /vehicles - Failed to list vehicles: available=%t, error=%v", onlyAvailable, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
