package list_bookings

import (
	"errors"
	"net/http"

	"github.com/autovalley/AV-RentalService/internal/api/handlers"
	"github.com/autovalley/AV-RentalService/internal/api/middleware"
	"github.com/autovalley/AV-RentalService/internal/service/bookings"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "просмотр всех бронирований доступен только администратору"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requestingUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GetAllBookings(r.Context(), requestingUserID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings - Access denied: user_id=%s", requestingUserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: user_id=%s, error=%v", requestingUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: user_id=%s, count=%d",
		requestingUserID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
