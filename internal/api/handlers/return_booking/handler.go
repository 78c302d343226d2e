package return_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/autovalley/AV-RentalService/internal/api/handlers"
	"github.com/autovalley/AV-RentalService/internal/api/middleware"
	returnBooking "github.com/autovalley/AV-RentalService/internal/usecase/return_booking"
)

const (
	msgBookingNotFound      = "бронирование не найдено"
	msgAccessDenied         = "бронирование принадлежит другому пользователю"
	msgAlreadyReturned      = "транспорт уже возвращён"
	msgInvalidInput         = "некорректные параметры запроса"
	msgUserNotAuthenticated = "пользователь не аутентифицирован"
)

type Handler struct {
	useCase ReturnBookingUseCase
	logger  Logger
}

func NewHandler(useCase ReturnBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/return
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{bookingId}/return - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUserNotAuthenticated)
		return
	}

	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	result, err := h.useCase.Execute(r.Context(), &returnBooking.Request{
		BookingID: bookingID,
		UserID:    userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, returnBooking.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/%s/return - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, returnBooking.ErrAccessDenied):
			h.logger.Warn("POST /bookings/%s/return - Access denied: user_id=%s", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, returnBooking.ErrAlreadyReturned):
			h.logger.Warn("POST /bookings/%s/return - Already returned: user_id=%s", bookingID, userID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyReturned)

		case errors.Is(err, returnBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/%s/return - Invalid input: user_id=%s", bookingID, userID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/%s/return - Failed to return booking: user_id=%s, error=%v",
				bookingID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings/%s/return - Booking returned successfully: user_id=%s, vehicle_id=%s",
		bookingID, userID, result.VehicleID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
