package reserve_vehicle

import (
	"errors"
	"net/http"

	"github.com/autovalley/AV-RentalService/internal/api/handlers"
	"github.com/autovalley/AV-RentalService/internal/api/middleware"
	reserveVehicle "github.com/autovalley/AV-RentalService/internal/usecase/reserve_vehicle"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange         = "дата окончания должна быть позже даты начала"
	msgVehicleNotAvailable  = "транспорт уже забронирован"
	msgVehicleNotFound      = "транспорт не найден"
	msgUserNotFound         = "пользователь не найден"
	msgAccessDenied         = "бронирование доступно только клиентам"
	msgInvalidInput         = "некорректные параметры бронирования"
	msgUserNotAuthenticated = "пользователь не аутентифицирован"
)

type Handler struct {
	useCase ReserveVehicleUseCase
	logger  Logger
}

func NewHandler(useCase ReserveVehicleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUserNotAuthenticated)
		return
	}

	var req ReserveVehicleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, reserveVehicle.ErrInvalidRange):
			h.logger.Warn("POST /bookings - Invalid date range: user_id=%s, vehicle_id=%s", userID, req.VehicleID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, reserveVehicle.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%s, vehicle_id=%s", userID, req.VehicleID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, reserveVehicle.ErrVehicleNotAvailable):
			h.logger.Warn("POST /bookings - Vehicle not available: user_id=%s, vehicle_id=%s", userID, req.VehicleID)
			handlers.RespondError(w, http.StatusConflict, msgVehicleNotAvailable)

		case errors.Is(err, reserveVehicle.ErrVehicleNotFound):
			h.logger.Warn("POST /bookings - Vehicle not found: vehicle_id=%s", req.VehicleID)
			handlers.RespondNotFound(w, msgVehicleNotFound)

		case errors.Is(err, reserveVehicle.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, reserveVehicle.ErrAccessDenied):
			h.logger.Warn("POST /bookings - Access denied: user_id=%s", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("POST /bookings - Failed to reserve vehicle: user_id=%s, vehicle_id=%s, error=%v",
				userID, req.VehicleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, code=%s, user_id=%s, vehicle_id=%s",
		result.BookingID, result.Code, userID, req.VehicleID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
