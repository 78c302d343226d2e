package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/autovalley/AV-RentalService/internal/infra/storage/booking"
	userRepo "github.com/autovalley/AV-RentalService/internal/infra/storage/user"
	"github.com/autovalley/AV-RentalService/internal/service/bookings/models"
)

// Service сервис чтения журнала бронирований.
// Все мутации журнала проходят через use case'ы reserve_vehicle / return_booking.
type Service struct {
	bookingRepo BookingRepository
	userRepo    UserRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по внутреннему ключу.
// Видеть бронирование может его владелец или администратор.
func (s *Service) GetByID(ctx context.Context, id string, requestingUserID string) (*models.BookingResponse, error) {
	s.logger.Info("GetBooking: fetching booking=%s for user=%s", id, requestingUserID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetBooking: booking=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetBooking: repository error for booking=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !booking.BelongsTo(requestingUserID) {
		if err := s.checkAdminAccess(ctx, requestingUserID); err != nil {
			s.logger.Warn("GetBooking: access denied for user=%s to booking=%s", requestingUserID, id)
			return nil, ErrAccessDenied
		}
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает бронирования пользователя в порядке добавления.
// Свою историю видит сам пользователь, чужую — только администратор.
func (s *Service) GetUserBookings(ctx context.Context, userID, requestingUserID string) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s, requested by user=%s", userID, requestingUserID)

	if userID != requestingUserID {
		if err := s.checkAdminAccess(ctx, requestingUserID); err != nil {
			s.logger.Warn("GetUserBookings: access denied for user=%s to history of user=%s",
				requestingUserID, userID)
			return nil, ErrAccessDenied
		}
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%s", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}

// GetAllBookings возвращает весь журнал (операторский обзор, только администраторам)
func (s *Service) GetAllBookings(ctx context.Context, requestingUserID string) (*models.BookingListResponse, error) {
	s.logger.Info("GetAllBookings: requested by user=%s", requestingUserID)

	if err := s.checkAdminAccess(ctx, requestingUserID); err != nil {
		s.logger.Warn("GetAllBookings: access denied for user=%s", requestingUserID)
		return nil, ErrAccessDenied
	}

	bookings, err := s.bookingRepo.List(ctx)
	if err != nil {
		s.logger.Error("GetAllBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAllBookings: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// checkAdminAccess проверяет, что пользователь является администратором
func (s *Service) checkAdminAccess(ctx context.Context, userID string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("%w: checkAdminAccess - failed to get user: %v", ErrInternal, err)
	}

	if !user.IsAdmin() {
		return ErrAccessDenied
	}
	return nil
}
