package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createVehicleHandler "github.com/autovalley/AV-RentalService/internal/api/handlers/create_vehicle"
	getBookingHandler "github.com/autovalley/AV-RentalService/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/autovalley/AV-RentalService/internal/api/handlers/get_user_bookings"
	getVehicleHandler "github.com/autovalley/AV-RentalService/internal/api/handlers/get_vehicle"
	listBookingsHandler "github.com/autovalley/AV-RentalService/internal/api/handlers/list_bookings"
	listVehiclesHandler "github.com/autovalley/AV-RentalService/internal/api/handlers/list_vehicles"
	registerUserHandler "github.com/autovalley/AV-RentalService/internal/api/handlers/register_user"
	reserveVehicleHandler "github.com/autovalley/AV-RentalService/internal/api/handlers/reserve_vehicle"
	returnBookingHandler "github.com/autovalley/AV-RentalService/internal/api/handlers/return_booking"
	"github.com/autovalley/AV-RentalService/internal/api/middleware"
	"github.com/autovalley/AV-RentalService/internal/config"
	"github.com/autovalley/AV-RentalService/internal/domain"
	bookingRepo "github.com/autovalley/AV-RentalService/internal/infra/storage/booking"
	userRepo "github.com/autovalley/AV-RentalService/internal/infra/storage/user"
	vehicleRepo "github.com/autovalley/AV-RentalService/internal/infra/storage/vehicle"
	"github.com/autovalley/AV-RentalService/internal/pricing"
	bookingsService "github.com/autovalley/AV-RentalService/internal/service/bookings"
	usersService "github.com/autovalley/AV-RentalService/internal/service/users"
	vehiclesService "github.com/autovalley/AV-RentalService/internal/service/vehicles"
	reserveVehicleUC "github.com/autovalley/AV-RentalService/internal/usecase/reserve_vehicle"
	returnBookingUC "github.com/autovalley/AV-RentalService/internal/usecase/return_booking"
	"github.com/autovalley/AV-RentalService/pkg/logger"
	"github.com/autovalley/AV-RentalService/pkg/metrics"
	"github.com/autovalley/AV-RentalService/pkg/vehiclelock"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting AV-RentalService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем хранилище по выбранному драйверу
	var (
		vehicles vehicleRepo.Repository
		bookings bookingRepo.Repository
		users    userRepo.Repository
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		vehicles = vehicleRepo.NewPostgresRepository(db)
		bookings = bookingRepo.NewPostgresRepository(db)
		users = userRepo.NewPostgresRepository(db)

	default:
		vehicles = vehicleRepo.NewMemoryRepository()
		bookings = bookingRepo.NewMemoryRepository()
		users = userRepo.NewMemoryRepository()
		log.Info("Using in-memory storage")
	}

	// Наполняем реестр демонстрационными данными (если включено)
	if cfg.Seed.Enabled {
		if err := seedVehicles(context.Background(), vehicles); err != nil {
			log.Warn("Failed to seed demo vehicles: %v", err)
		} else {
			log.Info("Demo vehicles seeded")
		}
	}

	// Замок транспорта для атомарных операций бронирования и возврата
	locker := vehiclelock.New()

	// Ценовая политика
	pricingPolicy := pricing.NewPolicy()

	// Инициализируем сервисы
	userSvc := usersService.NewService(users, log)
	vehicleSvc := vehiclesService.NewService(
		vehicles,
		users,
		vehiclesService.YearRange{Min: cfg.Rental.MinYear, Max: cfg.Rental.MaxYear},
		log,
	)
	bookingSvc := bookingsService.NewService(bookings, users, log)

	// Инициализируем use cases.
	// Интерфейсы метрик заполняются только при включённых метриках:
	// nil *Metrics за интерфейсом перестаёт быть nil.
	var (
		reserveMetrics reserveVehicleUC.MetricsCollector
		returnMetrics  returnBookingUC.MetricsCollector
	)
	if metricsCollector != nil {
		reserveMetrics = metricsCollector
		returnMetrics = metricsCollector
	}

	reserveVehicleUseCase := reserveVehicleUC.NewUseCase(
		vehicles,
		bookings,
		users,
		pricingPolicy,
		locker,
		reserveMetrics,
		log,
	)
	returnBookingUseCase := returnBookingUC.NewUseCase(
		vehicles,
		bookings,
		locker,
		returnMetrics,
		log,
	)

	// Инициализируем handlers
	registerUser := registerUserHandler.NewHandler(userSvc, log)
	createVehicle := createVehicleHandler.NewHandler(vehicleSvc, log)
	listVehicles := listVehiclesHandler.NewHandler(vehicleSvc, log)
	getVehicle := getVehicleHandler.NewHandler(vehicleSvc, log)
	reserveVehicle := reserveVehicleHandler.NewHandler(reserveVehicleUseCase, log)
	returnBooking := returnBookingHandler.NewHandler(returnBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация пользователя
	api.HandleFunc("/users", registerUser.Handle).Methods(http.MethodPost)

	// Каталог транспорта
	api.HandleFunc("/vehicles", listVehicles.Handle).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{vehicleId}", getVehicle.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Транспорт ---
	// Добавление транспорта (администратор)
	protected.HandleFunc("/vehicles", createVehicle.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	// Бронирование транспорта
	protected.HandleFunc("/bookings", reserveVehicle.Handle).Methods(http.MethodPost)

	// Список всех бронирований (администратор)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Возврат транспорта
	protected.HandleFunc("/bookings/{bookingId}/return", returnBooking.Handle).Methods(http.MethodPost)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// seedVehicles добавляет стартовый парк транспорта в пустой реестр
func seedVehicles(ctx context.Context, repo vehicleRepo.Repository) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC()
	demo := []*domain.Vehicle{
		{
			ID:        uuid.NewString(),
			Category:  domain.CategoryCar,
			Brand:     "Toyota",
			Model:     "Camry",
			Year:      2023,
			DailyRate: 55,
			Available: true,
			CreatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Category:  domain.CategoryBike,
			Brand:     "Yamaha",
			Model:     "R15",
			Year:      2022,
			DailyRate: 25,
			Available: true,
			CreatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			Category:  domain.CategoryTruck,
			Brand:     "Ford",
			Model:     "F150",
			Year:      2021,
			DailyRate: 100,
			Available: true,
			CreatedAt: now,
		},
	}

	for _, v := range demo {
		if _, err := repo.Create(ctx, v); err != nil {
			return err
		}
	}

	return nil
}
