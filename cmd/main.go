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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/d1mayak/CPB-AvailabilityService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/d1mayak/CPB-AvailabilityService/internal/api/handlers/create_booking"
	getAvailabilitySummaryHandler "github.com/d1mayak/CPB-AvailabilityService/internal/api/handlers/get_availability_summary"
	getAvailableSlotsHandler "github.com/d1mayak/CPB-AvailabilityService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/d1mayak/CPB-AvailabilityService/internal/api/handlers/get_booking"
	getCompanionBookingsHandler "github.com/d1mayak/CPB-AvailabilityService/internal/api/handlers/get_companion_bookings"
	getNextSlotHandler "github.com/d1mayak/CPB-AvailabilityService/internal/api/handlers/get_next_slot"
	getScheduleHandler "github.com/d1mayak/CPB-AvailabilityService/internal/api/handlers/get_schedule"
	getUserBookingsHandler "github.com/d1mayak/CPB-AvailabilityService/internal/api/handlers/get_user_bookings"
	respondBookingHandler "github.com/d1mayak/CPB-AvailabilityService/internal/api/handlers/respond_booking"
	updateScheduleHandler "github.com/d1mayak/CPB-AvailabilityService/internal/api/handlers/update_schedule"
	validateBookingHandler "github.com/d1mayak/CPB-AvailabilityService/internal/api/handlers/validate_booking"
	"github.com/d1mayak/CPB-AvailabilityService/internal/api/middleware"
	"github.com/d1mayak/CPB-AvailabilityService/internal/config"
	bookingRepo "github.com/d1mayak/CPB-AvailabilityService/internal/infra/storage/booking"
	scheduleRepo "github.com/d1mayak/CPB-AvailabilityService/internal/infra/storage/schedule"
	profileServiceClient "github.com/d1mayak/CPB-AvailabilityService/internal/integrations/profileservice"
	bookingsService "github.com/d1mayak/CPB-AvailabilityService/internal/service/bookings"
	scheduleService "github.com/d1mayak/CPB-AvailabilityService/internal/service/schedule"
	createBookingUC "github.com/d1mayak/CPB-AvailabilityService/internal/usecase/create_booking"
	getAvailabilitySummaryUC "github.com/d1mayak/CPB-AvailabilityService/internal/usecase/get_availability_summary"
	getAvailableSlotsUC "github.com/d1mayak/CPB-AvailabilityService/internal/usecase/get_available_slots"
	getNextSlotUC "github.com/d1mayak/CPB-AvailabilityService/internal/usecase/get_next_slot"
	validateBookingUC "github.com/d1mayak/CPB-AvailabilityService/internal/usecase/validate_booking"
	"github.com/d1mayak/CPB-AvailabilityService/pkg/dbmetrics"
	"github.com/d1mayak/CPB-AvailabilityService/pkg/logger"
	"github.com/d1mayak/CPB-AvailabilityService/pkg/metrics"
	"github.com/d1mayak/CPB-AvailabilityService/pkg/simpletxmanager"
	"github.com/d1mayak/CPB-AvailabilityService/pkg/txmanager"
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

	log.Info("Starting CPB-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционного клиента
	profileClient := profileServiceClient.NewClient(
		cfg.ProfileService.URL,
		time.Duration(cfg.ProfileService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (ProfileService=%s timeout=%ds)",
		cfg.ProfileService.URL, cfg.ProfileService.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, txMgr, log)

	// Инициализируем use cases
	validateBookingUseCase := validateBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		profileClient,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		log,
	)

	getNextSlotUseCase := getNextSlotUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		log,
	)

	getAvailabilitySummaryUseCase := getAvailabilitySummaryUC.NewUseCase(
		scheduleRepository,
		log,
	)

	// Инициализируем handlers
	validateBooking := validateBookingHandler.NewHandler(validateBookingUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getNextSlot := getNextSlotHandler.NewHandler(getNextSlotUseCase, log)
	getAvailabilitySummary := getAvailabilitySummaryHandler.NewHandler(getAvailabilitySummaryUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	respondBooking := respondBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getCompanionBookings := getCompanionBookingsHandler.NewHandler(bookingSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка кандидата бронирования (UI дергает её на каждое изменение формы)
	api.HandleFunc("/bookings/validate", validateBooking.Handle).Methods(http.MethodPost)

	// Слоты собеседника на дату
	api.HandleFunc("/companions/{companionId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Ближайший свободный слот
	api.HandleFunc("/companions/{companionId}/next-slot", getNextSlot.Handle).Methods(http.MethodGet)

	// Сводка доступности за период (календарь)
	api.HandleFunc("/companions/{companionId}/availability", getAvailabilitySummary.Handle).Methods(http.MethodGet)

	// Недельное расписание собеседника
	api.HandleFunc("/companions/{companionId}/schedule", getSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Ответ собеседника на запрос бронирования
	protected.HandleFunc("/bookings/{bookingId}/respond", respondBooking.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Кабинет собеседника ---
	// Входящие бронирования собеседника
	protected.HandleFunc("/companions/{companionId}/bookings", getCompanionBookings.Handle).Methods(http.MethodGet)

	// Обновление недельного расписания
	protected.HandleFunc("/companions/{companionId}/schedule", updateSchedule.Handle).Methods(http.MethodPut)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
