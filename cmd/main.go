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

	confirmCancellationHandler "github.com/crosscourts/court-booking-service/internal/api/handlers/confirm_cancellation"
	createBookingHandler "github.com/crosscourts/court-booking-service/internal/api/handlers/create_booking"
	editBookingHandler "github.com/crosscourts/court-booking-service/internal/api/handlers/edit_booking"
	getBookingHandler "github.com/crosscourts/court-booking-service/internal/api/handlers/get_booking"
	getBookingHistoryHandler "github.com/crosscourts/court-booking-service/internal/api/handlers/get_booking_history"
	getCourtsHandler "github.com/crosscourts/court-booking-service/internal/api/handlers/get_courts"
	getScheduleHandler "github.com/crosscourts/court-booking-service/internal/api/handlers/get_schedule"
	requestCancellationHandler "github.com/crosscourts/court-booking-service/internal/api/handlers/request_cancellation"
	updateScheduleHandler "github.com/crosscourts/court-booking-service/internal/api/handlers/update_schedule"
	"github.com/crosscourts/court-booking-service/internal/api/middleware"
	"github.com/crosscourts/court-booking-service/internal/config"
	bookingRepo "github.com/crosscourts/court-booking-service/internal/infra/storage/booking"
	cancellationRepo "github.com/crosscourts/court-booking-service/internal/infra/storage/cancellation"
	courtRepo "github.com/crosscourts/court-booking-service/internal/infra/storage/court"
	scheduleRepo "github.com/crosscourts/court-booking-service/internal/infra/storage/schedule"
	notifyServiceClient "github.com/crosscourts/court-booking-service/internal/integrations/notifyservice"
	bookingsService "github.com/crosscourts/court-booking-service/internal/service/bookings"
	courtsService "github.com/crosscourts/court-booking-service/internal/service/courts"
	confirmCancellationUC "github.com/crosscourts/court-booking-service/internal/usecase/confirm_cancellation"
	createBookingUC "github.com/crosscourts/court-booking-service/internal/usecase/create_booking"
	editBookingUC "github.com/crosscourts/court-booking-service/internal/usecase/edit_booking"
	getScheduleUC "github.com/crosscourts/court-booking-service/internal/usecase/get_schedule"
	requestCancellationUC "github.com/crosscourts/court-booking-service/internal/usecase/request_cancellation"
	updateScheduleUC "github.com/crosscourts/court-booking-service/internal/usecase/update_schedule"
	"github.com/crosscourts/court-booking-service/pkg/dbmetrics"
	"github.com/crosscourts/court-booking-service/pkg/logger"
	"github.com/crosscourts/court-booking-service/pkg/metrics"
	"github.com/crosscourts/court-booking-service/pkg/simpletxmanager"
	"github.com/crosscourts/court-booking-service/pkg/txmanager"
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

	log.Info("Starting court-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Все времена интерпретируются в таймзоне деплоя
	location, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Schedule.Timezone, err)
	}
	time.Local = location
	log.Info("Timezone set to %s", cfg.Schedule.Timezone)

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

	// Инициализируем клиент шлюза уведомлений
	notifyClient := notifyServiceClient.NewClient(
		cfg.NotifyService.URL,
		time.Duration(cfg.NotifyService.Timeout)*time.Second,
		log,
	)
	log.Info("Notify gateway client initialized (url=%s timeout=%ds)",
		cfg.NotifyService.URL, cfg.NotifyService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		scheduleRepository     *scheduleRepo.Repository
		cancellationRepository *cancellationRepo.Repository
		courtRepository        *courtRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		// Инициализируем репозитории с обёрткой метрик
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		cancellationRepository = cancellationRepo.NewRepository(wrappedDB)
		courtRepository = courtRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		// Инициализируем репозитории без метрик
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		cancellationRepository = cancellationRepo.NewRepository(db)
		courtRepository = courtRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		courtRepository,
		log,
	)
	courtSvc := courtsService.NewService(
		courtRepository,
		log,
	)

	// Инициализируем use cases
	getScheduleUseCase := getScheduleUC.NewUseCase(
		courtRepository,
		scheduleRepository,
		bookingRepository,
		log,
	)

	updateScheduleUseCase := updateScheduleUC.NewUseCase(
		courtRepository,
		scheduleRepository,
		bookingRepository,
		txMgr,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		courtRepository,
		scheduleRepository,
		bookingRepository,
		notifyClient,
		txMgr,
		log,
	)

	editBookingUseCase := editBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		txMgr,
		log,
	)

	requestCancellationUseCase := requestCancellationUC.NewUseCase(
		bookingRepository,
		cancellationRepository,
		notifyClient,
		txMgr,
		cfg.Cancellation.CodeDigits,
		time.Duration(cfg.Cancellation.CodeTTLMinutes)*time.Minute,
		log,
	)

	confirmCancellationUseCase := confirmCancellationUC.NewUseCase(
		bookingRepository,
		cancellationRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getCourts := getCourtsHandler.NewHandler(courtSvc, log)
	getSchedule := getScheduleHandler.NewHandler(getScheduleUseCase, log)
	updateSchedule := updateScheduleHandler.NewHandler(updateScheduleUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookingHistory := getBookingHistoryHandler.NewHandler(bookingSvc, log)
	editBooking := editBookingHandler.NewHandler(editBookingUseCase, log)
	requestCancellation := requestCancellationHandler.NewHandler(requestCancellationUseCase, log)
	confirmCancellation := confirmCancellationHandler.NewHandler(confirmCancellationUseCase, log)

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

	// Справочник кортов
	api.HandleFunc("/courts", getCourts.Handle).Methods(http.MethodGet)

	// Сетка слотов корта на день
	api.HandleFunc("/courts/{courtId}/slots", getSchedule.Handle).Methods(http.MethodGet)

	// Запрос кода отмены и подтверждение отмены кодом:
	// доступ гейтится самим кодом, доставляемым на телефон брони
	api.HandleFunc("/bookings/{bookingId}/cancellation-code",
		requestCancellation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/cancellation-verify",
		confirmCancellation.Handle).Methods(http.MethodPost)

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

	// Изменение бронирования
	protected.HandleFunc("/bookings/{bookingId}", editBooking.Handle).Methods(http.MethodPut)

	// История бронирований корта
	protected.HandleFunc("/courts/{courtId}/bookings", getBookingHistory.Handle).Methods(http.MethodGet)

	// --- Управление сеткой ---
	// Полная замена сетки (корт, дата)
	protected.HandleFunc("/courts/{courtId}/schedule", updateSchedule.Handle).Methods(http.MethodPut)

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
