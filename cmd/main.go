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

	applyWeeklyTemplateHandler "github.com/m04kA/PM-AvailabilityService/internal/api/handlers/apply_weekly_template"
	getCalendarHandler "github.com/m04kA/PM-AvailabilityService/internal/api/handlers/get_calendar"
	getWeeklyTemplateHandler "github.com/m04kA/PM-AvailabilityService/internal/api/handlers/get_weekly_template"
	toggleSlotHandler "github.com/m04kA/PM-AvailabilityService/internal/api/handlers/toggle_slot"
	"github.com/m04kA/PM-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/PM-AvailabilityService/internal/config"
	availabilityRepo "github.com/m04kA/PM-AvailabilityService/internal/infra/storage/availability"
	sessionRepo "github.com/m04kA/PM-AvailabilityService/internal/infra/storage/session"
	profileServiceClient "github.com/m04kA/PM-AvailabilityService/internal/integrations/profileservice"
	availabilityService "github.com/m04kA/PM-AvailabilityService/internal/service/availability"
	applyWeeklyTemplateUC "github.com/m04kA/PM-AvailabilityService/internal/usecase/apply_weekly_template"
	getCalendarUC "github.com/m04kA/PM-AvailabilityService/internal/usecase/get_calendar"
	"github.com/m04kA/PM-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/PM-AvailabilityService/pkg/logger"
	"github.com/m04kA/PM-AvailabilityService/pkg/metrics"
	"github.com/m04kA/PM-AvailabilityService/pkg/simpletxmanager"
	"github.com/m04kA/PM-AvailabilityService/pkg/txmanager"
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

	log.Info("Starting PM-AvailabilityService...")
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

	// Инициализируем клиент ProfileService
	profileClient := profileServiceClient.NewClient(
		cfg.ProfileService.URL,
		time.Duration(cfg.ProfileService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (ProfileService=%s timeout=%ds)",
		cfg.ProfileService.URL, cfg.ProfileService.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		availabilityRepository *availabilityRepo.Repository
		sessionRepository      *sessionRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		sessionRepository = sessionRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		availabilityRepository = availabilityRepo.NewRepository(db)
		sessionRepository = sessionRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервис доступности
	availabilitySvc := availabilityService.NewService(
		availabilityRepository,
		profileClient,
		txMgr,
		log,
	)

	// Инициализируем use cases
	applyWeeklyTemplateUseCase := applyWeeklyTemplateUC.NewUseCase(
		availabilityRepository,
		profileClient,
		txMgr,
		log,
	)

	getCalendarUseCase := getCalendarUC.NewUseCase(
		availabilityRepository,
		sessionRepository,
		log,
	)

	// Инициализируем handlers
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getWeeklyTemplate := getWeeklyTemplateHandler.NewHandler(availabilitySvc, log)
	applyWeeklyTemplate := applyWeeklyTemplateHandler.NewHandler(applyWeeklyTemplateUseCase, log)
	toggleSlot := toggleSlotHandler.NewHandler(availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Request ID проставляется всем запросам
	r.Use(middleware.RequestID)

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

	// Календарь фотографа: доступность + наложенные сессии
	api.HandleFunc("/photographers/{photographerId}/calendar",
		getCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Недельный шаблон доступности
	protected.HandleFunc("/photographers/{photographerId}/weekly-template",
		getWeeklyTemplate.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/photographers/{photographerId}/weekly-template",
		applyWeeklyTemplate.Handle).Methods(http.MethodPut)

	// Точечное переключение слота
	protected.HandleFunc("/photographers/{photographerId}/availability/slots",
		toggleSlot.Handle).Methods(http.MethodPatch)

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
