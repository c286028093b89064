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

	cancelAppointmentHandler "github.com/salonhub/booking-service/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/salonhub/booking-service/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/salonhub/booking-service/internal/api/handlers/get_appointment"
	getClientAppointmentsHandler "github.com/salonhub/booking-service/internal/api/handlers/get_client_appointments"
	getSettingsHandler "github.com/salonhub/booking-service/internal/api/handlers/get_settings"
	getStaffAppointmentsHandler "github.com/salonhub/booking-service/internal/api/handlers/get_staff_appointments"
	getSuggestionsHandler "github.com/salonhub/booking-service/internal/api/handlers/get_suggestions"
	listServicesHandler "github.com/salonhub/booking-service/internal/api/handlers/list_services"
	rescheduleAppointmentHandler "github.com/salonhub/booking-service/internal/api/handlers/reschedule_appointment"
	updateSettingsHandler "github.com/salonhub/booking-service/internal/api/handlers/update_settings"
	"github.com/salonhub/booking-service/internal/api/middleware"
	"github.com/salonhub/booking-service/internal/config"
	appointmentRepo "github.com/salonhub/booking-service/internal/infra/storage/appointment"
	catalogRepo "github.com/salonhub/booking-service/internal/infra/storage/servicecatalog"
	settingsRepo "github.com/salonhub/booking-service/internal/infra/storage/settings"
	"github.com/salonhub/booking-service/internal/service/scheduling"
	cancelAppointmentUC "github.com/salonhub/booking-service/internal/usecase/cancel_appointment"
	createAppointmentUC "github.com/salonhub/booking-service/internal/usecase/create_appointment"
	getAppointmentUC "github.com/salonhub/booking-service/internal/usecase/get_appointment"
	getClientAppointmentsUC "github.com/salonhub/booking-service/internal/usecase/get_client_appointments"
	getSettingsUC "github.com/salonhub/booking-service/internal/usecase/get_settings"
	getStaffAppointmentsUC "github.com/salonhub/booking-service/internal/usecase/get_staff_appointments"
	getSuggestionsUC "github.com/salonhub/booking-service/internal/usecase/get_suggestions"
	listServicesUC "github.com/salonhub/booking-service/internal/usecase/list_services"
	rescheduleAppointmentUC "github.com/salonhub/booking-service/internal/usecase/reschedule_appointment"
	updateSettingsUC "github.com/salonhub/booking-service/internal/usecase/update_settings"
	"github.com/salonhub/booking-service/pkg/dbmetrics"
	"github.com/salonhub/booking-service/pkg/logger"
	"github.com/salonhub/booking-service/pkg/metrics"
	"github.com/salonhub/booking-service/pkg/simpletxmanager"
	"github.com/salonhub/booking-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	defer close(stopMetricsCh)

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Repositories and transaction manager, with or without metrics
	var (
		appointmentRepository *appointmentRepo.Repository
		settingsRepository    *settingsRepo.Repository
		catalogRepository     *catalogRepo.Repository
		schedulingMetrics     scheduling.MetricsRecorder
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		schedulingMetrics = metricsCollector
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Scheduling core: the validator and the suggestion generator share
	// the same rule evaluator and conflict detector
	validator := scheduling.NewValidator(appointmentRepository, settingsRepository, schedulingMetrics, log)
	suggester := scheduling.NewSuggester(appointmentRepository, settingsRepository, schedulingMetrics, log)

	// Use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalogRepository,
		settingsRepository,
		validator,
		suggester,
		txMgr,
		log,
	)
	rescheduleAppointmentUseCase := rescheduleAppointmentUC.NewUseCase(
		appointmentRepository,
		settingsRepository,
		validator,
		suggester,
		txMgr,
		log,
	)
	cancelAppointmentUseCase := cancelAppointmentUC.NewUseCase(
		appointmentRepository,
		settingsRepository,
		&scheduling.RealTimeProvider{},
		log,
	)
	getAppointmentUseCase := getAppointmentUC.NewUseCase(appointmentRepository, log)
	getClientAppointmentsUseCase := getClientAppointmentsUC.NewUseCase(appointmentRepository, log)
	getStaffAppointmentsUseCase := getStaffAppointmentsUC.NewUseCase(appointmentRepository, log)
	getSuggestionsUseCase := getSuggestionsUC.NewUseCase(suggester, catalogRepository, settingsRepository, log)
	getSettingsUseCase := getSettingsUC.NewUseCase(settingsRepository, log)
	updateSettingsUseCase := updateSettingsUC.NewUseCase(settingsRepository, log)
	listServicesUseCase := listServicesUC.NewUseCase(catalogRepository, log)

	// Handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(rescheduleAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(cancelAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(getAppointmentUseCase, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(getClientAppointmentsUseCase, log)
	getStaffAppointments := getStaffAppointmentsHandler.NewHandler(getStaffAppointmentsUseCase, log)
	getSuggestions := getSuggestionsHandler.NewHandler(getSuggestionsUseCase, log)
	getSettings := getSettingsHandler.NewHandler(getSettingsUseCase, log)
	updateSettings := updateSettingsHandler.NewHandler(updateSettingsUseCase, log)
	listServices := listServicesHandler.NewHandler(listServicesUseCase, log)

	// Router
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff/{staffId}/suggestions", getSuggestions.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff/{staffId}/appointments", getStaffAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)

	// Protected routes (require X-User-ID header)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/reschedule", rescheduleAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/clients/{clientId}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
