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

	createBookingHandler "github.com/nailsbynatalia/booking-service/internal/api/handlers/create_booking"
	createServiceHandler "github.com/nailsbynatalia/booking-service/internal/api/handlers/create_service"
	createSlotsHandler "github.com/nailsbynatalia/booking-service/internal/api/handlers/create_slots"
	deleteSlotHandler "github.com/nailsbynatalia/booking-service/internal/api/handlers/delete_slot"
	generateSlotsHandler "github.com/nailsbynatalia/booking-service/internal/api/handlers/generate_slots"
	getAvailableDatesHandler "github.com/nailsbynatalia/booking-service/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/nailsbynatalia/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/nailsbynatalia/booking-service/internal/api/handlers/get_booking"
	getRulesHandler "github.com/nailsbynatalia/booking-service/internal/api/handlers/get_rules"
	getServicesHandler "github.com/nailsbynatalia/booking-service/internal/api/handlers/get_services"
	listBookingsHandler "github.com/nailsbynatalia/booking-service/internal/api/handlers/list_bookings"
	sendRemindersHandler "github.com/nailsbynatalia/booking-service/internal/api/handlers/send_reminders"
	updateBookingHandler "github.com/nailsbynatalia/booking-service/internal/api/handlers/update_booking"
	updateRulesHandler "github.com/nailsbynatalia/booking-service/internal/api/handlers/update_rules"
	updateServiceHandler "github.com/nailsbynatalia/booking-service/internal/api/handlers/update_service"
	"github.com/nailsbynatalia/booking-service/internal/api/middleware"
	"github.com/nailsbynatalia/booking-service/internal/config"
	bookingRepo "github.com/nailsbynatalia/booking-service/internal/infra/storage/booking"
	notificationRepo "github.com/nailsbynatalia/booking-service/internal/infra/storage/notification"
	ruleRepo "github.com/nailsbynatalia/booking-service/internal/infra/storage/rule"
	serviceRepo "github.com/nailsbynatalia/booking-service/internal/infra/storage/service"
	slotRepo "github.com/nailsbynatalia/booking-service/internal/infra/storage/slot"
	notifierClient "github.com/nailsbynatalia/booking-service/internal/integrations/notifier"
	availabilityService "github.com/nailsbynatalia/booking-service/internal/service/availability"
	bookingsService "github.com/nailsbynatalia/booking-service/internal/service/bookings"
	catalogService "github.com/nailsbynatalia/booking-service/internal/service/catalog"
	claimSlotsUC "github.com/nailsbynatalia/booking-service/internal/usecase/claim_slots"
	generateSlotsUC "github.com/nailsbynatalia/booking-service/internal/usecase/generate_slots"
	scanRemindersUC "github.com/nailsbynatalia/booking-service/internal/usecase/scan_reminders"
	"github.com/nailsbynatalia/booking-service/pkg/dbmetrics"
	"github.com/nailsbynatalia/booking-service/pkg/logger"
	"github.com/nailsbynatalia/booking-service/pkg/metrics"
	"github.com/nailsbynatalia/booking-service/pkg/simpletxmanager"
	"github.com/nailsbynatalia/booking-service/pkg/txmanager"
)

// systemClock satisfies the TimeProvider contracts with real time.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

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

	location, err := cfg.Business.Location()
	if err != nil {
		log.Fatal("Failed to load business timezone: %v", err)
	}

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

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
	log.Info("Connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Reminder delivery is optional; without a relay URL records are
	// still written and delivery is deferred.
	var notifier scanRemindersUC.Notifier
	if cfg.Notifier.URL != "" {
		notifier = notifierClient.NewClient(
			cfg.Notifier.URL,
			time.Duration(cfg.Notifier.Timeout)*time.Second,
			log,
		)
		log.Info("Notifier client initialized (url=%s, timeout=%ds)", cfg.Notifier.URL, cfg.Notifier.Timeout)
	} else {
		log.Warn("Notifier URL not configured, reminder delivery disabled")
	}

	var (
		slotRepository         *slotRepo.Repository
		bookingRepository      *bookingRepo.Repository
		ruleRepository         *ruleRepo.Repository
		serviceRepository      *serviceRepo.Repository
		notificationRepository *notificationRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		ruleRepository = ruleRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		ruleRepository = ruleRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	clock := systemClock{}

	bookingSvc := bookingsService.New(bookingRepository, slotRepository, txMgr, log)
	availabilitySvc := availabilityService.New(slotRepository, ruleRepository, txMgr, clock, location, log)
	catalogSvc := catalogService.New(serviceRepository, log)

	claimUseCase := claimSlotsUC.New(slotRepository, bookingRepository, serviceRepository, txMgr, log)
	generateUseCase := generateSlotsUC.New(ruleRepository, slotRepository, clock, location, cfg.Business.GenerateDaysAhead, log)
	remindersUseCase := scanRemindersUC.New(slotRepository, bookingRepository, notificationRepository, notifier, clock, location, log)

	createBooking := createBookingHandler.NewHandler(claimUseCase, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(availabilitySvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(availabilitySvc, log)
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	createSlots := createSlotsHandler.NewHandler(availabilitySvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(availabilitySvc, log)
	getRules := getRulesHandler.NewHandler(availabilitySvc, log)
	updateRules := updateRulesHandler.NewHandler(availabilitySvc, log)
	generateSlots := generateSlotsHandler.NewHandler(generateUseCase, log)
	sendReminders := sendRemindersHandler.NewHandler(remindersUseCase, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: the booking flow needs no account.
	api.HandleFunc("/availability/dates", getAvailableDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Admin routes: static bearer token.
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.AdminToken, log))

	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}", updateBooking.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", updateService.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/availability/slots", createSlots.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/availability/slots/{id}", deleteSlot.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/availability/rules", getRules.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/availability/rules", updateRules.Handle).Methods(http.MethodPut)

	// Cron routes: shared secret, called by the scheduler.
	cron := api.PathPrefix("/cron").Subrouter()
	cron.Use(middleware.CronAuth(cfg.Cron.Secret, log))

	cron.HandleFunc("/generate-slots", generateSlots.Handle).Methods(http.MethodPost)
	cron.HandleFunc("/send-reminders", sendReminders.Handle).Methods(http.MethodPost)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
