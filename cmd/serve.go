package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	createBookingHandler "github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers/create_booking"
	freezeSubscriptionHandler "github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers/freeze_subscription"
	getAvailableSlotsHandler "github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers/get_booking"
	getQuotaHandler "github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers/get_quota"
	getScheduleHandler "github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers/get_schedule"
	getSubscriptionHandler "github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers/get_subscription"
	getTariffPriceHandler "github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers/get_tariff_price"
	listTariffsHandler "github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers/list_tariffs"
	normalizeWindowHandler "github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers/normalize_window"
	purchaseSubscriptionHandler "github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers/purchase_subscription"
	reloadTariffsHandler "github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers/reload_tariffs"
	revokeSubscriptionHandler "github.com/maris-volk/CRM-fitness-room-sub000/internal/api/handlers/revoke_subscription"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/api/middleware"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/domain"
	bookingRepo "github.com/maris-volk/CRM-fitness-room-sub000/internal/infra/storage/booking"
	subscriptionRepo "github.com/maris-volk/CRM-fitness-room-sub000/internal/infra/storage/subscription"
	tariffRepo "github.com/maris-volk/CRM-fitness-room-sub000/internal/infra/storage/tariff"
	bookingsService "github.com/maris-volk/CRM-fitness-room-sub000/internal/service/bookings"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/catalog"
	subscriptionsService "github.com/maris-volk/CRM-fitness-room-sub000/internal/service/subscriptions"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/timewindow"
	createBookingUC "github.com/maris-volk/CRM-fitness-room-sub000/internal/usecase/create_booking"
	freezeSubscriptionUC "github.com/maris-volk/CRM-fitness-room-sub000/internal/usecase/freeze_subscription"
	getAvailableSlotsUC "github.com/maris-volk/CRM-fitness-room-sub000/internal/usecase/get_available_slots"
	purchaseSubscriptionUC "github.com/maris-volk/CRM-fitness-room-sub000/internal/usecase/purchase_subscription"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/dbmetrics"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/metrics"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/txmanager"
)

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(*configPath)
		},
	}
}

func serve(configPath string) error {
	cfg, log, err := bootstrap(configPath)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Starting fitness CRM...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := openDB(cfg.Database, log)
	if err != nil {
		log.Error("%v", err)
		return err
	}
	defer db.Close()

	// Без метрик обёртка работает как обычный *sql.DB
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Настройки зала и тарифов уже проверены в config.Load
	validator, err := timewindow.New(cfg.Gym.Window())
	if err != nil {
		return fmt.Errorf("gym settings: %w", err)
	}
	codec, err := cfg.Tariffs.Codec()
	if err != nil {
		return fmt.Errorf("tariff combinations: %w", err)
	}
	basePrice, err := cfg.Tariffs.Price()
	if err != nil {
		return fmt.Errorf("base price: %w", err)
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	subscriptionRepository := subscriptionRepo.NewRepository(wrappedDB)
	tariffRepository := tariffRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	tariffCatalog := catalog.NewCatalog(tariffRepository, metricsCollector, log)
	if _, err := tariffCatalog.Load(context.Background()); err != nil {
		// Каталог загрузится при первом обращении
		log.Warn("Tariff catalog is not loaded at startup: %v", err)
	}
	scheduleSvc := bookingsService.NewService(bookingRepository, log)
	subscriptionSvc := subscriptionsService.NewService(subscriptionRepository, bookingRepository, txMgr, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		subscriptionRepository,
		txMgr,
		validator,
		metricsCollector,
		log,
	)
	freezeSubscriptionUseCase := freezeSubscriptionUC.NewUseCase(subscriptionRepository, txMgr, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, validator, log)
	purchaseSubscriptionUseCase := purchaseSubscriptionUC.NewUseCase(
		codec,
		tariffCatalog,
		subscriptionRepository,
		txMgr,
		basePrice,
		log,
	)

	// Инициализируем handlers
	createVisit := createBookingHandler.NewHandler(createBookingUseCase, domain.KindGymVisit, log)
	createSlot := createBookingHandler.NewHandler(createBookingUseCase, domain.KindTrainerSlot, log)
	normalizeWindow := normalizeWindowHandler.NewHandler(validator, log)
	clientSchedule := getScheduleHandler.NewClientHandler(scheduleSvc, log)
	trainerSchedule := getScheduleHandler.NewTrainerHandler(scheduleSvc, log)
	getBooking := getBookingHandler.NewHandler(scheduleSvc, log)
	availableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getSubscription := getSubscriptionHandler.NewHandler(subscriptionSvc, log)
	purchaseSubscription := purchaseSubscriptionHandler.NewHandler(purchaseSubscriptionUseCase, log)
	revokeSubscription := revokeSubscriptionHandler.NewHandler(subscriptionSvc, log)
	freezeSubscription := freezeSubscriptionHandler.NewHandler(freezeSubscriptionUseCase, log)
	getQuota := getQuotaHandler.NewHandler(subscriptionSvc, log)
	listTariffs := listTariffsHandler.NewHandler(purchaseSubscriptionUseCase, log)
	getTariffPrice := getTariffPriceHandler.NewHandler(purchaseSubscriptionUseCase, log)
	reloadTariffs := reloadTariffsHandler.NewHandler(tariffCatalog, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Бронирования ---
	api.HandleFunc("/bookings/visits", createVisit.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/slots", createSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/windows/normalize", normalizeWindow.Handle).Methods(http.MethodPost)
	api.HandleFunc("/clients/{clientId}/schedule", clientSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/trainers/{trainerId}/schedule", trainerSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/trainers/{trainerId}/available-slots", availableSlots.Handle).Methods(http.MethodGet)

	// --- Абонементы ---
	api.HandleFunc("/clients/{clientId}/subscription", getSubscription.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}/subscription", purchaseSubscription.Handle).Methods(http.MethodPost)
	api.HandleFunc("/clients/{clientId}/subscription", revokeSubscription.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/clients/{clientId}/subscription/freeze", freezeSubscription.Handle).Methods(http.MethodPost)
	api.HandleFunc("/clients/{clientId}/quota", getQuota.Handle).Methods(http.MethodGet)

	// --- Тарифы ---
	api.HandleFunc("/tariffs", listTariffs.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tariffs/price", getTariffPrice.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tariffs/reload", reloadTariffs.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения или падение сервера
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		log.Error("Server failed to start: %v", err)
		close(stopMetricsCh)
		return err
	}

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
