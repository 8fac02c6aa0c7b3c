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
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	createBookingHandler "github.com/sirisampada/SSCC-BookingService/internal/api/handlers/create_booking"
	createPrescriptionHandler "github.com/sirisampada/SSCC-BookingService/internal/api/handlers/create_prescription"
	getAppointmentsHandler "github.com/sirisampada/SSCC-BookingService/internal/api/handlers/get_appointments"
	getAvailableSlotsHandler "github.com/sirisampada/SSCC-BookingService/internal/api/handlers/get_available_slots"
	getClinicInfoHandler "github.com/sirisampada/SSCC-BookingService/internal/api/handlers/get_clinic_info"
	getTodayPatientsHandler "github.com/sirisampada/SSCC-BookingService/internal/api/handlers/get_today_patients"
	unlockPrescriptionsHandler "github.com/sirisampada/SSCC-BookingService/internal/api/handlers/unlock_prescriptions"
	"github.com/sirisampada/SSCC-BookingService/internal/api/middleware"
	"github.com/sirisampada/SSCC-BookingService/internal/auth"
	"github.com/sirisampada/SSCC-BookingService/internal/config"
	appointmentRepo "github.com/sirisampada/SSCC-BookingService/internal/infra/storage/appointment"
	prescriptionRepo "github.com/sirisampada/SSCC-BookingService/internal/infra/storage/prescription"
	appointmentsService "github.com/sirisampada/SSCC-BookingService/internal/service/appointments"
	clinicInfoService "github.com/sirisampada/SSCC-BookingService/internal/service/clinicinfo"
	createBookingUC "github.com/sirisampada/SSCC-BookingService/internal/usecase/create_booking"
	createPrescriptionUC "github.com/sirisampada/SSCC-BookingService/internal/usecase/create_prescription"
	getAvailableSlotsUC "github.com/sirisampada/SSCC-BookingService/internal/usecase/get_available_slots"
	getTodayPatientsUC "github.com/sirisampada/SSCC-BookingService/internal/usecase/get_today_patients"
	"github.com/sirisampada/SSCC-BookingService/pkg/dbmetrics"
	"github.com/sirisampada/SSCC-BookingService/pkg/logger"
	"github.com/sirisampada/SSCC-BookingService/pkg/metrics"
	"github.com/sirisampada/SSCC-BookingService/pkg/simpletxmanager"
	"github.com/sirisampada/SSCC-BookingService/pkg/txmanager"
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

	log.Info("Starting SSCC-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Интерфейсы хранилища и транзакций, реализация зависит от драйвера
	var (
		appointmentRepository  createBookingUC.AppointmentRepository
		prescriptionRepository createPrescriptionUC.PrescriptionRepository
		txMgr                  createBookingUC.TransactionManager
	)

	switch cfg.Database.Driver {
	case config.DriverMongo:
		connectCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.Database.Mongo.Timeout)*time.Second,
		)
		client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Database.Mongo.URI))
		if err != nil {
			cancel()
			log.Fatal("Failed to connect to MongoDB: %v", err)
		}
		if err := client.Ping(connectCtx, nil); err != nil {
			cancel()
			log.Fatal("Failed to ping MongoDB: %v", err)
		}
		cancel()
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()
		log.Info("Successfully connected to MongoDB (db=%s)", cfg.Database.Mongo.Database)

		appointmentRepository = appointmentRepo.NewMongoRepository(client, cfg.Database.Mongo.Database)
		prescriptionRepository = prescriptionRepo.NewMongoRepository(client, cfg.Database.Mongo.Database)
		// Атомарность резервирования обеспечивает само хранилище,
		// транзакционная обёртка не нужна
		txMgr = txmanager.NewNoop()

	case config.DriverPostgres:
		db, err := sql.Open("postgres", cfg.Database.Postgres.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.Postgres.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Postgres.Host, cfg.Database.Postgres.Port, cfg.Database.Postgres.DBName)

		if cfg.Metrics.Enabled {
			wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
			log.Info("Database metrics collection started")

			appointmentRepository = appointmentRepo.NewPostgresRepository(wrappedDB)
			prescriptionRepository = prescriptionRepo.NewPostgresRepository(wrappedDB)
			txMgr = txmanager.NewTransactionManager(wrappedDB)
		} else {
			appointmentRepository = appointmentRepo.NewPostgresRepository(db)
			prescriptionRepository = prescriptionRepo.NewPostgresRepository(db)
			txMgr = simpletxmanager.NewTransactionManager(db)
		}

	default:
		log.Fatal("Unknown database driver: %s", cfg.Database.Driver)
	}

	// Инициализируем аутентификацию
	passwordVerifier := auth.NewBcryptVerifier(cfg.Auth.PasswordHash)
	tokenTTL := time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute
	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, tokenTTL)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	clinicInfoSvc := clinicInfoService.NewService()

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		cfg.Booking.CapacityPerSlot,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		appointmentRepository,
		txMgr,
		cfg.Booking.CapacityPerSlot,
		log,
	)
	getTodayPatientsUseCase := getTodayPatientsUC.NewUseCase(appointmentRepository, log)
	createPrescriptionUseCase := createPrescriptionUC.NewUseCase(
		prescriptionRepository,
		appointmentRepository,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getTodayPatients := getTodayPatientsHandler.NewHandler(getTodayPatientsUseCase, log)
	createPrescription := createPrescriptionHandler.NewHandler(createPrescriptionUseCase, log)
	unlockPrescriptions := unlockPrescriptionsHandler.NewHandler(passwordVerifier, tokenManager, tokenTTL, log)
	getClinicInfo := getClinicInfoHandler.NewHandler(clinicInfoSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты на дату
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи на приём
	api.HandleFunc("/appointments", createBooking.Handle).Methods(http.MethodPost)

	// Информация о клинике
	api.HandleFunc("/clinic", getClinicInfo.Handle).Methods(http.MethodGet)

	// Получение токена доступа к медицинским маршрутам
	api.HandleFunc("/auth/unlock", unlockPrescriptions.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenManager, log))

	// Журнал записей на дату
	protected.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)

	// Список пациентов на сегодня
	protected.HandleFunc("/patients/today", getTodayPatients.Handle).Methods(http.MethodGet)

	// Сохранение назначения
	protected.HandleFunc("/prescriptions", createPrescription.Handle).Methods(http.MethodPost)

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
