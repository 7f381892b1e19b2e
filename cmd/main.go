package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	createReservationHandler "github.com/avelinemakeup/AM-BookingService/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/avelinemakeup/AM-BookingService/internal/api/handlers/delete_reservation"
	getAvailabilityHandler "github.com/avelinemakeup/AM-BookingService/internal/api/handlers/get_availability"
	getDayScheduleHandler "github.com/avelinemakeup/AM-BookingService/internal/api/handlers/get_day_schedule"
	getReservationsHandler "github.com/avelinemakeup/AM-BookingService/internal/api/handlers/get_reservations"
	lockDayHandler "github.com/avelinemakeup/AM-BookingService/internal/api/handlers/lock_day"
	lockSlotHandler "github.com/avelinemakeup/AM-BookingService/internal/api/handlers/lock_slot"
	unlockDayHandler "github.com/avelinemakeup/AM-BookingService/internal/api/handlers/unlock_day"
	unlockSlotHandler "github.com/avelinemakeup/AM-BookingService/internal/api/handlers/unlock_slot"
	updateStatusHandler "github.com/avelinemakeup/AM-BookingService/internal/api/handlers/update_reservation_status"
	"github.com/avelinemakeup/AM-BookingService/internal/api/middleware"
	"github.com/avelinemakeup/AM-BookingService/internal/config"
	"github.com/avelinemakeup/AM-BookingService/internal/events"
	locksRepo "github.com/avelinemakeup/AM-BookingService/internal/infra/storage/locks"
	reservationRepo "github.com/avelinemakeup/AM-BookingService/internal/infra/storage/reservation"
	locksService "github.com/avelinemakeup/AM-BookingService/internal/service/locks"
	reservationsService "github.com/avelinemakeup/AM-BookingService/internal/service/reservations"
	createReservationUC "github.com/avelinemakeup/AM-BookingService/internal/usecase/create_reservation"
	getDayScheduleUC "github.com/avelinemakeup/AM-BookingService/internal/usecase/get_day_schedule"
	"github.com/avelinemakeup/AM-BookingService/pkg/logger"
	"github.com/avelinemakeup/AM-BookingService/pkg/metrics"
	"github.com/avelinemakeup/AM-BookingService/pkg/txmanager"
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

	log.Info("Starting AM-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Подключаемся к Redis (хранилище блокировок календаря)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		log.Fatal("Failed to ping redis: %v", err)
	}
	pingCancel()
	log.Info("Successfully connected to redis (addr=%s)", cfg.Redis.Addr)

	// Шина событий: мутации календаря и броней публикуют события,
	// подписчики (метрики) реагируют синхронно
	bus := events.NewBus()
	if cfg.Metrics.Enabled {
		subscribeMetrics(bus, metricsCollector)
		log.Info("Domain metrics subscribed to event bus")
	}

	// Рабочие часы из конфигурации, непрописанные дни открыты
	hours := cfg.Hours.WeekSchedule()

	// Инициализируем репозитории
	reservationRepository := reservationRepo.NewRepository(db)
	lockRepository := locksRepo.NewRepository(redisClient)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	lockSvc := locksService.NewService(lockRepository, bus, log)
	reservationSvc := reservationsService.NewService(reservationRepository, txMgr, bus, log)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		lockSvc,
		hours,
		txMgr,
		bus,
		log,
	)
	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(
		reservationRepository,
		lockSvc,
		hours,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservations := getReservationsHandler.NewHandler(reservationSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(reservationSvc, log)
	updateStatus := updateStatusHandler.NewHandler(reservationSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	lockSlot := lockSlotHandler.NewHandler(lockSvc, log)
	unlockSlot := unlockSlotHandler.NewHandler(lockSvc, log)
	lockDay := lockDayHandler.NewHandler(lockSvc, log)
	unlockDay := unlockDayHandler.NewHandler(lockSvc, log)

	auth := middleware.NewAuth(cfg.Auth.AdminToken)

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
	// PUBLIC ROUTES (админский токен расширяет поведение)
	// ============================================================

	// Создание заявки; с админским токеном бронь подтверждается сразу
	api.HandleFunc("/reservations", auth.Annotate(createReservation.Handle)).Methods(http.MethodPost)

	// Занятые слоты за период для клиентского календаря
	api.HandleFunc("/reservations/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Расписание дня: статус загруженности и состояние слотов
	api.HandleFunc("/calendar/days/{date}", auth.Annotate(getDaySchedule.Handle)).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	// --- Брони ---
	api.HandleFunc("/reservations", auth.RequireAdmin(getReservations.Handle)).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}/status", auth.RequireAdmin(updateStatus.Handle)).Methods(http.MethodPut)
	api.HandleFunc("/reservations/{reservationId}", auth.RequireAdmin(deleteReservation.Handle)).Methods(http.MethodDelete)

	// --- Блокировки календаря ---
	api.HandleFunc("/calendar/days/{date}/locks/{slotId}", auth.RequireAdmin(lockSlot.Handle)).Methods(http.MethodPut)
	api.HandleFunc("/calendar/days/{date}/locks/{slotId}", auth.RequireAdmin(unlockSlot.Handle)).Methods(http.MethodDelete)
	api.HandleFunc("/calendar/days/{date}/locks", auth.RequireAdmin(lockDay.Handle)).Methods(http.MethodPut)
	api.HandleFunc("/calendar/days/{date}/locks", auth.RequireAdmin(unlockDay.Handle)).Methods(http.MethodDelete)

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

// subscribeMetrics связывает доменные события со счетчиками prometheus
func subscribeMetrics(bus *events.Bus, m *metrics.Metrics) {
	bus.Subscribe(events.TypeReservationChanged, func(event events.Event) {
		if status, ok := strings.CutPrefix(event.Detail, "created:"); ok {
			m.ReservationsCreated.WithLabelValues(status).Inc()
		}
	})
	bus.Subscribe(events.TypeReservationConflict, func(event events.Event) {
		m.ReservationsRejected.Inc()
	})
	bus.Subscribe(events.TypeLockChanged, func(event events.Event) {
		m.SlotLockChanges.WithLabelValues(event.Detail).Inc()
	})
}
