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

	adminFieldsHandler "github.com/m04kA/SMC-FieldBooking/internal/api/handlers/admin_fields"
	blockHandler "github.com/m04kA/SMC-FieldBooking/internal/api/handlers/block"
	cancelBookingHandler "github.com/m04kA/SMC-FieldBooking/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/m04kA/SMC-FieldBooking/internal/api/handlers/complete_booking"
	createBookingHandler "github.com/m04kA/SMC-FieldBooking/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-FieldBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-FieldBooking/internal/api/handlers/get_booking"
	getDayScheduleHandler "github.com/m04kA/SMC-FieldBooking/internal/api/handlers/get_day_schedule"
	getFieldHandler "github.com/m04kA/SMC-FieldBooking/internal/api/handlers/get_field"
	getFieldBookingsHandler "github.com/m04kA/SMC-FieldBooking/internal/api/handlers/get_field_bookings"
	getRulesHandler "github.com/m04kA/SMC-FieldBooking/internal/api/handlers/get_rules"
	getUserBookingsHandler "github.com/m04kA/SMC-FieldBooking/internal/api/handlers/get_user_bookings"
	healthHandler "github.com/m04kA/SMC-FieldBooking/internal/api/handlers/health"
	lessonsHandler "github.com/m04kA/SMC-FieldBooking/internal/api/handlers/lessons"
	membershipsHandler "github.com/m04kA/SMC-FieldBooking/internal/api/handlers/memberships"
	profileHandler "github.com/m04kA/SMC-FieldBooking/internal/api/handlers/profile"
	revenueHandler "github.com/m04kA/SMC-FieldBooking/internal/api/handlers/revenue"
	reviewsHandler "github.com/m04kA/SMC-FieldBooking/internal/api/handlers/reviews"
	searchFieldsHandler "github.com/m04kA/SMC-FieldBooking/internal/api/handlers/search_fields"
	trainersHandler "github.com/m04kA/SMC-FieldBooking/internal/api/handlers/trainers"
	updatePaymentHandler "github.com/m04kA/SMC-FieldBooking/internal/api/handlers/update_payment"
	updateRulesHandler "github.com/m04kA/SMC-FieldBooking/internal/api/handlers/update_rules"
	"github.com/m04kA/SMC-FieldBooking/internal/api/middleware"
	"github.com/m04kA/SMC-FieldBooking/internal/config"
	"github.com/m04kA/SMC-FieldBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/booking"
	fieldRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/field"
	lessonRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/lesson"
	membershipRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/membership"
	profileRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/profile"
	reviewRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/review"
	rulesRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/rules"
	trainerRepo "github.com/m04kA/SMC-FieldBooking/internal/infra/storage/trainer"
	accessService "github.com/m04kA/SMC-FieldBooking/internal/service/access"
	bookingsService "github.com/m04kA/SMC-FieldBooking/internal/service/bookings"
	fieldsService "github.com/m04kA/SMC-FieldBooking/internal/service/fields"
	lessonsService "github.com/m04kA/SMC-FieldBooking/internal/service/lessons"
	membershipsService "github.com/m04kA/SMC-FieldBooking/internal/service/memberships"
	profilesService "github.com/m04kA/SMC-FieldBooking/internal/service/profiles"
	revenueService "github.com/m04kA/SMC-FieldBooking/internal/service/revenue"
	reviewsService "github.com/m04kA/SMC-FieldBooking/internal/service/reviews"
	rulesService "github.com/m04kA/SMC-FieldBooking/internal/service/rules"
	"github.com/m04kA/SMC-FieldBooking/internal/service/schedule"
	trainersService "github.com/m04kA/SMC-FieldBooking/internal/service/trainers"
	createBookingUC "github.com/m04kA/SMC-FieldBooking/internal/usecase/create_booking"
	createLessonUC "github.com/m04kA/SMC-FieldBooking/internal/usecase/create_lesson"
	getAvailableSlotsUC "github.com/m04kA/SMC-FieldBooking/internal/usecase/get_available_slots"
	getDayScheduleUC "github.com/m04kA/SMC-FieldBooking/internal/usecase/get_day_schedule"
	"github.com/m04kA/SMC-FieldBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-FieldBooking/pkg/logger"
	"github.com/m04kA/SMC-FieldBooking/pkg/metrics"
	"github.com/m04kA/SMC-FieldBooking/pkg/txmanager"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-FieldBooking...")
	log.Info("Configuration loaded from %s", configPath)

	// Даты и время бронирований трактуются в часовом поясе полей
	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Invalid booking timezone: %v", err)
	}
	time.Local = location

	lateDiscountFrom, err := cfg.Booking.LateDiscountStart()
	if err != nil {
		log.Fatal("Invalid late discount start: %v", err)
	}
	defaultRules := domain.BookingRules{
		SlotStepMinutes:         cfg.Booking.SlotStepMinutes,
		DefaultDurationMinutes:  cfg.Booking.DefaultDurationMinutes,
		AdvanceBookingDays:      cfg.Booking.AdvanceBookingDays,
		MinBookingNoticeMinutes: cfg.Booking.MinBookingNoticeMinutes,
		LateDiscountFrom:        lateDiscountFrom,
		LateDiscountPercent:     cfg.Booking.LateDiscountPercent,
		IsDefault:               true,
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	sqlDB, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}

	// Настраиваем connection pool
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := sqlDB.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обёртка работает как обычный *sql.DB
	db := dbmetrics.WrapWithDefault(sqlDB, metricsCollector, cfg.Database.DBName, stopMetricsCh)
	defer db.Close()

	txMgr := txmanager.NewTransactionManager(db,
		txmanager.WithMaxRetries(cfg.Booking.MaxTxRetries),
		txmanager.WithRetryObserver(metricsCollector),
	)

	// Инициализируем репозитории
	fieldRepository := fieldRepo.NewRepository(db)
	bookingRepository := bookingRepo.NewRepository(db)
	lessonRepository := lessonRepo.NewRepository(db)
	membershipRepository := membershipRepo.NewRepository(db)
	trainerRepository := trainerRepo.NewRepository(db)
	profileRepository := profileRepo.NewRepository(db)
	rulesRepository := rulesRepo.NewRepository(db)
	reviewRepository := reviewRepo.NewRepository(db)

	// Инициализируем сервисы
	accessSvc := accessService.NewService(profileRepository, log)
	fieldSvc := fieldsService.NewService(fieldRepository, accessSvc, log)
	bookingSvc := bookingsService.NewService(bookingRepository, accessSvc, txMgr, log)
	rulesSvc := rulesService.NewService(rulesRepository, fieldRepository, accessSvc, defaultRules, log)
	trainerSvc := trainersService.NewService(trainerRepository, accessSvc, log)
	membershipSvc := membershipsService.NewService(membershipRepository, fieldRepository, accessSvc, log)
	lessonSvc := lessonsService.NewService(lessonRepository, accessSvc, log)
	revenueSvc := revenueService.NewService(bookingRepository, fieldRepository, accessSvc, log)
	profileSvc := profilesService.NewService(profileRepository, log)
	reviewSvc := reviewsService.NewService(reviewRepository, bookingRepository, fieldRepository, txMgr, log)
	scheduleLoader := schedule.NewLoader(fieldRepository, bookingRepository, lessonRepository, membershipRepository)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleLoader,
		rulesSvc,
		accessSvc,
		txMgr,
		metricsCollector,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(scheduleLoader, rulesSvc, log)
	createLessonUseCase := createLessonUC.NewUseCase(
		lessonRepository,
		trainerRepository,
		scheduleLoader,
		accessSvc,
		txMgr,
		log,
	)
	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(scheduleLoader, rulesSvc, accessSvc, log)

	// Инициализируем handlers
	health := healthHandler.NewHandler(db, log)
	searchFields := searchFieldsHandler.NewHandler(fieldSvc, log)
	getField := getFieldHandler.NewHandler(fieldSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getRules := getRulesHandler.NewHandler(rulesSvc, log)
	reviews := reviewsHandler.NewHandler(reviewSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	profile := profileHandler.NewHandler(profileSvc, log)
	adminFields := adminFieldsHandler.NewHandler(fieldSvc, log)
	getFieldBookings := getFieldBookingsHandler.NewHandler(bookingSvc, log)
	updatePayment := updatePaymentHandler.NewHandler(bookingSvc, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	lessons := lessonsHandler.NewHandler(createLessonUseCase, lessonSvc, log)
	trainers := trainersHandler.NewHandler(trainerSvc, log)
	memberships := membershipsHandler.NewHandler(membershipSvc, log)
	block := blockHandler.NewHandler(fieldSvc, log)
	updateRules := updateRulesHandler.NewHandler(rulesSvc, log)
	revenue := revenueHandler.NewHandler(revenueSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID, middleware.Logging(log))

	// Metrics middleware и endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.Path))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Поиск полей по городу
	api.HandleFunc("/fields", searchFields.Handle).Methods(http.MethodGet)

	// Поле с кортами и удобствами
	api.HandleFunc("/fields/{fieldId}", getField.Handle).Methods(http.MethodGet)

	// Сетка свободных слотов на дату
	api.HandleFunc("/fields/{fieldId}/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Правила бронирования поля
	api.HandleFunc("/fields/{fieldId}/rules", getRules.Handle).Methods(http.MethodGet)

	// Отзывы о поле
	api.HandleFunc("/fields/{fieldId}/reviews", reviews.List).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer JWT)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(middleware.AuthConfig{
		Secret:   cfg.Auth.JWTSecret,
		Issuer:   cfg.Auth.Issuer,
		Audience: cfg.Auth.Audience,
	}, log))

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)

	// Отзыв по завершенному бронированию
	protected.HandleFunc("/fields/{fieldId}/reviews", reviews.Create).Methods(http.MethodPost)

	// --- Текущий пользователь ---
	protected.HandleFunc("/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/me/profile", profile.Get).Methods(http.MethodGet)
	protected.HandleFunc("/me/profile", profile.Update).Methods(http.MethodPut)

	// --- Управление полями (для администраторов) ---
	admin := protected.PathPrefix("/admin").Subrouter()

	admin.HandleFunc("/fields", adminFields.List).Methods(http.MethodGet)
	admin.HandleFunc("/fields/{fieldId}/courts", adminFields.Courts).Methods(http.MethodGet)
	admin.HandleFunc("/fields/{fieldId}/block", block.Field).Methods(http.MethodPut)
	admin.HandleFunc("/courts/{courtId}/block", block.Court).Methods(http.MethodPut)
	admin.HandleFunc("/fields/{fieldId}/rules", updateRules.Handle).Methods(http.MethodPut)

	// Бронирования поля и бронирования по телефону
	admin.HandleFunc("/fields/{fieldId}/bookings", getFieldBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/fields/{fieldId}/bookings", createBooking.HandlePhone).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{bookingId}/payment", updatePayment.Handle).Methods(http.MethodPatch)

	// Расписание дня
	admin.HandleFunc("/fields/{fieldId}/schedule", getDaySchedule.Handle).Methods(http.MethodGet)

	// Уроки
	admin.HandleFunc("/fields/{fieldId}/lessons", lessons.Create).Methods(http.MethodPost)
	admin.HandleFunc("/lessons/{lessonId}", lessons.Delete).Methods(http.MethodDelete)

	// Тренеры
	admin.HandleFunc("/fields/{fieldId}/trainers", trainers.List).Methods(http.MethodGet)
	admin.HandleFunc("/fields/{fieldId}/trainers", trainers.Create).Methods(http.MethodPost)
	admin.HandleFunc("/trainers/{trainerId}", trainers.Deactivate).Methods(http.MethodDelete)

	// Абонементы
	admin.HandleFunc("/fields/{fieldId}/memberships", memberships.List).Methods(http.MethodGet)
	admin.HandleFunc("/fields/{fieldId}/memberships", memberships.Create).Methods(http.MethodPost)
	admin.HandleFunc("/memberships/{membershipId}", memberships.Delete).Methods(http.MethodDelete)

	// Выручка
	admin.HandleFunc("/fields/{fieldId}/revenue", revenue.Report).Methods(http.MethodGet)
	admin.HandleFunc("/fields/{fieldId}/revenue/export", revenue.Export).Methods(http.MethodGet)

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
}
