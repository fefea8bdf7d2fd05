package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addToWishlistHandler "github.com/m04kA/SMC-RealEstateService/internal/api/handlers/add_to_wishlist"
	createBookingHandler "github.com/m04kA/SMC-RealEstateService/internal/api/handlers/create_booking"
	createPropertyHandler "github.com/m04kA/SMC-RealEstateService/internal/api/handlers/create_property"
	deletePropertyHandler "github.com/m04kA/SMC-RealEstateService/internal/api/handlers/delete_property"
	getAllBookingsHandler "github.com/m04kA/SMC-RealEstateService/internal/api/handlers/get_all_bookings"
	getBookingHandler "github.com/m04kA/SMC-RealEstateService/internal/api/handlers/get_booking"
	getBookingReceiptHandler "github.com/m04kA/SMC-RealEstateService/internal/api/handlers/get_booking_receipt"
	getBookingTotalHandler "github.com/m04kA/SMC-RealEstateService/internal/api/handlers/get_booking_total"
	getDashboardHandler "github.com/m04kA/SMC-RealEstateService/internal/api/handlers/get_dashboard"
	getMeHandler "github.com/m04kA/SMC-RealEstateService/internal/api/handlers/get_me"
	getPropertyHandler "github.com/m04kA/SMC-RealEstateService/internal/api/handlers/get_property"
	getUserBookingsHandler "github.com/m04kA/SMC-RealEstateService/internal/api/handlers/get_user_bookings"
	getUsersHandler "github.com/m04kA/SMC-RealEstateService/internal/api/handlers/get_users"
	getWishlistHandler "github.com/m04kA/SMC-RealEstateService/internal/api/handlers/get_wishlist"
	initializePaymentHandler "github.com/m04kA/SMC-RealEstateService/internal/api/handlers/initialize_payment"
	listPropertiesHandler "github.com/m04kA/SMC-RealEstateService/internal/api/handlers/list_properties"
	loginHandler "github.com/m04kA/SMC-RealEstateService/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-RealEstateService/internal/api/handlers/logout"
	registerHandler "github.com/m04kA/SMC-RealEstateService/internal/api/handlers/register"
	removeFromWishlistHandler "github.com/m04kA/SMC-RealEstateService/internal/api/handlers/remove_from_wishlist"
	updateBookingStatusHandler "github.com/m04kA/SMC-RealEstateService/internal/api/handlers/update_booking_status"
	updatePropertyHandler "github.com/m04kA/SMC-RealEstateService/internal/api/handlers/update_property"
	verifyPaymentHandler "github.com/m04kA/SMC-RealEstateService/internal/api/handlers/verify_payment"
	"github.com/m04kA/SMC-RealEstateService/internal/api/middleware"
	"github.com/m04kA/SMC-RealEstateService/internal/auth"
	"github.com/m04kA/SMC-RealEstateService/internal/config"
	propertyCache "github.com/m04kA/SMC-RealEstateService/internal/infra/cache/property"
	"github.com/m04kA/SMC-RealEstateService/internal/infra/cache/tokens"
	"github.com/m04kA/SMC-RealEstateService/internal/infra/events"
	"github.com/m04kA/SMC-RealEstateService/internal/infra/receipt"
	bookingRepo "github.com/m04kA/SMC-RealEstateService/internal/infra/storage/booking"
	propertyRepo "github.com/m04kA/SMC-RealEstateService/internal/infra/storage/property"
	userRepo "github.com/m04kA/SMC-RealEstateService/internal/infra/storage/user"
	wishlistRepo "github.com/m04kA/SMC-RealEstateService/internal/infra/storage/wishlist"
	"github.com/m04kA/SMC-RealEstateService/internal/integrations/paystack"
	bookingsService "github.com/m04kA/SMC-RealEstateService/internal/service/bookings"
	dashboardService "github.com/m04kA/SMC-RealEstateService/internal/service/dashboard"
	paymentsService "github.com/m04kA/SMC-RealEstateService/internal/service/payments"
	propertiesService "github.com/m04kA/SMC-RealEstateService/internal/service/properties"
	receiptsService "github.com/m04kA/SMC-RealEstateService/internal/service/receipts"
	usersService "github.com/m04kA/SMC-RealEstateService/internal/service/users"
	userModels "github.com/m04kA/SMC-RealEstateService/internal/service/users/models"
	wishlistService "github.com/m04kA/SMC-RealEstateService/internal/service/wishlist"
	createBookingUC "github.com/m04kA/SMC-RealEstateService/internal/usecase/create_booking"
	quoteBookingUC "github.com/m04kA/SMC-RealEstateService/internal/usecase/quote_booking"
	"github.com/m04kA/SMC-RealEstateService/migrations"
	"github.com/m04kA/SMC-RealEstateService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RealEstateService/pkg/logger"
	"github.com/m04kA/SMC-RealEstateService/pkg/metrics"
	"github.com/m04kA/SMC-RealEstateService/pkg/txmanager"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-RealEstateService...")
	log.Info("Configuration loaded from %s", *configPath)

	// Метрики nil-safe: при выключенных метриках коллектор просто nil
	var metricsCollector *metrics.Metrics
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

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	if cfg.Database.AutoMigrate {
		migrateCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := migrations.Apply(migrateCtx, wrappedDB)
		cancel()
		if err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	// Репозитории
	propertyRepository := propertyRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	wishlistRepository := wishlistRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Кэш объектов и список отозванных токенов
	var properties interface {
		propertiesService.PropertyCache
		Close()
	} = propertyCache.NopCache{}
	if cfg.Cache.Enabled {
		properties = propertyCache.New(
			cfg.Cache.MaxSize,
			time.Duration(cfg.Cache.PropertyTTL)*time.Second,
			cfg.Cache.MemcacheServers,
			log,
		)
		log.Info("Property cache enabled (max_size=%d, ttl=%ds, memcache_servers=%v)",
			cfg.Cache.MaxSize, cfg.Cache.PropertyTTL, cfg.Cache.MemcacheServers)
	}
	defer properties.Close()

	revocations := tokens.NewRevocationList(cfg.Cache.MaxSize)
	defer revocations.Close()

	// Публикация событий каталога
	var publisher interface {
		propertiesService.EventPublisher
		Close() error
	} = events.NopPublisher{}
	if cfg.Events.Enabled {
		p, err := events.NewPublisher(cfg.Events.RabbitMQURL, cfg.Events.Queue, log)
		if err != nil {
			log.Fatal("Failed to connect to RabbitMQ: %v", err)
		}
		publisher = p
		log.Info("Property events are published to queue %s", cfg.Events.Queue)
	}
	defer publisher.Close()

	// Интеграции
	paymentClient := paystack.NewClient(
		cfg.Payment.BaseURL,
		cfg.Payment.SecretKey,
		time.Duration(cfg.Payment.Timeout)*time.Second,
		log,
	)
	log.Info("Payment client initialized (base_url=%s, timeout=%ds)", cfg.Payment.BaseURL, cfg.Payment.Timeout)

	tokenManager := auth.NewTokenManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTL)*time.Minute,
		cfg.Auth.Issuer,
	)

	// Инициализируем сервисы
	userSvc := usersService.NewService(userRepository, tokenManager, revocations, log)
	propertySvc := propertiesService.NewService(propertyRepository, properties, publisher, txMgr, log)
	wishlistSvc := wishlistService.NewService(wishlistRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, log)
	receiptSvc := receiptsService.NewService(bookingRepository, receipt.NewRenderer(cfg.Auth.Issuer), log)
	paymentSvc := paymentsService.NewService(paymentClient, metricsCollector, log)
	dashboardSvc := dashboardService.NewService(
		propertyRepository,
		userRepository,
		bookingRepository,
		wishlistRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		propertyRepository,
		userRepository,
		txMgr,
		metricsCollector,
		log,
		cfg.Booking.PreventOverlap,
	)
	quoteBookingUseCase := quoteBookingUC.NewUseCase(propertyRepository, log)

	// Учетная запись администратора из конфигурации
	adminCtx, cancelAdmin := context.WithTimeout(context.Background(), 10*time.Second)
	err = userSvc.EnsureAdmin(adminCtx, userModels.AdminAccount{
		Email:     cfg.Admin.Email,
		Password:  cfg.Admin.Password,
		FirstName: cfg.Admin.FirstName,
		LastName:  cfg.Admin.LastName,
	})
	cancelAdmin()
	if err != nil {
		log.Fatal("Failed to ensure admin account: %v", err)
	}

	// Инициализируем handlers
	register := registerHandler.NewHandler(userSvc, log)
	login := loginHandler.NewHandler(userSvc, log)
	logout := logoutHandler.NewHandler(userSvc, log)
	getMe := getMeHandler.NewHandler(userSvc, log)
	getUsers := getUsersHandler.NewHandler(userSvc, log)

	listProperties := listPropertiesHandler.NewHandler(propertySvc, log)
	getProperty := getPropertyHandler.NewHandler(propertySvc, log)
	createProperty := createPropertyHandler.NewHandler(propertySvc, log)
	updateProperty := updatePropertyHandler.NewHandler(propertySvc, log)
	deleteProperty := deletePropertyHandler.NewHandler(propertySvc, log)

	getWishlist := getWishlistHandler.NewHandler(wishlistSvc, log)
	addToWishlist := addToWishlistHandler.NewHandler(wishlistSvc, log)
	removeFromWishlist := removeFromWishlistHandler.NewHandler(wishlistSvc, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBookingTotal := getBookingTotalHandler.NewHandler(quoteBookingUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookingReceipt := getBookingReceiptHandler.NewHandler(receiptSvc, log)
	getAllBookings := getAllBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)

	initializePayment := initializePaymentHandler.NewHandler(paymentSvc, log)
	verifyPayment := verifyPaymentHandler.NewHandler(paymentSvc, log)

	getDashboard := getDashboardHandler.NewHandler(dashboardSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Logging(log))

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

	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/properties", listProperties.Handle).Methods(http.MethodGet)

	// Регистрируется раньше /bookings/{bookingId}, иначе "total" попадет в ID
	api.HandleFunc("/bookings/total", getBookingTotal.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(tokenManager, revocations))

	// --- Аккаунт ---
	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me", getMe.Handle).Methods(http.MethodGet)

	// --- Каталог ---
	protected.HandleFunc("/properties/{propertyId}", getProperty.Handle).Methods(http.MethodGet)

	// --- Избранное ---
	protected.HandleFunc("/wishlist", getWishlist.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/wishlist", addToWishlist.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/wishlist/{propertyId}", removeFromWishlist.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/receipt", getBookingReceipt.Handle).Methods(http.MethodGet)

	// --- Платежи ---
	protected.HandleFunc("/payments/initialize", initializePayment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/payments/verify/{reference}", verifyPayment.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES
	// ============================================================

	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/properties", listProperties.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/properties", createProperty.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/properties/{propertyId}", updateProperty.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/properties/{propertyId}", deleteProperty.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/users", getUsers.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings", getAllBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	var handler http.Handler = r
	if len(cfg.CORS.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.CORS.AllowedOrigins, cfg.CORS.AllowCredentials)(r)
		log.Info("CORS enabled for origins %v", cfg.CORS.AllowedOrigins)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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
