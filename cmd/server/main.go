package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eyesonplants/internal/config"
	"eyesonplants/internal/database"
	"eyesonplants/internal/handlers"
	appmiddleware "eyesonplants/internal/middleware"
	"eyesonplants/internal/repositories"
	"eyesonplants/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.IsDevelopment() {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	db, err := database.New(&cfg.Database)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	sqlDB, err := db.DB.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrationsIfEnabled(sqlDB); err != nil {
		logger.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	if cfg.IsDevelopment() {
		if err := db.AutoMigrate(); err != nil {
			logger.Error("auto-migration failed", "error", err)
			os.Exit(1)
		}
		if err := db.CreateIndexes(); err != nil {
			logger.Warn("index creation failed", "error", err)
		}
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db.DB)
	auditRepo := repositories.NewAuditLogRepository(db.DB)
	plantRepo := repositories.NewPlantRepository(db.DB)
	productRepo := repositories.NewProductRepository(db.DB)
	careGuideRepo := repositories.NewCareGuideRepository(db.DB)
	cartRepo := repositories.NewCartRepository(db.DB)
	orderRepo := repositories.NewOrderRepository(db.DB)
	diseaseRepo := repositories.NewDiseaseRepository(db.DB)
	reminderRepo := repositories.NewReminderRepository(db.DB)
	deviceRepo := repositories.NewDeviceTokenRepository(db.DB)

	// Services
	metrics := services.NewPrometheusMetrics()

	passwordService := services.NewPasswordService(userRepo)
	tokenService := services.NewTokenService(&cfg.JWT)
	authService := services.NewAuthService(userRepo, auditRepo, passwordService, tokenService, metrics, logger)
	userService := services.NewUserService(userRepo, auditRepo, metrics, logger)
	plantService := services.NewPlantService(plantRepo, logger)
	productService := services.NewProductService(productRepo, logger)
	careGuideService := services.NewCareGuideService(careGuideRepo, logger)
	cartService := services.NewCartService(cartRepo, productRepo, logger)
	pushSender := services.NewFCMPushSender(&cfg.Push, metrics, logger)
	notificationService := services.NewNotificationService(deviceRepo, pushSender, logger)
	orderService := services.NewOrderService(orderRepo, cartRepo, productRepo, auditRepo, notificationService, metrics, logger)
	diseaseService := services.NewDiseaseService(diseaseRepo, logger)
	reminderService := services.NewReminderService(reminderRepo, plantRepo, notificationService, metrics, logger)
	scanBreaker := services.NewCircuitBreaker(services.DefaultCircuitBreakerConfig())
	scanService := services.NewAIScanService(&cfg.AI, scanBreaker, metrics, logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService, passwordService)
	plantHandler := handlers.NewPlantHandler(plantService)
	productHandler := handlers.NewProductHandler(productService)
	careGuideHandler := handlers.NewCareGuideHandler(careGuideService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	diseaseHandler := handlers.NewDiseaseHandler(diseaseService)
	reminderHandler := handlers.NewReminderHandler(reminderService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	aiHandler := handlers.NewAIHandler(scanService)
	healthHandler := handlers.NewHealthCheckHandler(db.DB)
	docsHandler := handlers.NewDocsHandler()

	gate := appmiddleware.NewTokenGate(tokenService, userRepo, &cfg.JWT, metrics, logger)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = appmiddleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(appmiddleware.RequestID())
	e.Use(appmiddleware.PanicRecovery())
	e.Use(appmiddleware.SecurityHeaders())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(appmiddleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))
	e.Use(gate.Middleware())

	registerRoutes(e, cfg, routeHandlers{
		auth:         authHandler,
		user:         userHandler,
		plant:        plantHandler,
		product:      productHandler,
		careGuide:    careGuideHandler,
		cart:         cartHandler,
		order:        orderHandler,
		disease:      diseaseHandler,
		reminder:     reminderHandler,
		notification: notificationHandler,
		ai:           aiHandler,
		health:       healthHandler,
		docs:         docsHandler,
		dev:          handlers.NewDevHandler(productRepo, careGuideRepo, diseaseRepo),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := services.NewReminderScheduler(reminderService, time.Minute, logger)
	go scheduler.Start(ctx)

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("server starting", "addr", addr, "env", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

type routeHandlers struct {
	auth         *handlers.AuthHandler
	user         *handlers.UserHandler
	plant        *handlers.PlantHandler
	product      *handlers.ProductHandler
	careGuide    *handlers.CareGuideHandler
	cart         *handlers.CartHandler
	order        *handlers.OrderHandler
	disease      *handlers.DiseaseHandler
	reminder     *handlers.ReminderHandler
	notification *handlers.NotificationHandler
	ai           *handlers.AIHandler
	health       *handlers.HealthCheckHandler
	docs         *handlers.DocsHandler
	dev          *handlers.DevHandler
}

func registerRoutes(e *echo.Echo, cfg *config.Config, h routeHandlers) {
	e.GET("/health", h.health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/docs", h.docs.ServeDocsUI)
	e.GET("/openapi.json", h.docs.ServeOpenAPISpec)

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", h.auth.Register)
	auth.POST("/login", h.auth.Login)
	auth.POST("/refresh", h.auth.RefreshToken)

	authed := appmiddleware.RequireAuthenticated()
	admin := appmiddleware.RequireAdmin()
	farmer := appmiddleware.RequireFarmer()

	users := api.Group("/users")
	users.GET("/me", h.user.GetProfile, authed)
	users.PUT("/me", h.user.UpdateProfile, authed)
	users.DELETE("/me", h.user.DeleteAccount, authed)
	users.PUT("/me/password", h.user.ChangePassword, authed)
	users.GET("", h.user.ListUsers, admin)
	users.PUT("/:id/role", h.user.UpdateUserRole, admin)

	plants := api.Group("/plants", authed)
	plants.POST("", h.plant.CreatePlant)
	plants.GET("", h.plant.ListPlants)
	plants.GET("/:id", h.plant.GetPlant)
	plants.PUT("/:id", h.plant.UpdatePlant)
	plants.DELETE("/:id", h.plant.DeletePlant)

	products := api.Group("/products")
	products.GET("/search", h.product.SearchProducts)
	products.GET("/mine", h.product.ListMyProducts, farmer)
	products.GET("/:id", h.product.GetProduct)
	products.POST("", h.product.CreateProduct, farmer)
	products.PUT("/:id", h.product.UpdateProduct, farmer)
	products.DELETE("/:id", h.product.DeleteProduct, farmer)

	guides := api.Group("/care-guides")
	guides.GET("", h.careGuide.ListCareGuides)
	guides.GET("/:id", h.careGuide.GetCareGuide)
	guides.POST("", h.careGuide.CreateCareGuide, admin)
	guides.PUT("/:id", h.careGuide.UpdateCareGuide, admin)
	guides.DELETE("/:id", h.careGuide.DeleteCareGuide, admin)

	cart := api.Group("/cart", authed)
	cart.GET("", h.cart.GetCart)
	cart.DELETE("", h.cart.ClearCart)
	cart.POST("/items", h.cart.AddItem)
	cart.PUT("/items/:itemId", h.cart.UpdateItem)
	cart.DELETE("/items/:itemId", h.cart.RemoveItem)

	orders := api.Group("/orders", authed)
	orders.POST("", h.order.PlaceOrder)
	orders.GET("", h.order.ListOrders)
	orders.GET("/:id", h.order.GetOrder)
	orders.POST("/:id/cancel", h.order.CancelOrder)

	adminOrders := api.Group("/admin/orders", admin)
	adminOrders.GET("", h.order.ListAllOrders)
	adminOrders.PUT("/:id/status", h.order.UpdateOrderStatus)

	diseases := api.Group("/diseases", authed)
	diseases.POST("", h.disease.CreateDisease)
	diseases.GET("", h.disease.ListDiseases)
	diseases.GET("/:id", h.disease.GetDisease)
	diseases.PUT("/:id", h.disease.UpdateDisease)
	diseases.DELETE("/:id", h.disease.DeleteDisease)

	reminders := api.Group("/reminders", authed)
	reminders.POST("", h.reminder.CreateReminder)
	reminders.GET("", h.reminder.ListReminders)
	reminders.PUT("/:id", h.reminder.UpdateReminder)
	reminders.DELETE("/:id", h.reminder.DeleteReminder)

	notifications := api.Group("/notifications", authed)
	notifications.POST("/devices", h.notification.RegisterDevice)
	notifications.GET("/devices", h.notification.ListDevices)
	notifications.DELETE("/devices/:token", h.notification.UnregisterDevice)
	notifications.POST("/topics/subscribe", h.notification.SubscribeToTopic)
	notifications.POST("/topics/unsubscribe", h.notification.UnsubscribeFromTopic)

	adminNotifications := api.Group("/admin/notifications", admin)
	adminNotifications.POST("/send", h.notification.SendToUser)
	adminNotifications.POST("/topic", h.notification.SendToTopic)

	api.POST("/ai/scan", h.ai.ScanImage, authed)

	if cfg.IsDevelopment() {
		dev := api.Group("/dev/seed", admin)
		dev.POST("/products", h.dev.SeedProducts)
		dev.POST("/care-guides", h.dev.SeedCareGuides)
		dev.POST("/diseases", h.dev.SeedDiseases)
	}
}
