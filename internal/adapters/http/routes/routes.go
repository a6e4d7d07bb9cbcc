package routes

import (
	"time"

	"frontdesk/internal/adapters/http/handlers"
	"frontdesk/internal/adapters/http/middleware"
	"frontdesk/internal/adapters/persistence/repositories"
	"frontdesk/internal/config"
	"frontdesk/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	apiTokenRepo := repositories.NewApiTokenRepository(db)
	enquiryRepo := repositories.NewEnquiryRepository(db)
	noticeRepo := repositories.NewNoticeRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	tokenService := services.NewTokenService(apiTokenRepo, services.NewTokenCache())
	beds24Service := services.NewBeds24Service(tokenService, services.Beds24Config{
		BaseURL: cfg.Beds24.BaseURL,
		Timeout: cfg.Beds24.Timeout,
	})
	reportService := services.NewReportService(beds24Service)
	enquiryService := services.NewEnquiryService(enquiryRepo, beds24Service)
	noticeService := services.NewNoticeService(noticeRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	settingsHandler := handlers.NewSettingsHandler(tokenService)
	propertyHandler := handlers.NewPropertyHandler(beds24Service)
	bookingHandler := handlers.NewBookingHandler(beds24Service)
	calendarHandler := handlers.NewCalendarHandler(beds24Service)
	reportHandler := handlers.NewReportHandler(reportService)
	channelUserHandler := handlers.NewChannelUserHandler(beds24Service)
	enquiryHandler := handlers.NewEnquiryHandler(enquiryService)
	noticeHandler := handlers.NewNoticeHandler(noticeService)
	publicHandler := handlers.NewPublicHandler(beds24Service, enquiryService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	setupAPIV1Routes(apiV1, healthHandler, authHandler, settingsHandler,
		propertyHandler, bookingHandler, calendarHandler, reportHandler,
		channelUserHandler, enquiryHandler, noticeHandler, publicHandler, cfg)
}

// setupAPIV1Routes configures API v1 routes
func setupAPIV1Routes(
	router fiber.Router,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	settingsHandler *handlers.SettingsHandler,
	propertyHandler *handlers.PropertyHandler,
	bookingHandler *handlers.BookingHandler,
	calendarHandler *handlers.CalendarHandler,
	reportHandler *handlers.ReportHandler,
	channelUserHandler *handlers.ChannelUserHandler,
	enquiryHandler *handlers.EnquiryHandler,
	noticeHandler *handlers.NoticeHandler,
	publicHandler *handlers.PublicHandler,
	cfg *config.Config,
) {
	// API Info
	router.Get("/", healthHandler.APIInfo)

	// Auth routes (public)
	authRoutes := router.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Public landing page routes (no auth, cacheable property reads)
	publicRoutes := router.Group("/public")
	setupPublicRoutes(publicRoutes, publicHandler)

	// Settings routes (Authenticated)
	settingsRoutes := router.Group("/settings")
	settingsRoutes.Use(middleware.AuthMiddleware(cfg))
	settingsRoutes.Use(middleware.NoCacheHeaders())
	settingsRoutes.Get("/token", settingsHandler.TokenStatus)
	settingsRoutes.Put("/token", settingsHandler.SaveToken)
	settingsRoutes.Delete("/token", settingsHandler.DeleteToken)

	// Property routes (Authenticated)
	propertyRoutes := router.Group("/properties")
	propertyRoutes.Use(middleware.AuthMiddleware(cfg))
	propertyRoutes.Use(middleware.PrivateCacheHeaders(5 * time.Minute))
	propertyRoutes.Get("/", propertyHandler.List)
	propertyRoutes.Get("/:id", propertyHandler.Get)

	// Booking routes (Authenticated)
	bookingRoutes := router.Group("/bookings")
	bookingRoutes.Use(middleware.AuthMiddleware(cfg))
	bookingRoutes.Get("/", bookingHandler.List)
	bookingRoutes.Put("/:id/status", bookingHandler.ChangeStatus)

	// Calendar routes (Authenticated)
	calendarRoutes := router.Group("/calendar")
	calendarRoutes.Use(middleware.AuthMiddleware(cfg))
	calendarRoutes.Get("/availabilities", calendarHandler.Availabilities)

	// Report routes (Authenticated)
	reportRoutes := router.Group("/reports")
	reportRoutes.Use(middleware.AuthMiddleware(cfg))
	reportRoutes.Get("/revenue", reportHandler.Revenue)
	reportRoutes.Get("/occupancy", reportHandler.Occupancy)
	reportRoutes.Get("/channels", reportHandler.Channels)

	// Channel user routes (Admin only)
	channelRoutes := router.Group("/channel/users")
	channelRoutes.Use(middleware.AuthMiddleware(cfg))
	channelRoutes.Use(middleware.AdminOnly())
	channelRoutes.Get("/", channelUserHandler.List)
	channelRoutes.Put("/:id", channelUserHandler.Update)
	channelRoutes.Delete("/:id", channelUserHandler.Delete)

	// Enquiry routes (Authenticated)
	enquiryRoutes := router.Group("/enquiries")
	enquiryRoutes.Use(middleware.AuthMiddleware(cfg))
	enquiryRoutes.Get("/", enquiryHandler.List)
	enquiryRoutes.Put("/:id/read", enquiryHandler.MarkRead)

	// Notice routes (Authenticated)
	noticeRoutes := router.Group("/notices")
	noticeRoutes.Use(middleware.AuthMiddleware(cfg))
	noticeRoutes.Get("/", noticeHandler.List)
	noticeRoutes.Put("/:id/dismiss", noticeHandler.Dismiss)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes, rate limited against brute force
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupPublicRoutes configures the unauthenticated landing page routes
func setupPublicRoutes(router fiber.Router, handler *handlers.PublicHandler) {
	// Landing page reads, cacheable by CDNs
	router.Get("/operators/:id/properties", middleware.CacheControl(10*time.Minute), handler.Properties)
	router.Get("/operators/:id/properties/:propertyId", middleware.CacheControl(10*time.Minute), handler.Property)

	// Booking enquiry form, strictly rate limited against spam
	router.Post("/operators/:id/enquiries", middleware.StrictRateLimiter(), handler.CreateEnquiry)
}
