package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"frontdesk/internal/adapters/http/middleware"
	"frontdesk/internal/adapters/persistence/models"
	"frontdesk/internal/adapters/persistence/repositories"
	"frontdesk/internal/config"
	"frontdesk/internal/core/services"
	"frontdesk/internal/pkg/jwt"
	"frontdesk/internal/pkg/password"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

type testEnv struct {
	app *fiber.App
	db  *gorm.DB
	cfg *config.Config
}

// setupTestEnv builds the handler stack against an in-memory database and
// the given channel manager upstream (usually an httptest server)
func setupTestEnv(t *testing.T, upstreamURL string) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed opening in-memory sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed getting sql.DB from gorm: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("failed migrating schema: %v", err)
	}

	cfg := &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
		Cookie: config.CookieConfig{SameSite: "lax"},
		Beds24: config.Beds24Config{BaseURL: upstreamURL, Timeout: 5 * time.Second},
	}

	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	apiTokenRepo := repositories.NewApiTokenRepository(db)
	enquiryRepo := repositories.NewEnquiryRepository(db)
	noticeRepo := repositories.NewNoticeRepository(db)

	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	tokenService := services.NewTokenService(apiTokenRepo, services.NewTokenCache())
	beds24Service := services.NewBeds24Service(tokenService, services.Beds24Config{
		BaseURL: cfg.Beds24.BaseURL,
		Timeout: cfg.Beds24.Timeout,
	})
	reportService := services.NewReportService(beds24Service)
	enquiryService := services.NewEnquiryService(enquiryRepo, beds24Service)
	noticeService := services.NewNoticeService(noticeRepo)

	authHandler := NewAuthHandler(authService, cfg)
	settingsHandler := NewSettingsHandler(tokenService)
	propertyHandler := NewPropertyHandler(beds24Service)
	bookingHandler := NewBookingHandler(beds24Service)
	reportHandler := NewReportHandler(reportService)
	enquiryHandler := NewEnquiryHandler(enquiryService)
	noticeHandler := NewNoticeHandler(noticeService)
	publicHandler := NewPublicHandler(beds24Service, enquiryService)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.CustomErrorHandler})
	app.Use(recover.New())

	api := app.Group("/api/v1")

	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/refresh", authHandler.RefreshToken)
	authRoutes.Post("/logout", authHandler.Logout)
	authRoutes.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	settingsRoutes := api.Group("/settings", middleware.AuthMiddleware(cfg))
	settingsRoutes.Get("/token", settingsHandler.TokenStatus)
	settingsRoutes.Put("/token", settingsHandler.SaveToken)
	settingsRoutes.Delete("/token", settingsHandler.DeleteToken)

	propertyRoutes := api.Group("/properties", middleware.AuthMiddleware(cfg))
	propertyRoutes.Get("/", propertyHandler.List)
	propertyRoutes.Get("/:id", propertyHandler.Get)

	bookingRoutes := api.Group("/bookings", middleware.AuthMiddleware(cfg))
	bookingRoutes.Get("/", bookingHandler.List)
	bookingRoutes.Put("/:id/status", bookingHandler.ChangeStatus)

	reportRoutes := api.Group("/reports", middleware.AuthMiddleware(cfg))
	reportRoutes.Get("/revenue", reportHandler.Revenue)
	reportRoutes.Get("/occupancy", reportHandler.Occupancy)
	reportRoutes.Get("/channels", reportHandler.Channels)

	enquiryRoutes := api.Group("/enquiries", middleware.AuthMiddleware(cfg))
	enquiryRoutes.Get("/", enquiryHandler.List)
	enquiryRoutes.Put("/:id/read", enquiryHandler.MarkRead)

	noticeRoutes := api.Group("/notices", middleware.AuthMiddleware(cfg))
	noticeRoutes.Get("/", noticeHandler.List)
	noticeRoutes.Put("/:id/dismiss", noticeHandler.Dismiss)

	publicRoutes := api.Group("/public")
	publicRoutes.Get("/operators/:id/properties", publicHandler.Properties)
	publicRoutes.Get("/operators/:id/properties/:propertyId", publicHandler.Property)
	publicRoutes.Post("/operators/:id/enquiries", publicHandler.CreateEnquiry)

	return &testEnv{app: app, db: db, cfg: cfg}
}

// createTestUser inserts a user and returns it with a valid access token
func createTestUser(t *testing.T, env *testEnv, email, role string) (*models.User, string) {
	t.Helper()

	hash, err := password.Hash("secret-password")
	if err != nil {
		t.Fatalf("failed hashing password: %v", err)
	}

	user := &models.User{
		Name:     "Test User",
		Email:    email,
		Password: hash,
		Role:     role,
		IsActive: true,
	}
	if err := env.db.Create(user).Error; err != nil {
		t.Fatalf("failed creating test user: %v", err)
	}

	token, err := jwt.GenerateAccessToken(user.ID, user.Email, user.Name, user.Role,
		env.cfg.JWT.Secret, env.cfg.JWT.AccessTokenMins)
	if err != nil {
		t.Fatalf("failed generating access token: %v", err)
	}

	return user, token
}

// saveChannelToken stores a channel manager token for the user
func saveChannelToken(t *testing.T, env *testEnv, userID uint, token string, expiresAt time.Time) {
	t.Helper()

	record := &models.ApiToken{UserID: userID, Token: token, ExpiresAt: expiresAt}
	if err := env.db.Create(record).Error; err != nil {
		t.Fatalf("failed saving channel token: %v", err)
	}
}

func authHeaders(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func performJSONRequest(t *testing.T, app *fiber.App, method, path string, payload any, headers map[string]string) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("failed to marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := app.Test(req, int((10 * time.Second).Milliseconds()))
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	return resp
}

func decodeJSONMap(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed reading response body: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("failed decoding JSON response: %v body=%q", err, string(raw))
	}
	return payload
}

func assertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Fatalf("expected status %d, got %d", expected, resp.StatusCode)
	}
}

// newChannelStub starts a fake channel manager upstream
func newChannelStub(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}
