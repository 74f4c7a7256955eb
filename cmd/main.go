package main

import (
	"net/http"
	"os"
	"time"

	"imobia/api/handler"
	apiMiddleware "imobia/api/middleware"
	"imobia/api/routes"
	"imobia/config"
	"imobia/internal/repository"
	"imobia/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	db := config.ConnectionDb(cfg.DatabaseURL)
	validate := validator.New()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	realEstateRepo := repository.NewRealEstateRepository(db)
	settingsRepo := repository.NewCompanySettingsRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	passwordHasher := service.BcryptPasswordHasher{}

	authService := service.NewAuthService(
		userRepo,
		sessionRepo,
		accountRepo,
		auditRepo,
		passwordHasher,
		service.RealClock{},
		service.AuthConfig{SessionTTL: cfg.SessionTTL},
	)
	userService := service.NewUserService(userRepo, accountRepo, auditRepo, authService, passwordHasher)
	customerService := service.NewCustomerService(customerRepo)
	realEstateService := service.NewRealEstateService(realEstateRepo)
	settingsService := service.NewCompanySettingsService(settingsRepo)
	contactSender := service.NewResendContactSender(cfg.ResendAPIKey, cfg.ContactFromEmail)
	contactService := service.NewContactService(settingsRepo, realEstateRepo, contactSender, logger)

	authHandler := handler.NewAuthHandler(authService, validate, cfg.SessionTTL)
	authHandler.CookieDomain = cfg.CookieDomain
	authHandler.SecureCookies = cfg.SecureCookies

	app := echo.New()
	app.HideBanner = true
	app.HidePort = true
	app.Use(echoMiddleware.Recover())
	app.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
	}))
	app.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogMethod:   true,
		LogURI:      true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			entry := logger.WithFields(logrus.Fields{
				"status": v.Status,
				"method": v.Method,
				"uri":    v.URI,
				"ip":     v.RemoteIP,
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))

	authMiddleware := apiMiddleware.AuthMiddleware{Auth: authService}
	router := routes.NewRouter(
		app,
		authHandler,
		handler.NewUserHandler(userService, validate),
		handler.NewCustomerHandler(customerService, validate),
		handler.NewRealEstateHandler(realEstateService, validate),
		handler.NewCompanySettingsHandler(settingsService, validate),
		handler.NewContactHandler(contactService, validate),
		authMiddleware,
	)
	router.RegisterRoutes()

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.WithField("addr", cfg.HTTPAddr).Info("server started")
	if err := app.StartServer(server); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}
