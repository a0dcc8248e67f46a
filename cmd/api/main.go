package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	_ "github.com/reviewhub/reviewhub-backend/docs"
	httphandlers "github.com/reviewhub/reviewhub-backend/internal/handlers/http"
	"github.com/reviewhub/reviewhub-backend/internal/handlers/middleware"
	"github.com/reviewhub/reviewhub-backend/internal/handlers/validation"
	"github.com/reviewhub/reviewhub-backend/internal/infrastructure/config"
	"github.com/reviewhub/reviewhub-backend/internal/infrastructure/confirmation"
	"github.com/reviewhub/reviewhub-backend/internal/infrastructure/i18n"
	"github.com/reviewhub/reviewhub-backend/internal/infrastructure/logging"
	"github.com/reviewhub/reviewhub-backend/internal/infrastructure/mail"
	"github.com/reviewhub/reviewhub-backend/internal/infrastructure/persistence/postgres"
	"github.com/reviewhub/reviewhub-backend/internal/infrastructure/ratelimit"
	"github.com/reviewhub/reviewhub-backend/internal/infrastructure/token"
	"github.com/reviewhub/reviewhub-backend/internal/services"
)

//	@title			ReviewHub API
//	@version		1.0
//	@description	Content catalog and review API: titles under categories and genres, user reviews and threaded comments.
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting reviewhub backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	// Conectar ao Redis (códigos de confirmação e rate limiting)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Error("failed to connect to redis", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Validações customizadas do binding
	if err := validation.Register(); err != nil {
		logger.Error("failed to register validations", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	genreRepo := postgres.NewGenreRepository(db)
	titleRepo := postgres.NewTitleRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Infraestrutura do fluxo de cadastro
	codeStore := confirmation.NewRedisStore(redisClient, cfg.Signup.CodeTTL, cfg.Signup.MaxCodeAttempts)
	signupLimiter, err := ratelimit.NewFixedWindowLimiter(redisClient, "reviewhub:ratelimit:auth", cfg.Signup.RateLimit, cfg.Signup.RateLimitWindow)
	if err != nil {
		logger.Error("failed to create rate limiter", "error", err)
		log.Fatal(err)
	}
	mailer := mail.NewSMTPMailer(cfg.SMTP, cfg.Signup.FromAddress, logger)
	tokenManager, err := token.NewJWTManager(cfg.JWT.Secret, cfg.JWT.AccessExpiry)
	if err != nil {
		logger.Error("failed to create token manager", "error", err)
		log.Fatal(err)
	}

	// Inicializar services
	authService := services.NewAuthService(userRepo, codeStore, tokenManager, mailer, i18nService, logger, cfg.Signup.CodeTTL.String())
	userService := services.NewUserService(userRepo, logger)
	catalogService := services.NewCatalogService(categoryRepo, genreRepo, titleRepo, uow, logger)
	reviewService := services.NewReviewService(reviewRepo, commentRepo, titleRepo, logger)

	// Inicializar handlers
	handlers := httphandlers.Handlers{
		Auth:     httphandlers.NewAuthHandler(authService),
		User:     httphandlers.NewUserHandler(userService),
		Category: httphandlers.NewCategoryHandler(catalogService),
		Genre:    httphandlers.NewGenreHandler(catalogService),
		Title:    httphandlers.NewTitleHandler(catalogService),
		Review:   httphandlers.NewReviewHandler(reviewService),
		Comment:  httphandlers.NewCommentHandler(reviewService),
	}

	router := httphandlers.NewRouter(
		httphandlers.RouterConfig{
			Env:            cfg.Env,
			BaseURL:        cfg.Server.BaseURL,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		i18nService,
		middleware.NewAuthMiddleware(authService),
		signupLimiter,
		handlers,
	)

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if err := redisClient.Close(); err != nil {
		logger.Error("failed to close redis client", "error", err)
	}

	logger.Info("server exited")
}
