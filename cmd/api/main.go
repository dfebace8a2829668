package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	coreport "github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/security"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/usecase"
	accountUseCase "github.com/amirhossein-jamali/bank-api/internal/domain/usecase/account"
	transactionUseCase "github.com/amirhossein-jamali/bank-api/internal/domain/usecase/transaction"
	userUseCase "github.com/amirhossein-jamali/bank-api/internal/domain/usecase/user"

	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/repository"
	securityadapter "github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/security"
	timeProvider "github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	logLevel, err := logger.ParseLogLevel(cfg.Logger.Level)
	if err != nil {
		log.Fatalf("Invalid logger configuration: %v", err)
	}
	appLogger, err := logger.NewZapLogger(cfg.Environment == config.Production, logLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Application stopped with error", map[string]any{
			"error": err.Error(),
		})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

// run wires the application and serves until SIGINT or SIGTERM
func run(cfg *config.Config, appLogger coreport.Logger) error {
	tp := timeProvider.NewRealTimeProvider()
	ctx := context.Background()

	// Password hashing
	hasher, err := securityadapter.NewPasswordHasher(cfg.Auth.PasswordHashing, cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}
	if cfg.Auth.PasswordHashing == securityadapter.HashingPlaintext {
		appLogger.Warn("Passwords are stored and compared in plaintext", map[string]any{
			"setting": "auth.passwordHashing",
		})
	}

	// Connect to the database and migrate
	dbManager := database.NewManager(database.NewConfigFromAppConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() { _ = dbManager.Close() }()

	if err := dbManager.Migrate(ctx, hasher, migration.AdminAccount{
		Username:  cfg.Auth.AdminUsername,
		Password:  cfg.Auth.AdminPassword,
		FirstName: "System",
		LastName:  "Administrator",
	}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Unit of work
	isolation, err := database.ParseIsolationLevel(cfg.Transaction.IsolationLevel)
	if err != nil {
		return err
	}
	retry := database.DefaultRetryConfig()
	if cfg.Transaction.MaxRetries > 0 {
		retry.MaxRetries = cfg.Transaction.MaxRetries
	}
	if cfg.Transaction.RetryIntervalMs > 0 {
		retry.RetryInterval = time.Duration(cfg.Transaction.RetryIntervalMs) * time.Millisecond
	}
	if cfg.Transaction.MaxRetryMs > 0 {
		retry.MaxInterval = time.Duration(cfg.Transaction.MaxRetryMs) * time.Millisecond
	}
	uow := dbManager.CreateUnitOfWork(database.UnitOfWorkConfig{Isolation: isolation, Retry: retry})

	// Initialize repositories
	db := dbManager.DB()
	userRepo := repository.NewUserRepository(db, appLogger)
	accountRepo := repository.NewAccountRepository(db, appLogger)
	transactionRepo := repository.NewTransactionRepository(db, appLogger)

	// Initialize use cases
	mode, err := usecase.ParseBalanceCheckMode(cfg.Transaction.BalanceCheckMode)
	if err != nil {
		return err
	}
	if mode == usecase.BalanceCheckReadThenWrite {
		appLogger.Warn("Balance checks are not atomic; concurrent debits can overdraw accounts", map[string]any{
			"setting": "transaction.balanceCheckMode",
		})
	}

	userUseCaseImpl := userUseCase.NewUserUseCase(userRepo, hasher, appLogger)
	accountUseCaseImpl := accountUseCase.NewAccountUseCase(accountRepo, appLogger)
	transactionUseCaseImpl := transactionUseCase.NewTransactionUseCase(transactionRepo, accountRepo, uow, mode, appLogger)

	// Tokens
	issuer, err := securityadapter.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL, tp)
	if err != nil {
		return err
	}
	revocations, closeRevocations, err := newRevocationStore(ctx, cfg.Redis, appLogger, tp)
	if err != nil {
		return err
	}
	defer closeRevocations()

	var loginLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		loginLimiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, appLogger, tp)
	}

	// Initialize router
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, routes.Handlers{
		User:        handler.NewUserHandler(userUseCaseImpl, appLogger, tp),
		Account:     handler.NewAccountHandler(accountUseCaseImpl, appLogger, tp),
		Transaction: handler.NewTransactionHandler(transactionUseCaseImpl, mode, appLogger, tp),
		Auth:        handler.NewAuthHandler(userUseCaseImpl, issuer, revocations, appLogger, tp),
		Health:      handler.NewHealthHandler(dbManager),
	}, routes.Security{
		Issuer:       issuer,
		Revocations:  revocations,
		LoginLimiter: loginLimiter,
	}, appLogger, tp)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":             server.Addr,
			"env":              cfg.Environment,
			"balanceCheckMode": string(mode),
			"isolationLevel":   string(isolation),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		appLogger.Info("Shutting down server...", map[string]any{
			"signal": sig.String(),
		})
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

// newRevocationStore returns the redis store when enabled, else the in-memory one
func newRevocationStore(
	ctx context.Context,
	cfg config.RedisConfig,
	appLogger coreport.Logger,
	tp coreport.TimeProvider,
) (security.RevocationStore, func(), error) {
	if !cfg.Enabled {
		appLogger.Info("Using in-memory token revocation store", nil)
		return securityadapter.NewMemoryRevocationStore(tp), func() {}, nil
	}

	client, err := securityadapter.NewRedisClient(ctx, cfg.Addr, cfg.Password, cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	appLogger.Info("Using redis token revocation store", map[string]any{
		"addr": cfg.Addr,
		"db":   cfg.DB,
	})

	closeClient := func() { _ = client.Close() }
	return securityadapter.NewRedisRevocationStore(client, cfg.KeyPrefix, tp), closeClient, nil
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	required := []struct {
		value string
		key   string
		env   string
	}{
		{cfg.Database.Host, "database.host", "BANK_DB_HOST"},
		{cfg.Database.Port, "database.port", "BANK_DB_PORT"},
		{cfg.Database.Username, "database.username", "BANK_DB_USERNAME"},
		{cfg.Database.Password, "database.password", "BANK_DB_PASSWORD"},
		{cfg.Database.Database, "database.database", "BANK_DB_NAME"},
		{cfg.Auth.JWTSecret, "auth.jwtSecret", "BANK_AUTH_JWT_SECRET"},
	}
	for _, r := range required {
		if r.value == "" {
			missingConfigs = append(missingConfigs, fmt.Sprintf("%s (or %s environment variable)", r.key, r.env))
		}
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}
	if cfg.Auth.TokenTTL == 0 {
		missingConfigs = append(missingConfigs, "auth.tokenTTL")
	}
	if cfg.Redis.Enabled && cfg.Redis.Addr == "" {
		missingConfigs = append(missingConfigs, "redis.addr (or BANK_REDIS_ADDR environment variable)")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Auth.PasswordHashing == securityadapter.HashingPlaintext {
			warnings = append(warnings, "auth.passwordHashing is plaintext")
		}
		if len(cfg.Auth.JWTSecret) < 32 {
			warnings = append(warnings, "auth.jwtSecret should be at least 32 bytes")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
