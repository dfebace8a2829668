package routes

import (
	coreport "github.com/amirhossein-jamali/bank-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/bank-api/internal/domain/port/security"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/bank-api/internal/infrastructure/adapter/metrics"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers served by the router
type Handlers struct {
	User        *handler.UserHandler
	Account     *handler.AccountHandler
	Transaction *handler.TransactionHandler
	Auth        *handler.AuthHandler
	Health      *handler.HealthHandler
}

// Security holds what the auth middlewares need
type Security struct {
	Issuer      security.TokenIssuer
	Revocations security.RevocationStore
	// LoginLimiter throttles POST /auth; nil disables throttling
	LoginLimiter *middleware.RateLimiter
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	handlers Handlers,
	sec Security,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
) {
	router.GET("/health", handlers.Health.Health)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	authenticate := middleware.Authenticate(sec.Issuer, sec.Revocations, logger, timeProvider)
	identify := middleware.IdentifyIfValid(sec.Issuer, sec.Revocations, logger, timeProvider)
	adminOnly := middleware.AdminGuard(timeProvider)

	// Login ignores any bearer token; logout treats a stale one as anonymous.
	authRoutes := router.Group("/auth")
	{
		login := []gin.HandlerFunc{handlers.Auth.Login}
		if sec.LoginLimiter != nil {
			login = append([]gin.HandlerFunc{sec.LoginLimiter.Handler()}, login...)
		}
		authRoutes.POST("", login...)
		authRoutes.GET("", identify, handlers.Auth.Logout)
		authRoutes.DELETE("", identify, handlers.Auth.Logout)
	}

	userRoutes := router.Group("/users", authenticate)
	{
		userRoutes.GET("", adminOnly, handlers.User.GetAllUsers)
		userRoutes.GET("/search", adminOnly, handlers.User.SearchUsers)
		userRoutes.GET("/:id", adminOnly, handlers.User.GetUserByID)
		userRoutes.POST("", handlers.User.RegisterUser)
		userRoutes.PUT("/:id", adminOnly, handlers.User.UpdateUser)
		userRoutes.DELETE("/:id", adminOnly, handlers.User.DeleteUser)
	}

	accountRoutes := router.Group("/accounts", authenticate)
	{
		accountRoutes.GET("", handlers.Account.GetAllAccounts)
		accountRoutes.GET("/:id", handlers.Account.GetAccountByID)
		accountRoutes.POST("", handlers.Account.CreateAccount)
		accountRoutes.PUT("/:id", handlers.Account.UpdateAccount)
		accountRoutes.DELETE("/:id", handlers.Account.DeleteAccount)
	}

	transactionRoutes := router.Group("/transactions", authenticate)
	{
		transactionRoutes.GET("", handlers.Transaction.GetAllTransactions)
		transactionRoutes.GET("/:id", handlers.Transaction.GetTransactionByID)
		transactionRoutes.POST("", handlers.Transaction.CreateTransaction)
		transactionRoutes.PUT("/:id", handlers.Transaction.UpdateTransaction)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider, allowedOrigins []string) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger, timeProvider))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(allowedOrigins))
}
