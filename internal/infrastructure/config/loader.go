package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment variable read by the loader
const EnvPrefix = "BANK"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// envOverride binds an environment variable to a config key
type envOverride struct {
	env     string
	key     string
	numeric bool
}

// envOverrides are applied after the config file is read, so they win over it
var envOverrides = []envOverride{
	{env: "BANK_DB_HOST", key: "database.host"},
	{env: "BANK_DB_PORT", key: "database.port"},
	{env: "BANK_DB_USERNAME", key: "database.username"},
	{env: "BANK_DB_PASSWORD", key: "database.password"},
	{env: "BANK_DB_NAME", key: "database.database"},
	{env: "BANK_DB_SSL_MODE", key: "database.sslMode"},
	{env: "BANK_DB_MAX_OPEN_CONNS", key: "database.maxOpenConns", numeric: true},
	{env: "BANK_DB_MAX_IDLE_CONNS", key: "database.maxIdleConns", numeric: true},
	{env: "BANK_DB_QUERY_TIMEOUT_SECONDS", key: "database.queryTimeout", numeric: true},
	{env: "BANK_SERVER_HOST", key: "server.host"},
	{env: "BANK_SERVER_PORT", key: "server.port", numeric: true},
	{env: "BANK_LOGGER_LEVEL", key: "logger.level"},
	{env: "BANK_TRANSACTION_BALANCE_CHECK_MODE", key: "transaction.balanceCheckMode"},
	{env: "BANK_AUTH_JWT_SECRET", key: "auth.jwtSecret"},
	{env: "BANK_AUTH_PASSWORD_HASHING", key: "auth.passwordHashing"},
	{env: "BANK_AUTH_ADMIN_USERNAME", key: "auth.adminUsername"},
	{env: "BANK_AUTH_ADMIN_PASSWORD", key: "auth.adminPassword"},
	{env: "BANK_REDIS_ADDR", key: "redis.addr"},
	{env: "BANK_REDIS_PASSWORD", key: "redis.password"},
}

// LoadConfig loads configuration for the environment named by BANK_ENV
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	return LoadConfigFromPaths(getEnvironment(), ConfigPaths)
}

// LoadConfigFromPaths reads <env>.yaml from the first path containing it,
// applies defaults and environment overrides and converts durations
func LoadConfigFromPaths(env string, paths []string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets values for everything that is not a secret
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.autoMigrate", true)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("transaction.balanceCheckMode", "atomic")
	v.SetDefault("transaction.isolationLevel", "read committed")
	v.SetDefault("transaction.maxRetries", 5)
	v.SetDefault("transaction.retryIntervalMs", 100)
	v.SetDefault("transaction.maxRetryMs", 2000)

	v.SetDefault("auth.issuer", "bank-api")
	v.SetDefault("auth.tokenTTL", 60) // minutes
	v.SetDefault("auth.passwordHashing", "bcrypt")
	v.SetDefault("auth.bcryptCost", 10)
	v.SetDefault("auth.adminUsername", "admin")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.keyPrefix", "bank:revoked:")

	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.requestsPerSecond", 5)
	v.SetDefault("rateLimit.burst", 10)
}

// getEnvironment reads BANK_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides copies set environment variables over file values.
// Numeric variables that do not parse are ignored.
func processEnvOverrides(v *viper.Viper) {
	for _, override := range envOverrides {
		value, ok := os.LookupEnv(override.env)
		if !ok || value == "" {
			continue
		}

		if override.numeric {
			n, err := strconv.Atoi(value)
			if err != nil {
				continue
			}
			v.Set(override.key, n)
			continue
		}
		v.Set(override.key, value)
	}
}

// processDurations converts the raw numbers read from the file into durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTL) * time.Minute
}
