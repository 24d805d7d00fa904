package config

import (
	"errors"
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

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "FT"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
	"../../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration for the environment named by FT_ENV.
// A missing configs/<env>.yaml leaves the defaults in place.
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		fmt.Printf("Warning: no %s.yaml found in %v, using defaults\n", env, ConfigPaths)
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

// loadDotEnvFile loads the first readable .env file in DotEnvPaths
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

	return errors.New("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "data/transactions.db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 10)    // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1)       // seconds
	v.SetDefault("database.monitorInterval", 30) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("transaction.defaultLimit", 100)
	v.SetDefault("transaction.strictTypes", false)

	v.SetDefault("events.enabled", false)
	v.SetDefault("events.exchange", "finance.events")
	v.SetDefault("events.routingKeyPrefix", "finance.")
	v.SetDefault("events.publishTimeout", 5) // seconds

	v.SetDefault("cors.allowOrigins", []string{})
	v.SetDefault("cors.allowHeaders", []string{}) // empty echoes preflight request headers
	v.SetDefault("cors.maxAge", 43200) // seconds
}

// getEnvironment determines the environment from FT_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides maps the short FT_ variable names onto config keys
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"FT_DB_DRIVER":             "database.driver",
		"FT_DB_PATH":               "database.path",
		"FT_DB_HOST":               "database.host",
		"FT_DB_PORT":               "database.port",
		"FT_DB_USERNAME":           "database.username",
		"FT_DB_PASSWORD":           "database.password",
		"FT_DB_NAME":               "database.database",
		"FT_DB_SSL_MODE":           "database.sslMode",
		"FT_SERVER_HOST":           "server.host",
		"FT_SERVER_PORT":           "server.port",
		"FT_LOGGER_LEVEL":          "logger.level",
		"FT_LOGGER_FORMAT":         "logger.format",
		"FT_EVENTS_URL":            "events.url",
		"FT_EVENTS_EXCHANGE":       "events.exchange",
		"FT_EVENTS_ROUTING_PREFIX": "events.routingKeyPrefix",
	}
	for envKey, configKey := range stringOverrides {
		if value := os.Getenv(envKey); value != "" {
			v.Set(configKey, value)
		}
	}

	positiveIntOverrides := map[string]string{
		"FT_DB_MAX_OPEN_CONNS":             "database.maxOpenConns",
		"FT_DB_MAX_IDLE_CONNS":             "database.maxIdleConns",
		"FT_DB_CONN_MAX_LIFETIME_MINUTES":  "database.connMaxLifetime",
		"FT_DB_CONN_MAX_IDLE_TIME_MINUTES": "database.connMaxIdleTime",
		"FT_DB_QUERY_TIMEOUT_SECONDS":      "database.queryTimeout",
		"FT_DB_RETRY_ATTEMPTS":             "database.retryAttempts",
		"FT_TRANSACTION_DEFAULT_LIMIT":     "transaction.defaultLimit",
	}
	for envKey, configKey := range positiveIntOverrides {
		if value := getEnvInt(envKey, 0); value > 0 {
			v.Set(configKey, value)
		}
	}

	if retryDelay := getEnvInt("FT_DB_RETRY_DELAY_SECONDS", -1); retryDelay >= 0 {
		v.Set("database.retryDelay", retryDelay)
	}

	if strict, ok := getEnvBool("FT_TRANSACTION_STRICT_TYPES"); ok {
		v.Set("transaction.strictTypes", strict)
	}
	if enabled, ok := getEnvBool("FT_EVENTS_ENABLED"); ok {
		v.Set("events.enabled", enabled)
	}

	if origins := os.Getenv("FT_CORS_ALLOW_ORIGINS"); origins != "" {
		v.Set("cors.allowOrigins", splitList(origins))
	}
}

func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

func getEnvBool(name string) (bool, bool) {
	valStr := os.Getenv(name)
	if valStr == "" {
		return false, false
	}

	val, err := strconv.ParseBool(valStr)
	if err != nil {
		return false, false
	}
	return val, true
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// processDurations converts the raw integer settings into durations
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
	config.Database.MonitorInterval = time.Duration(config.Database.MonitorInterval) * time.Second

	config.Events.PublishTimeout = time.Duration(config.Events.PublishTimeout) * time.Second
	config.CORS.MaxAge = time.Duration(config.CORS.MaxAge) * time.Second
}
