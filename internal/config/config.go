package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
}

// Configuration keys. Each one is read from the environment variable of the
// same name in upper case, or from the same key in the optional config file.
const (
	KeyHost               = "app_host"
	KeyPort               = "app_port"
	KeyEnvironment        = "app_env"
	KeyLogLevel           = "log_level"
	KeyDatabaseURI        = "db_uri"
	KeyDBMaxRetries       = "db_max_retries"
	KeyCORSAllowedOrigins = "cors_allowed_origins"
	KeyShutdownTimeout    = "shutdown_timeout"
)

// DefaultDatabaseURI keeps data in app.db next to the working directory
const DefaultDatabaseURI = "sqlite:///app.db"

// Config used for the application configuration
type Config struct {
	// Server Configuration
	Port            int           `json:"port"`
	Host            string        `json:"host"`
	Environment     string        `json:"environment"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`

	// Database configuration
	DatabaseURI  string `json:"database_uri"`
	DBMaxRetries int    `json:"db_max_retries"`

	// Logging configuration. Empty means derived from Environment.
	LogLevel string `json:"log_level"`

	// CORS configuration
	CORSAllowedOrigins []string `json:"cors_allowed_origins"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Port: %d, Host: %s, Environment: %s, DatabaseURI: %s, DBMaxRetries: %d, LogLevel: %s, CORSAllowedOrigins: %v, ShutdownTimeout: %s}",
		c.Port, c.Host, c.Environment, maskDatabaseURL(c.DatabaseURI), c.DBMaxRetries, c.LogLevel, c.CORSAllowedOrigins, c.ShutdownTimeout)
}

// Address returns the host:port the HTTP server listens on
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// maskDatabaseURL masks password in database URL
func maskDatabaseURL(dbURL string) string {
	if dbURL == "" {
		return ""
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if _, hasPassword := parsed.User.Password(); hasPassword {
		parsed.User = url.UserPassword(parsed.User.Username(), "REDACTED")
	}

	return parsed.String()
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyHost, "localhost")
	v.SetDefault(KeyPort, "5555")
	v.SetDefault(KeyEnvironment, "development")
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyDatabaseURI, DefaultDatabaseURI)
	v.SetDefault(KeyDBMaxRetries, "5")
	v.SetDefault(KeyCORSAllowedOrigins, "*")
	v.SetDefault(KeyShutdownTimeout, "10s")
	v.AutomaticEnv()
	return v
}

// LoadConfig reads the configuration from defaults, the optional YAML file
// at configFile and the environment, later sources winning.
// Returns an error if a value has an invalid format.
func LoadConfig(configFile string) (*Config, error) {
	log.Info("Loading configuration")
	v := newViper()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		log.Infof("Using config file %s", v.ConfigFileUsed())
	}

	port, err := strconv.Atoi(v.GetString(KeyPort))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", strings.ToUpper(KeyPort), err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid %s: %d is out of range", strings.ToUpper(KeyPort), port)
	}

	retries, err := strconv.Atoi(v.GetString(KeyDBMaxRetries))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", strings.ToUpper(KeyDBMaxRetries), err)
	}

	shutdownTimeout, err := time.ParseDuration(v.GetString(KeyShutdownTimeout))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", strings.ToUpper(KeyShutdownTimeout), err)
	}

	dbURI := strings.TrimSpace(v.GetString(KeyDatabaseURI))
	if dbURI == "" {
		return nil, fmt.Errorf("%s must not be empty", strings.ToUpper(KeyDatabaseURI))
	}

	config := &Config{
		Port:               port,
		Host:               v.GetString(KeyHost),
		Environment:        v.GetString(KeyEnvironment),
		ShutdownTimeout:    shutdownTimeout,
		DatabaseURI:        dbURI,
		DBMaxRetries:       retries,
		LogLevel:           v.GetString(KeyLogLevel),
		CORSAllowedOrigins: originList(v.Get(KeyCORSAllowedOrigins)),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// originList accepts either a comma separated string (environment) or a list (config file)
func originList(raw interface{}) []string {
	var items []string
	switch value := raw.(type) {
	case string:
		items = strings.Split(value, ",")
	case []interface{}:
		for _, item := range value {
			items = append(items, fmt.Sprint(item))
		}
	case []string:
		items = value
	}

	origins := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			origins = append(origins, item)
		}
	}
	return origins
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}
