package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"personacast/pkg/validator"
)

const (
	envEnv                   = "APP_ENV"
	envLogLevel              = "LOG_LEVEL"
	envPort                  = "PORT"
	envServerReadTimeout     = "SERVER_READ_TIMEOUT"
	envServerWriteTimeout    = "SERVER_WRITE_TIMEOUT"
	envServerShutdownTimeout = "SERVER_SHUTDOWN_TIMEOUT"
	envDBHost                = "DB_HOST"
	envDBPort                = "DB_PORT"
	envDBName                = "DB_NAME"
	envDBUser                = "DB_USER"
	envDBPassword            = "DB_PASSWORD"
	envDBSSLMode             = "DB_SSL_MODE"
	envDBMaxConns            = "DB_MAX_CONNS"
	envDBMinConns            = "DB_MIN_CONNS"
	envRedisHost             = "REDIS_HOST"
	envRedisPort             = "REDIS_PORT"
	envRedisPassword         = "REDIS_PASSWORD"
	envRedisDB               = "REDIS_DB"
	envRedisMaxRetries       = "REDIS_MAX_RETRIES"
	envSessionSecret         = "SESSION_SECRET"
	envRateLimitEnabled      = "RATE_LIMIT_ENABLED"
	envRateLimitCheckURL     = "RATE_LIMIT_CHECK_URL"
	envRateLimitToken        = "RATE_LIMIT_TOKEN"
	envRateLimitPerWindow    = "RATE_LIMIT_REQUESTS_PER_WINDOW"
	envRateLimitWindow       = "RATE_LIMIT_WINDOW"
	envHealthCheckTimeout    = "HEALTH_CHECK_TIMEOUT"
	envAPIClientTokenBytes   = "API_CLIENT_TOKEN_BYTES"
	envUploadDir             = "UPLOAD_DIR"
	envPublicDir             = "PUBLIC_DIR"
	envBaseURL               = "BASE_URL"
	envThumbnailMaxWidth     = "THUMBNAIL_MAX_WIDTH"
)

const (
	defaultEnv               = "development"
	defaultLogLevel          = "info"
	defaultServerPort        = "8080"
	defaultReadTimeout       = 10 * time.Second
	defaultWriteTimeout      = 10 * time.Second
	defaultShutdownTimeout   = 10 * time.Second
	defaultDBHost            = "localhost"
	defaultDBPort            = 5432
	defaultDBName            = "personacast"
	defaultDBUser            = "personacast_app"
	defaultDBSSLMode         = "disable"
	defaultDBMaxConns        = 25
	defaultDBMinConns        = 5
	defaultRedisPort         = 6379
	defaultRedisDB           = 0
	defaultRedisMaxRetries   = 3
	defaultRateLimitRequests = 60
	defaultRateLimitWindow   = time.Minute
	defaultHealthTimeout     = 5 * time.Second
	defaultTokenBytes        = 32
	defaultUploadDir         = "uploads"
	defaultPublicDir         = "public"
	defaultBaseURL           = "http://localhost:8080"
	defaultThumbnailWidth    = 320

	minSessionSecretLength = 32

	errDBPasswordRequiredFmt    = "DB_PASSWORD must be set"
	errSessionSecretRequiredFmt = "SESSION_SECRET must be set"
	errSessionSecretLengthFmt   = "SESSION_SECRET must be at least %d characters"
	errRateLimitTokenFmt        = "RATE_LIMIT_TOKEN must be set when rate limiting is enabled"
	errTokenBytesFmt            = "API_CLIENT_TOKEN_BYTES: %w"
	errInvalidConfigurationFmt  = "invalid configuration: %w"
)

type Config struct {
	Env       string
	LogLevel  string
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
	App       AppConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     int
	Database string
	User     string
	Password string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host       string
	Port       int
	Password   string
	DB         int
	MaxRetries int
}

type SessionConfig struct {
	Secret string
}

type RateLimitConfig struct {
	Enabled           bool
	CheckURL          string
	Token             string
	RequestsPerWindow int
	Window            time.Duration
}

type AppConfig struct {
	HealthCheckTimeout  time.Duration
	APIClientTokenBytes int
	UploadDir           string
	PublicDir           string
	BaseURL             string
	ThumbnailMaxWidth   int
}

// Load reads the whole configuration from the environment once.
func Load() (*Config, error) {
	cfg := &Config{
		Env:      getEnv(envEnv, defaultEnv),
		LogLevel: getEnv(envLogLevel, defaultLogLevel),
		Server: ServerConfig{
			Port:            getEnv(envPort, defaultServerPort),
			ReadTimeout:     getDuration(envServerReadTimeout, defaultReadTimeout),
			WriteTimeout:    getDuration(envServerWriteTimeout, defaultWriteTimeout),
			ShutdownTimeout: getDuration(envServerShutdownTimeout, defaultShutdownTimeout),
		},
		Database: DatabaseConfig{
			Host:     getEnv(envDBHost, defaultDBHost),
			Port:     getInt(envDBPort, defaultDBPort),
			Database: getEnv(envDBName, defaultDBName),
			User:     getEnv(envDBUser, defaultDBUser),
			Password: os.Getenv(envDBPassword),
			SSLMode:  getEnv(envDBSSLMode, defaultDBSSLMode),
			MaxConns: getInt(envDBMaxConns, defaultDBMaxConns),
			MinConns: getInt(envDBMinConns, defaultDBMinConns),
		},
		Redis: RedisConfig{
			Host:       os.Getenv(envRedisHost),
			Port:       getInt(envRedisPort, defaultRedisPort),
			Password:   os.Getenv(envRedisPassword),
			DB:         getInt(envRedisDB, defaultRedisDB),
			MaxRetries: getInt(envRedisMaxRetries, defaultRedisMaxRetries),
		},
		Session: SessionConfig{
			Secret: os.Getenv(envSessionSecret),
		},
		RateLimit: RateLimitConfig{
			Enabled:           getBool(envRateLimitEnabled, false),
			CheckURL:          os.Getenv(envRateLimitCheckURL),
			Token:             os.Getenv(envRateLimitToken),
			RequestsPerWindow: getInt(envRateLimitPerWindow, defaultRateLimitRequests),
			Window:            getDuration(envRateLimitWindow, defaultRateLimitWindow),
		},
		App: AppConfig{
			HealthCheckTimeout:  getDuration(envHealthCheckTimeout, defaultHealthTimeout),
			APIClientTokenBytes: getInt(envAPIClientTokenBytes, defaultTokenBytes),
			UploadDir:           getEnv(envUploadDir, defaultUploadDir),
			PublicDir:           getEnv(envPublicDir, defaultPublicDir),
			BaseURL:             getEnv(envBaseURL, defaultBaseURL),
			ThumbnailMaxWidth:   getInt(envThumbnailMaxWidth, defaultThumbnailWidth),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf(errInvalidConfigurationFmt, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf(errDBPasswordRequiredFmt)
	}
	if c.Session.Secret == "" {
		return fmt.Errorf(errSessionSecretRequiredFmt)
	}
	if len(c.Session.Secret) < minSessionSecretLength {
		return fmt.Errorf(errSessionSecretLengthFmt, minSessionSecretLength)
	}
	if c.RateLimit.Enabled && c.RateLimit.Token == "" {
		return fmt.Errorf(errRateLimitTokenFmt)
	}
	if err := validator.TokenByteLength(c.App.APIClientTokenBytes); err != nil {
		return fmt.Errorf(errTokenBytesFmt, err)
	}
	return nil
}

// DSN builds a postgres connection string for pgx.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Database, d.SSLMode,
	)
}

// Addr returns the host:port pair for the redis client.
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
