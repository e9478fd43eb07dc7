package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // e.g. "5m", "1h"
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // e.g. "10m", "30m"
}

// NATSConfig holds NATS JetStream configuration. An empty URL disables event publishing.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// CexConfig holds the pricing source client configuration
type CexConfig struct {
	BaseURL      string          `mapstructure:"base_url"`
	HTTPTimeout  time.Duration   `mapstructure:"http_timeout"`
	FetchTimeout time.Duration   `mapstructure:"fetch_timeout"` // upper bound for one fetch including retries
	RateLimit    RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig holds the request rate allowed against the pricing source
type RateLimitConfig struct {
	RequestsPerSecond       int     `mapstructure:"requests_per_second"`
	Burst                   int     `mapstructure:"burst"`
	KeyPrefix               string  `mapstructure:"key_prefix"`
	LocalFallbackMultiplier float64 `mapstructure:"local_fallback_multiplier"` // applied while Redis is unavailable
}

// RedisConfig holds Redis configuration. An empty address limits each process on its own.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds

	// CORSAllowOrigins restricts cross-origin requests; empty allows all origins
	CORSAllowOrigins []string `mapstructure:"cors_allow_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// WorkerConfig holds worker pool configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// SweepConfig holds the batch price update settings
type SweepConfig struct {
	Interval     time.Duration `mapstructure:"interval"`
	CycleTimeout time.Duration `mapstructure:"cycle_timeout"`
	Worker       WorkerConfig  `mapstructure:"worker"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig   `mapstructure:",squash"`
	Server       ServerConfig   `mapstructure:"server"`
	Database     DatabaseConfig `mapstructure:"database"`
	Cex          CexConfig      `mapstructure:"cex"`
	Redis        RedisConfig    `mapstructure:"redis"`
	Auth         AuthConfig     `mapstructure:"auth"`
	NATS         NATSConfig     `mapstructure:"nats"`
	PriceSweeper SweepConfig    `mapstructure:"price_sweeper"`
}

// PriceSweeperConfig holds configuration for the price-sweeper program
type PriceSweeperConfig struct {
	BaseConfig   `mapstructure:",squash"`
	Database     DatabaseConfig `mapstructure:"database"`
	Cex          CexConfig      `mapstructure:"cex"`
	Redis        RedisConfig    `mapstructure:"redis"`
	NATS         NATSConfig     `mapstructure:"nats"`
	PriceSweeper SweepConfig    `mapstructure:"price_sweeper"`
}

// SeederConfig holds configuration for the seeder program
type SeederConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Cex        CexConfig      `mapstructure:"cex"`
	Redis      RedisConfig    `mapstructure:"redis"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 60)
	v.SetDefault("server.idle_timeout", 120)
	setDatabaseDefaults(v)
	setCexDefaults(v)
	setNATSDefaults(v, "api")
	setSweepDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadPriceSweeperConfig loads configuration for the price-sweeper program
func LoadPriceSweeperConfig(configFile string, envPath string) (*PriceSweeperConfig, error) {
	v := configureViper("price-sweeper", configFile, envPath)

	setDatabaseDefaults(v)
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
	setCexDefaults(v)
	setNATSDefaults(v, "price-sweeper")
	setSweepDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg PriceSweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}
	if cfg.PriceSweeper.Interval <= 0 {
		return nil, errors.New("price_sweeper.interval must be positive")
	}

	return &cfg, nil
}

// LoadSeederConfig loads configuration for the seeder program
func LoadSeederConfig(configFile string, envPath string) (*SeederConfig, error) {
	v := configureViper("seeder", configFile, envPath)

	setDatabaseDefaults(v)
	setCexDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg SeederConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
}

func setCexDefaults(v *viper.Viper) {
	v.SetDefault("cex.base_url", "https://wss2.cex.uk.webuy.io/v3/boxes")
	v.SetDefault("cex.http_timeout", "15s")
	v.SetDefault("cex.fetch_timeout", "60s")
	v.SetDefault("cex.rate_limit.requests_per_second", 2)
	v.SetDefault("cex.rate_limit.burst", 2)
	v.SetDefault("cex.rate_limit.key_prefix", "ff:disctracker:limiter:")
	v.SetDefault("cex.rate_limit.local_fallback_multiplier", 0.5)
	v.SetDefault("redis.db", 0)
}

func setNATSDefaults(v *viper.Viper, service string) {
	v.SetDefault("nats.stream_name", "PRICE_EVENTS")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "ff-disctracker-"+service)
}

func setSweepDefaults(v *viper.Viper) {
	v.SetDefault("price_sweeper.interval", "12h")
	v.SetDefault("price_sweeper.cycle_timeout", "1h")
	v.SetDefault("price_sweeper.worker.pool_size", 8)
	v.SetDefault("price_sweeper.worker.queue_size", 256)
}

// readConfig reads the config file; a missing file falls back to environment variables
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		var pathErr *os.PathError
		if errors.As(err, &pathErr) && errors.Is(pathErr.Err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search order: current directory, cmd/<service>/, config/
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("FF_DISCTRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Pricing source
		"cex.base_url",
		"cex.http_timeout",
		"cex.fetch_timeout",
		"cex.rate_limit.requests_per_second",
		"cex.rate_limit.burst",
		"cex.rate_limit.key_prefix",
		"cex.rate_limit.local_fallback_multiplier",
		// Redis
		"redis.addr",
		"redis.password",
		"redis.db",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.cors_allow_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Price sweeper
		"price_sweeper.interval",
		"price_sweeper.cycle_timeout",
		"price_sweeper.worker.pool_size",
		"price_sweeper.worker.queue_size",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile)) // later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
