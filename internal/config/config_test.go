package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	if content == "" {
		return filepath.Join(tmpDir, "nonexistent.yaml")
	}
	configFile := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0600))
	return configFile
}

func TestLoadAPIConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *APIConfig)
	}{
		{
			name: "valid config file",
			configFile: `
debug: true
sentry_dsn: "https://sentry.example.com"
server:
  host: 127.0.0.1
  port: 9090
database:
  host: localhost
  port: 5433
  user: testuser
  password: testpass
  dbname: testdb
cex:
  base_url: "http://cex.local/v3/boxes"
  http_timeout: "5s"
auth:
  jwt_public_key: "pem"
  api_keys:
    - key-1
    - key-2
nats:
  url: "nats://localhost:4222"
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.True(t, cfg.Debug)
				assert.Equal(t, "https://sentry.example.com", cfg.SentryDSN)
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "testdb", cfg.Database.DBName)
				assert.Equal(t, "http://cex.local/v3/boxes", cfg.Cex.BaseURL)
				assert.Equal(t, 5*time.Second, cfg.Cex.HTTPTimeout)
				assert.Equal(t, []string{"key-1", "key-2"}, cfg.Auth.APIKeys)
				assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
			},
		},
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  dbname: testdb
`,
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.False(t, cfg.Debug)
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, "https://wss2.cex.uk.webuy.io/v3/boxes", cfg.Cex.BaseURL)
				assert.Equal(t, 15*time.Second, cfg.Cex.HTTPTimeout)
				assert.Equal(t, 2, cfg.Cex.RateLimit.RequestsPerSecond)
				assert.Equal(t, 0.5, cfg.Cex.RateLimit.LocalFallbackMultiplier)
				assert.Empty(t, cfg.Redis.Addr)
				assert.Equal(t, "PRICE_EVENTS", cfg.NATS.StreamName)
				assert.Empty(t, cfg.NATS.URL)
				assert.Equal(t, 8, cfg.PriceSweeper.Worker.WorkerPoolSize)
			},
		},
		{
			name:       "missing config file",
			configFile: "",
			validate: func(t *testing.T, cfg *APIConfig) {
				assert.Equal(t, 8080, cfg.Server.Port)
			},
		},
		{
			name: "invalid port",
			configFile: `
server:
  port: invalid
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadAPIConfig(writeConfig(t, tt.configFile), t.TempDir())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadPriceSweeperConfig(t *testing.T) {
	tests := []struct {
		name        string
		configFile  string
		expectError bool
		validate    func(*testing.T, *PriceSweeperConfig)
	}{
		{
			name: "config with defaults",
			configFile: `
database:
  host: localhost
  dbname: testdb
`,
			validate: func(t *testing.T, cfg *PriceSweeperConfig) {
				assert.Equal(t, 12*time.Hour, cfg.PriceSweeper.Interval)
				assert.Equal(t, time.Hour, cfg.PriceSweeper.CycleTimeout)
				assert.Equal(t, 8, cfg.PriceSweeper.Worker.WorkerPoolSize)
				assert.Equal(t, 256, cfg.PriceSweeper.Worker.WorkerQueueSize)
				assert.Equal(t, 10, cfg.Database.MaxOpenConns)
				assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
				assert.Equal(t, "ff-disctracker-price-sweeper", cfg.NATS.ConnectionName)
			},
		},
		{
			name: "overridden sweep settings",
			configFile: `
database:
  host: localhost
  dbname: testdb
price_sweeper:
  interval: "30m"
  cycle_timeout: "10m"
  worker:
    pool_size: 2
    queue_size: 16
`,
			validate: func(t *testing.T, cfg *PriceSweeperConfig) {
				assert.Equal(t, 30*time.Minute, cfg.PriceSweeper.Interval)
				assert.Equal(t, 10*time.Minute, cfg.PriceSweeper.CycleTimeout)
				assert.Equal(t, 2, cfg.PriceSweeper.Worker.WorkerPoolSize)
				assert.Equal(t, 16, cfg.PriceSweeper.Worker.WorkerQueueSize)
			},
		},
		{
			name: "missing database host",
			configFile: `
database:
  dbname: testdb
`,
			expectError: true,
		},
		{
			name: "missing database name",
			configFile: `
database:
  host: localhost
`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadPriceSweeperConfig(writeConfig(t, tt.configFile), t.TempDir())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadSeederConfig(t *testing.T) {
	cfg, err := LoadSeederConfig(writeConfig(t, `
database:
  host: db
  user: seeder
  dbname: disctracker
cex:
  http_timeout: "3s"
`), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 3*time.Second, cfg.Cex.HTTPTimeout)
	assert.Equal(t, "https://wss2.cex.uk.webuy.io/v3/boxes", cfg.Cex.BaseURL)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "user",
		Password: "pass",
		DBName:   "db",
		SSLMode:  "disable",
	}
	assert.Equal(t, "host=localhost port=5432 user=user password=pass dbname=db sslmode=disable", cfg.DSN())
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	tmpDir := t.TempDir()

	envDir := filepath.Join(tmpDir, "env")
	require.NoError(t, os.MkdirAll(envDir, 0750))

	envVars := map[string]string{
		"FF_DISCTRACKER_DEBUG":                          "true",
		"FF_DISCTRACKER_DATABASE_HOST":                  "env-host",
		"FF_DISCTRACKER_DATABASE_PORT":                  "3306",
		"FF_DISCTRACKER_DATABASE_DBNAME":                "env-db",
		"FF_DISCTRACKER_PRICE_SWEEPER_WORKER_POOL_SIZE": "3",
	}
	var envContent string
	for k, v := range envVars {
		envContent += k + "=" + v + "\n"
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env"), []byte(envContent), 0600))

	// The api-specific overlay wins over .env
	require.NoError(t, os.WriteFile(filepath.Join(envDir, ".env.api.local"), []byte("FF_DISCTRACKER_DATABASE_DBNAME=local-db\n"), 0600))

	configPath := writeConfig(t, `
debug: false
database:
  host: file-host
  port: 5432
  dbname: file-db
`)

	cfg, err := LoadAPIConfig(configPath, envDir)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, "env-host", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "local-db", cfg.Database.DBName)
	assert.Equal(t, 3, cfg.PriceSweeper.Worker.WorkerPoolSize)
}
