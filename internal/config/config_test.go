package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
[server]
http_port = 9090
read_timeout = 20

[database]
host = "localhost"
port = 5432
user = "booking"
password = "secret"
dbname = "booking"
sslmode = "require"

[logs]
file = "/var/log/booking-service.log"
level = "debug"

[metrics]
enabled = true
service_name = "booking"
path = "/internal/metrics"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 20, cfg.Server.ReadTimeout)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/internal/metrics", cfg.Metrics.Path)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
[database]
host = "localhost"
port = 5432
user = "booking"
dbname = "booking"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "booking-service", cfg.Metrics.ServiceName)
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing host",
			content: `
[database]
port = 5432
user = "booking"
dbname = "booking"
`,
		},
		{
			name: "missing dbname",
			content: `
[database]
host = "localhost"
port = 5432
user = "booking"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfigFile(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "booking",
		Password: "secret",
		DBName:   "salon",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=booking password=secret dbname=salon sslmode=disable",
		d.DSN())
}
