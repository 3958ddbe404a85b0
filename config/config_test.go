package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
http:
  address: ":8080"
  static_dir: "./web"
database:
  host: "localhost"
  port: 5432
  user: "postgres"
  password: "postgres"
  name: "booking"
  ssl_mode: "disable"
kafka:
  brokers: ["localhost:9092"]
  tickets_topic: "ticket_events"
booking:
  hold_ttl_seconds: 30
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 30, cfg.Booking.HoldTTLSeconds)
	assert.Equal(t, "persistent", cfg.Booking.Mode)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=booking sslmode=disable", cfg.Database.DSN())
}

func TestLoadConfig_EnvOverridesDatabase(t *testing.T) {
	path := writeConfig(t, `
database:
  host: "localhost"
  port: 5432
  user: "postgres"
`)

	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "hunter2")
	t.Setenv("DB_NAME", "booking_prod")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6432, cfg.Database.Port)
	assert.Equal(t, "app", cfg.Database.User)
	assert.Equal(t, "hunter2", cfg.Database.Password)
	assert.Equal(t, "booking_prod", cfg.Database.Name)
}

func TestLoadConfig_UnknownBookingMode(t *testing.T) {
	path := writeConfig(t, `
booking:
  mode: "dry-run"
`)

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "unknown booking mode")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
