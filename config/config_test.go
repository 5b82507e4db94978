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
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "http:\n  address: \":9090\"\n"))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Address)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 60, cfg.Redis.TTLSeconds)
	assert.Equal(t, "booking.records", cfg.Kafka.RecordsTopic)
}

func TestLoadConfig_Postgres(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
storage:
  driver: postgres
database:
  host: db
  user: app
  password: secret
  name: bookings
kafka:
  brokers: ["kafka:9092"]
  notifications_topic: booking.notifications
`))
	require.NoError(t, err)

	assert.Equal(t, "host=db port=5432 user=app password=secret dbname=bookings sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, []string{"kafka:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "booking.notifications", cfg.Kafka.NotificationsTopic)
}

func TestLoadConfig_UnknownDriver(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "storage:\n  driver: mongo\n"))
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
