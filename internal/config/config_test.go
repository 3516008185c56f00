package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfig = `
[server]
http_port = 8080
shutdown_timeout = 5

[database]
host = "db"
port = 5432
user = "crm"
password = "secret"
dbname = "fitness"

[logs]
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "fitness_crm"

[gym]
opening_time = "07:00"
closing_time = "23:00"
default_slot_minutes = 60
min_slot_minutes = 30
max_slot_minutes = 120

[tariffs]
base_price = "2500.50"
combinations = ["8_mrn_mnth", "unlim_any_year"]
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	// .env ищется в рабочей директории
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, validConfig)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "host=db port=5432 user=crm password=secret dbname=fitness sslmode=disable", cfg.Database.DSN())
	assert.True(t, cfg.Metrics.Enabled)

	window := cfg.Gym.Window()
	assert.Equal(t, "07:00", window.Opening.String())
	assert.Equal(t, time.Hour, window.DefaultDuration)
	assert.Equal(t, 2*time.Hour, window.MaxDuration)

	price, err := cfg.Tariffs.Price()
	require.NoError(t, err)
	assert.Equal(t, "2500.5", price.String())

	codec, err := cfg.Tariffs.Codec()
	require.NoError(t, err)
	assert.Len(t, codec.Combinations(), 2)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, validConfig)
	t.Setenv("DB_HOST", "10.0.0.5")
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.5", cfg.Database.Host)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := writeConfig(t, validConfig)
	require.NoError(t, os.WriteFile(".env", []byte("DB_PASSWORD=dotenv-secret\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("DB_PASSWORD") })

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dotenv-secret", cfg.Database.Password)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "bad toml", body: "[server\nhttp_port = 1"},
		{name: "missing port", body: `
[database]
host = "db"
port = 5432
user = "crm"
dbname = "fitness"
[tariffs]
base_price = "3000"
`},
		{name: "bad base price", body: `
[server]
http_port = 8080
[database]
host = "db"
port = 5432
user = "crm"
dbname = "fitness"
[tariffs]
base_price = "three thousand"
`},
		{name: "closing before opening", body: `
[server]
http_port = 8080
[database]
host = "db"
port = 5432
user = "crm"
dbname = "fitness"
[gym]
opening_time = "20:00"
closing_time = "08:00"
[tariffs]
base_price = "3000"
`},
		{name: "unknown combination", body: `
[server]
http_port = 8080
[database]
host = "db"
port = 5432
user = "crm"
dbname = "fitness"
[tariffs]
base_price = "3000"
combinations = ["gold"]
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
