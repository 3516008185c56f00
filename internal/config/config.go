package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/tariffcodec"
	"github.com/maris-volk/CRM-fitness-room-sub000/internal/service/timewindow"
	"github.com/maris-volk/CRM-fitness-room-sub000/pkg/types"
)

// Config конфигурация приложения
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Gym      GymConfig      `toml:"gym"`
	Tariffs  TariffsConfig  `toml:"tariffs"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" validate:"required,min=1,max=65535"`
	ReadTimeout     int `toml:"read_timeout" validate:"min=0"`
	WriteTimeout    int `toml:"write_timeout" validate:"min=0"`
	IdleTimeout     int `toml:"idle_timeout" validate:"min=0"`
	ShutdownTimeout int `toml:"shutdown_timeout" validate:"min=0"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" validate:"required"`
	Port            int    `toml:"port" validate:"required,min=1,max=65535"`
	User            string `toml:"user" validate:"required"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname" validate:"required"`
	SSLMode         string `toml:"sslmode" validate:"omitempty,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int    `toml:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int    `toml:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime" validate:"min=0"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, sslMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path" validate:"required_if=Enabled true"`
	ServiceName string `toml:"service_name" validate:"required_if=Enabled true"`
}

// GymConfig часы работы зала и длительность занятий (в минутах)
type GymConfig struct {
	OpeningTime        string `toml:"opening_time" validate:"omitempty,datetime=15:04"`
	ClosingTime        string `toml:"closing_time" validate:"omitempty,datetime=15:04"`
	DefaultSlotMinutes int    `toml:"default_slot_minutes" validate:"min=0"`
	MinSlotMinutes     int    `toml:"min_slot_minutes" validate:"min=0"`
	MaxSlotMinutes     int    `toml:"max_slot_minutes" validate:"min=0"`
}

// Window настройки валидатора временных окон
func (g GymConfig) Window() timewindow.Config {
	return timewindow.Config{
		Opening:         types.TimeString(g.OpeningTime),
		Closing:         types.TimeString(g.ClosingTime),
		DefaultDuration: time.Duration(g.DefaultSlotMinutes) * time.Minute,
		MinDuration:     time.Duration(g.MinSlotMinutes) * time.Minute,
		MaxDuration:     time.Duration(g.MaxSlotMinutes) * time.Minute,
	}
}

// TariffsConfig базовая цена и допустимые сочетания тарифов
// Пустой список сочетаний означает набор по умолчанию
type TariffsConfig struct {
	BasePrice    string   `toml:"base_price" validate:"required,numeric"`
	Combinations []string `toml:"combinations"`
}

// Price базовая цена как decimal
func (t TariffsConfig) Price() (decimal.Decimal, error) {
	return decimal.NewFromString(t.BasePrice)
}

// Codec кодек тарифов с настроенной таблицей сочетаний
func (t TariffsConfig) Codec() (*tariffcodec.Codec, error) {
	return tariffcodec.NewFromCodes(t.Combinations)
}

// Load читает конфигурацию из TOML файла
// Переменные окружения (и .env, если есть) переопределяют секреты и адреса
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("DB_HOST"); ok {
		c.Database.Host = v
	}
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv("HTTP_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid HTTP_PORT %q: %w", v, err)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

func (c *Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if _, err := timewindow.New(c.Gym.Window()); err != nil {
		return fmt.Errorf("invalid gym settings: %w", err)
	}
	if _, err := c.Tariffs.Codec(); err != nil {
		return fmt.Errorf("invalid tariff combinations: %w", err)
	}
	return nil
}
