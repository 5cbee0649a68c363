package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-FieldBooking/pkg/types"
)

var (
	// ErrInvalidConfig возвращается, когда конфигурация не прошла валидацию
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host" env:"DB_HOST"`
	Port            int    `toml:"port" env:"DB_PORT"`
	User            string `toml:"user" env:"DB_USER"`
	Password        string `toml:"password" env:"DB_PASSWORD"`
	DBName          string `toml:"dbname" env:"DB_NAME"`
	SSLMode         string `toml:"sslmode" env:"DB_SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   c.DBName,
	}
	q := u.Query()
	q.Set("sslmode", c.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file" env:"LOG_FILE"`
	Level string `toml:"level" env:"LOG_LEVEL"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"METRICS_ENABLED"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AuthConfig настройки проверки JWT
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret" env:"JWT_SECRET"`
	Issuer    string `toml:"issuer" env:"JWT_ISSUER"`
	Audience  string `toml:"audience" env:"JWT_AUDIENCE"`
}

// BookingConfig значения правил бронирования по умолчанию
// (применяются, если для поля не заданы собственные правила)
type BookingConfig struct {
	Timezone                string  `toml:"timezone" env:"BOOKING_TIMEZONE"`
	SlotStepMinutes         int     `toml:"slot_step_minutes"`
	DefaultDurationMinutes  int     `toml:"default_duration_minutes"`
	AdvanceBookingDays      int     `toml:"advance_booking_days"`
	MinBookingNoticeMinutes int     `toml:"min_booking_notice_minutes"`
	LateDiscountFrom        string  `toml:"late_discount_from"`
	LateDiscountPercent     float64 `toml:"late_discount_percent"`
	MaxTxRetries            int     `toml:"max_tx_retries"`
}

// Location возвращает часовой пояс, в котором трактуются даты и время бронирований
func (c BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// LateDiscountStart возвращает начало вечерней скидки; nil - скидка отключена
func (c BookingConfig) LateDiscountStart() (*types.TimeString, error) {
	if c.LateDiscountFrom == "" {
		return nil, nil
	}
	ts, err := types.NewTimeStringFromString(c.LateDiscountFrom)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

// Load загружает конфигурацию из TOML файла.
// Переменные окружения (и файл .env, если он есть) переопределяют значения из файла.
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация со значениями по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 30,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			ServiceName: "field-booking",
			Path:        "/metrics",
		},
		Booking: BookingConfig{
			Timezone:                "Europe/Bucharest",
			SlotStepMinutes:         60,
			DefaultDurationMinutes:  60,
			AdvanceBookingDays:      30,
			MinBookingNoticeMinutes: 0,
			LateDiscountFrom:        "22:00",
			LateDiscountPercent:     20,
			MaxTxRetries:            3,
		},
	}
}

// Validate проверяет обязательные параметры и диапазоны значений
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("%w: database host, user and dbname are required", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required (or JWT_SECRET)", ErrInvalidConfig)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}
	if _, err := c.Booking.Location(); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Booking.SlotStepMinutes <= 0 {
		return fmt.Errorf("%w: booking.slot_step_minutes must be positive", ErrInvalidConfig)
	}
	if c.Booking.AdvanceBookingDays < 0 || c.Booking.MinBookingNoticeMinutes < 0 {
		return fmt.Errorf("%w: booking limits must not be negative", ErrInvalidConfig)
	}
	if c.Booking.LateDiscountPercent < 0 || c.Booking.LateDiscountPercent > 100 {
		return fmt.Errorf("%w: booking.late_discount_percent must be in 0..100", ErrInvalidConfig)
	}
	if _, err := c.Booking.LateDiscountStart(); err != nil {
		return fmt.Errorf("%w: booking.late_discount_from: %v", ErrInvalidConfig, err)
	}
	return nil
}
