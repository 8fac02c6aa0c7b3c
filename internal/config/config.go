package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/sirisampada/SSCC-BookingService/internal/domain"
)

// Поддерживаемые драйверы хранилища
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server   Server   `toml:"server"`
	Logs     Logs     `toml:"logs"`
	Database Database `toml:"database"`
	Booking  Booking  `toml:"booking"`
	Auth     Auth     `toml:"auth"`
	Metrics  Metrics  `toml:"metrics"`
}

// Server настройки HTTP сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Database настройки хранилища
// Driver выбирает реализацию репозиториев: mongo (основная) или postgres
type Database struct {
	Driver   string   `toml:"driver"`
	Mongo    Mongo    `toml:"mongo"`
	Postgres Postgres `toml:"postgres"`
}

// Mongo настройки подключения к MongoDB
type Mongo struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
	Timeout  int    `toml:"timeout"` // секунды, на подключение и ping
}

// Postgres настройки подключения к PostgreSQL
type Postgres struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (p Postgres) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode)
}

// Booking параметры бронирования
type Booking struct {
	// CapacityPerSlot максимальное количество записей на один слот
	CapacityPerSlot int `toml:"capacity_per_slot"`
}

// Auth настройки доступа к экрану назначений
// Пароль хранится только в виде bcrypt-хеша, секреты в коде отсутствуют
type Auth struct {
	PasswordHash    string `toml:"password_hash"`
	JWTSecret       string `toml:"jwt_secret"`
	TokenTTLMinutes int    `toml:"token_ttl_minutes"`
}

// Metrics настройки Prometheus-метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Load загружает и валидирует конфигурацию из toml файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s: %v", ErrInvalidConfig, path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Booking.CapacityPerSlot == 0 {
		c.Booking.CapacityPerSlot = domain.DefaultCapacityPerSlot
	}
	if c.Auth.TokenTTLMinutes == 0 {
		c.Auth.TokenTTLMinutes = 60
	}
	if c.Database.Mongo.Timeout == 0 {
		c.Database.Mongo.Timeout = 10
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "sscc-booking-service"
	}
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case DriverMongo:
		if c.Database.Mongo.URI == "" {
			return fmt.Errorf("%w: database.mongo.uri is required", ErrInvalidConfig)
		}
		if c.Database.Mongo.Database == "" {
			return fmt.Errorf("%w: database.mongo.database is required", ErrInvalidConfig)
		}
	case DriverPostgres:
		if c.Database.Postgres.Host == "" || c.Database.Postgres.DBName == "" {
			return fmt.Errorf("%w: database.postgres.host and dbname are required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: database.driver must be %q or %q, got %q",
			ErrInvalidConfig, DriverMongo, DriverPostgres, c.Database.Driver)
	}

	if c.Booking.CapacityPerSlot < 1 {
		return fmt.Errorf("%w: booking.capacity_per_slot must be positive", ErrInvalidConfig)
	}

	if c.Auth.PasswordHash == "" {
		return fmt.Errorf("%w: auth.password_hash is required", ErrInvalidConfig)
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("%w: auth.jwt_secret is required", ErrInvalidConfig)
	}

	return nil
}
