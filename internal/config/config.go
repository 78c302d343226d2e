package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/autovalley/AV-RentalService/internal/domain"
)

const (
	// StorageDriverMemory хранение данных в памяти процесса
	StorageDriverMemory = "memory"
	// StorageDriverPostgres хранение данных в PostgreSQL
	StorageDriverPostgres = "postgres"
)

// Config конфигурация приложения
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Rental   RentalConfig   `toml:"rental"`
	Seed     SeedConfig     `toml:"seed"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки метрик Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор драйвера хранилища
type StorageConfig struct {
	Driver string `toml:"driver"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// RentalConfig доменные настройки аренды
type RentalConfig struct {
	MinYear  int    `toml:"min_year"`
	MaxYear  int    `toml:"max_year"`
	Currency string `toml:"currency"`
}

// SeedConfig настройки демонстрационных данных
type SeedConfig struct {
	Enabled bool `toml:"enabled"`
}

// DSN собирает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Load читает конфигурацию из TOML файла и применяет значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "av-rental-service",
		},
		Storage: StorageConfig{
			Driver: StorageDriverMemory,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Rental: RentalConfig{
			MinYear:  domain.DefaultMinVehicleYear,
			MaxYear:  domain.DefaultMaxVehicleYear,
			Currency: domain.DefaultCurrency,
		},
		Seed: SeedConfig{
			Enabled: false,
		},
	}
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageDriverMemory, StorageDriverPostgres:
	default:
		return fmt.Errorf("config: unknown storage driver %q", c.Storage.Driver)
	}

	if c.Rental.MinYear > c.Rental.MaxYear {
		return fmt.Errorf("config: rental min_year %d is greater than max_year %d",
			c.Rental.MinYear, c.Rental.MaxYear)
	}

	return nil
}
