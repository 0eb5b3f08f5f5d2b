package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/HMS-PlanningService/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	HotelCore HotelCoreConfig `toml:"hotelcore"`
	Planner   PlannerConfig   `toml:"planner"`
}

// ServerConfig настройки HTTP-сервера фасада
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// HotelCoreConfig настройки клиента бэкенда отельной системы
type HotelCoreConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // seconds
}

// PlannerConfig настройки вычислительного ядра планировщика
type PlannerConfig struct {
	Timezone       string `toml:"timezone"`
	AxisDaysBefore int    `toml:"axis_days_before"`
	AxisLength     int    `toml:"axis_length"`
}

// Load читает конфигурацию из TOML-файла и подставляет значения по умолчанию
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
			HTTPPort:        8090,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "hms-planning-service",
		},
		HotelCore: HotelCoreConfig{
			Timeout: 10,
		},
		Planner: PlannerConfig{
			Timezone:       domain.DefaultTimezone,
			AxisDaysBefore: domain.DefaultAxisDaysBefore,
			AxisLength:     domain.DefaultAxisLength,
		},
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid server.http_port %d", c.Server.HTTPPort)
	}

	if c.HotelCore.URL == "" {
		return fmt.Errorf("config: hotelcore.url is required")
	}

	if c.HotelCore.Timeout <= 0 {
		return fmt.Errorf("config: hotelcore.timeout must be positive")
	}

	if c.Planner.Timezone == "" {
		return fmt.Errorf("config: planner.timezone is required")
	}

	if c.Planner.AxisLength <= 0 {
		return fmt.Errorf("config: planner.axis_length must be positive")
	}

	if c.Planner.AxisDaysBefore < 0 {
		return fmt.Errorf("config: planner.axis_days_before must not be negative")
	}

	if c.Planner.AxisDaysBefore >= c.Planner.AxisLength {
		return fmt.Errorf("config: planner.axis_days_before must be less than planner.axis_length")
	}

	return nil
}
