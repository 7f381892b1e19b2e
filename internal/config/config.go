package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/avelinemakeup/AM-BookingService/internal/domain"
	"github.com/avelinemakeup/AM-BookingService/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Logs     LogsConfig     `toml:"logs"`
	Auth     AuthConfig     `toml:"auth"`
	Hours    HoursConfig    `toml:"hours"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

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

// DSN собирает строку подключения к Postgres
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type AuthConfig struct {
	AdminToken string `toml:"admin_token"`
}

// HoursConfig расписание работы по дням недели.
// Непрописанные дни считаются рабочими с часами по умолчанию.
type HoursConfig struct {
	Monday    *DayHours `toml:"monday"`
	Tuesday   *DayHours `toml:"tuesday"`
	Wednesday *DayHours `toml:"wednesday"`
	Thursday  *DayHours `toml:"thursday"`
	Friday    *DayHours `toml:"friday"`
	Saturday  *DayHours `toml:"saturday"`
	Sunday    *DayHours `toml:"sunday"`
}

type DayHours struct {
	Open   string `toml:"open"`
	Close  string `toml:"close"`
	Closed bool   `toml:"closed"`
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}

	if err := cfg.Hours.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// WeekSchedule конвертирует секцию hours в доменное расписание
func (h HoursConfig) WeekSchedule() domain.WeekSchedule {
	return domain.WeekSchedule{
		Monday:    h.Monday.toDomain(),
		Tuesday:   h.Tuesday.toDomain(),
		Wednesday: h.Wednesday.toDomain(),
		Thursday:  h.Thursday.toDomain(),
		Friday:    h.Friday.toDomain(),
		Saturday:  h.Saturday.toDomain(),
		Sunday:    h.Sunday.toDomain(),
	}
}

func (d *DayHours) toDomain() domain.DaySchedule {
	if d == nil {
		return domain.DaySchedule{}
	}
	return domain.DaySchedule{
		Open:   types.TimeString(d.Open),
		Close:  types.TimeString(d.Close),
		Closed: d.Closed,
	}
}

func (h HoursConfig) validate() error {
	days := map[string]*DayHours{
		"monday": h.Monday, "tuesday": h.Tuesday, "wednesday": h.Wednesday,
		"thursday": h.Thursday, "friday": h.Friday, "saturday": h.Saturday,
		"sunday": h.Sunday,
	}
	for name, d := range days {
		if d == nil || d.Closed {
			continue
		}
		if d.Open != "" {
			if err := types.TimeString(d.Open).Validate(); err != nil {
				return fmt.Errorf("config: hours.%s.open: %w", name, err)
			}
		}
		if d.Close != "" {
			if err := types.TimeString(d.Close).Validate(); err != nil {
				return fmt.Errorf("config: hours.%s.close: %w", name, err)
			}
		}
	}
	return nil
}
