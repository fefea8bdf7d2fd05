package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Payment  PaymentConfig  `toml:"payment"`
	Cache    CacheConfig    `toml:"cache"`
	Events   EventsConfig   `toml:"events"`
	Booking  BookingConfig  `toml:"booking"`
	Admin    AdminConfig    `toml:"admin"`
	CORS     CORSConfig     `toml:"cors"`
}

// ServerConfig таймауты указаны в секундах
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
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig TokenTTL в минутах
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	TokenTTL  int    `toml:"token_ttl"`
	Issuer    string `toml:"issuer"`
}

// PaymentConfig Timeout в секундах
type PaymentConfig struct {
	BaseURL   string `toml:"base_url"`
	SecretKey string `toml:"secret_key"`
	Timeout   int    `toml:"timeout"`
}

// CacheConfig PropertyTTL в секундах; MemcacheServers пустой - только локальный кэш
type CacheConfig struct {
	Enabled         bool     `toml:"enabled"`
	MaxSize         int64    `toml:"max_size"`
	PropertyTTL     int      `toml:"property_ttl"`
	MemcacheServers []string `toml:"memcache_servers"`
}

type EventsConfig struct {
	Enabled     bool   `toml:"enabled"`
	RabbitMQURL string `toml:"rabbitmq_url"`
	Queue       string `toml:"queue"`
}

type BookingConfig struct {
	PreventOverlap bool `toml:"prevent_overlap"`
}

// AdminConfig учетная запись администратора, создаваемая при старте
type AdminConfig struct {
	Email     string `toml:"email"`
	Password  string `toml:"password"`
	FirstName string `toml:"first_name"`
	LastName  string `toml:"last_name"`
}

type CORSConfig struct {
	AllowedOrigins   []string `toml:"allowed_origins"`
	AllowCredentials bool     `toml:"allow_credentials"`
}

// Load читает TOML файл, накладывает секреты из окружения (.env рядом с процессом) и проверяет результат
func Load(path string) (*Config, error) {
	return LoadWithEnvFile(path, ".env")
}

// LoadWithEnvFile как Load, но с явным путем к .env; пустой путь - только переменные окружения
func LoadWithEnvFile(path, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: load env file %s: %w", envFile, err)
		}
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnv переопределяет секреты из переменных окружения
func (c *Config) applyEnv() {
	overrides := map[string]*string{
		"DB_PASSWORD":         &c.Database.Password,
		"JWT_SECRET":          &c.Auth.JWTSecret,
		"PAYSTACK_SECRET_KEY": &c.Payment.SecretKey,
		"ADMIN_PASSWORD":      &c.Admin.Password,
		"RABBITMQ_URL":        &c.Events.RabbitMQURL,
	}
	for key, target := range overrides {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*target = v
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "realestate_service"
	}

	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = 60
	}
	if c.Auth.Issuer == "" {
		c.Auth.Issuer = "realestate-service"
	}

	if c.Payment.BaseURL == "" {
		c.Payment.BaseURL = "https://api.paystack.co"
	}
	if c.Payment.Timeout == 0 {
		c.Payment.Timeout = 10
	}

	if c.Cache.MaxSize == 0 {
		c.Cache.MaxSize = 1000
	}
	if c.Cache.PropertyTTL == 0 {
		c.Cache.PropertyTTL = 300
	}

	if c.Events.Queue == "" {
		c.Events.Queue = "property_events"
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	var errs []error

	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("server.http_port must be in 1..65535, got %d", c.Server.HTTPPort))
	}
	if c.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if c.Database.DBName == "" {
		errs = append(errs, errors.New("database.dbname is required"))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("auth.jwt_secret (or JWT_SECRET) is required"))
	}
	if c.Auth.TokenTTL < 0 {
		errs = append(errs, errors.New("auth.token_ttl must be positive"))
	}
	if c.Events.Enabled && c.Events.RabbitMQURL == "" {
		errs = append(errs, errors.New("events.rabbitmq_url (or RABBITMQ_URL) is required when events are enabled"))
	}
	if c.Admin.Email != "" && c.Admin.Password == "" {
		errs = append(errs, errors.New("admin.password (or ADMIN_PASSWORD) is required when admin.email is set"))
	}
	for _, origin := range c.CORS.AllowedOrigins {
		if c.CORS.AllowCredentials && strings.TrimSpace(origin) == "*" {
			errs = append(errs, errors.New("cors.allowed_origins cannot contain \"*\" with allow_credentials"))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
