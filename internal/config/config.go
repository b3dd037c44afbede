package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort        string        `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// Postgres Config. Пустой DATABASE_URL означает встроенный каталог демо-данных
	DatabaseURL    string `env:"DATABASE_URL"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"file://migrations"`
	DBMaxConns     int    `env:"DB_MAX_CONNS" envDefault:"0"` // 0 - значение pgxpool по умолчанию

	// Redis Config. Пустой REDIS_ADDR отключает кэш страниц и очередь рассылок
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPass     string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// Pagination Config
	DefaultPageSize int `env:"DEFAULT_PAGE_SIZE" envDefault:"10"`
	MaxPageSize     int `env:"MAX_PAGE_SIZE" envDefault:"100"`

	// Gateway Config - шлюз доставки оповещений (SMS/Voice/USSD)
	GatewayURL        string        `env:"GATEWAY_URL"`
	GatewaySecret     string        `env:"GATEWAY_SECRET"`
	GatewayTimeout    time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"5s"`
	GatewayMaxRetries int           `env:"GATEWAY_MAX_RETRIES" envDefault:"3"`
	GatewayBaseDelay  time.Duration `env:"GATEWAY_BASE_DELAY" envDefault:"1s"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
		ShutdownTimeout:   getEnvAsDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		MigrationsPath:    getEnv("MIGRATIONS_PATH", "file://migrations"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", 0),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		RedisPoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
		CacheTTL:          getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		DefaultPageSize:   getEnvAsInt("DEFAULT_PAGE_SIZE", 10),
		MaxPageSize:       getEnvAsInt("MAX_PAGE_SIZE", 100),
		GatewayURL:        os.Getenv("GATEWAY_URL"),
		GatewaySecret:     os.Getenv("GATEWAY_SECRET"),
		GatewayTimeout:    getEnvAsDuration("GATEWAY_TIMEOUT", 5*time.Second),
		GatewayMaxRetries: getEnvAsInt("GATEWAY_MAX_RETRIES", 3),
		GatewayBaseDelay:  getEnvAsDuration("GATEWAY_BASE_DELAY", time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность значений
func (c *Config) Validate() error {
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	if c.MaxPageSize < 1 {
		return fmt.Errorf("MAX_PAGE_SIZE must be positive, got %d", c.MaxPageSize)
	}
	if c.DefaultPageSize < 1 || c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("DEFAULT_PAGE_SIZE must be between 1 and MAX_PAGE_SIZE (%d), got %d", c.MaxPageSize, c.DefaultPageSize)
	}
	if c.DBMaxConns < 0 || c.DBMaxConns > math.MaxInt32 {
		return fmt.Errorf("DB_MAX_CONNS must be between 0 and %d, got %d", math.MaxInt32, c.DBMaxConns)
	}
	if c.RedisPoolSize < 1 {
		return fmt.Errorf("REDIS_POOL_SIZE must be positive, got %d", c.RedisPoolSize)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive, got %s", c.CacheTTL)
	}
	if c.GatewayMaxRetries < 1 {
		return fmt.Errorf("GATEWAY_MAX_RETRIES must be positive, got %d", c.GatewayMaxRetries)
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
