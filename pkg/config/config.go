package config

import (
	"errors"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Admin    AdminConfig
	Carousel CarouselConfig
	Gemini   GeminiConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
	LogFile     string
}

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
	AllowOrigins   []string
}

type StorageConfig struct {
	Driver     string
	SQLitePath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisUsername string
	RedisPassword string
	RedisDB       int
	KeyPrefix     string
	PoolSize      int
	Timeout       time.Duration
}

type JWTConfig struct {
	SecretKey string
	TTL       time.Duration
}

// AdminConfig seeds the reserved dealer account when the user store has none.
type AdminConfig struct {
	Name     string
	Phone    string
	Password string
}

type CarouselConfig struct {
	Interval time.Duration
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	redisPoolSize, err := strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10"))
	if err != nil || redisPoolSize <= 0 {
		return nil, errors.New("invalid redis pool size")
	}

	redisTimeout, err := time.ParseDuration(getEnv("REDIS_TIMEOUT", "3s"))
	if err != nil || redisTimeout <= 0 {
		return nil, errors.New("invalid redis timeout")
	}

	requestTimeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "10s"))
	if err != nil {
		return nil, errors.New("invalid request timeout")
	}

	jwtTTL, err := time.ParseDuration(getEnv("JWT_TTL", "24h"))
	if err != nil {
		return nil, errors.New("invalid jwt ttl")
	}

	carouselInterval, err := time.ParseDuration(getEnv("CAROUSEL_INTERVAL", "4s"))
	if err != nil || carouselInterval <= 0 {
		return nil, errors.New("invalid carousel interval")
	}

	geminiTimeout, err := time.ParseDuration(getEnv("GEMINI_TIMEOUT", "8s"))
	if err != nil {
		return nil, errors.New("invalid gemini timeout")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Mobile Hospital Storefront"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			LogFile:     getEnv("LOG_FILE", ""),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RequestTimeout: requestTimeout,
			AllowOrigins:   splitList(getEnv("ALLOW_ORIGINS", "http://localhost:3000,http://localhost:8080")),
		},
		Storage: StorageConfig{
			Driver:     strings.ToLower(getEnv("STORAGE_DRIVER", DriverSQLite)),
			SQLitePath: getEnv("SQLITE_PATH", "storefront.db"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "storefront"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisUsername: getEnv("REDIS_USERNAME", ""),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
			KeyPrefix:     getEnv("REDIS_KEY_PREFIX", "storefront:"),
			PoolSize:      redisPoolSize,
			Timeout:       redisTimeout,
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
			TTL:       jwtTTL,
		},
		Admin: AdminConfig{
			Name:     getEnv("ADMIN_NAME", "Dealer Admin"),
			Phone:    getEnv("ADMIN_PHONE", "8167435566"),
			Password: getEnv("ADMIN_PASSWORD", "Hospital@3030"),
		},
		Carousel: CarouselConfig{
			Interval: carouselInterval,
		},
		Gemini: GeminiConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			Timeout: geminiTimeout,
		},
	}

	if cfg.JWT.SecretKey == "" {
		return nil, errors.New("missing jwt secret")
	}

	switch cfg.Storage.Driver {
	case DriverSQLite, DriverRedis:
	case DriverPostgres:
		if cfg.Database.Password == "" {
			return nil, errors.New("missing database password")
		}
	default:
		return nil, errors.New("unknown storage driver: " + cfg.Storage.Driver)
	}

	if !phonePattern.MatchString(cfg.Admin.Phone) {
		return nil, errors.New("admin phone must be a 10-digit mobile number")
	}

	if cfg.Admin.Password == "" {
		return nil, errors.New("missing admin password")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
