package config

import (
	"encoding/base64"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Application struct {
		Name        string
		Environment string
		Port        int
		Debug       bool
		Timeout     time.Duration
		BaseURL     string
	}

	Postgres struct {
		DSN          string
		MaxOpenConns int
		MaxIdleConns int
	}

	Redis struct {
		Address  string
		Password string
		DB       int
	}

	Kafka struct {
		BootstrapServers string
		SASLUsername     string
		SASLPassword     string
	}

	JWT struct {
		PrivateKey []byte
		PublicKey  []byte
	}

	CORS struct {
		AllowedOrigins   []string
		AllowedMethods   []string
		AllowedHeaders   []string
		ExposedHeaders   []string
		MaxAge           int
		AllowCredentials bool
	}

	GCP struct {
		ProjectID      string
		Location       string
		ServiceAccount []byte
	}

	Order struct {
		Expiration         time.Duration
		FallbackHourlyRate string
	}
}

var (
	once sync.Once
	c    *Config
)

func Get() *Config {
	once.Do(func() {
		godotenv.Load()
		c = load()
	})

	return c
}

func load() *Config {
	cfg := &Config{}

	cfg.Application.Name = getString("APP_NAME", "promotores")
	cfg.Application.Environment = getString("APP_ENVIRONMENT", "development")
	cfg.Application.Port = getInt("APP_PORT", 8080)
	cfg.Application.Debug = getBool("APP_DEBUG", false)
	cfg.Application.Timeout = getDuration("APP_TIMEOUT", 30*time.Second)
	cfg.Application.BaseURL = getString("APP_BASE_URL", "http://localhost:8080")

	cfg.Postgres.DSN = getString("POSTGRES_DSN", "")
	cfg.Postgres.MaxOpenConns = getInt("POSTGRES_MAX_OPEN_CONNS", 25)
	cfg.Postgres.MaxIdleConns = getInt("POSTGRES_MAX_IDLE_CONNS", 5)

	cfg.Redis.Address = getString("REDIS_ADDRESS", "localhost:6379")
	cfg.Redis.Password = getString("REDIS_PASSWORD", "")
	cfg.Redis.DB = getInt("REDIS_DB", 0)

	cfg.Kafka.BootstrapServers = getString("KAFKA_BOOTSTRAP_SERVERS", "localhost:9092")
	cfg.Kafka.SASLUsername = getString("KAFKA_SASL_USERNAME", "")
	cfg.Kafka.SASLPassword = getString("KAFKA_SASL_PASSWORD", "")

	cfg.JWT.PrivateKey = getBase64("JWT_PRIVATE_KEY")
	cfg.JWT.PublicKey = getBase64("JWT_PUBLIC_KEY")

	cfg.CORS.AllowedOrigins = getStrings("CORS_ALLOWED_ORIGINS", "*")
	cfg.CORS.AllowedMethods = getStrings("CORS_ALLOWED_METHODS", "GET,POST,PUT,DELETE,OPTIONS")
	cfg.CORS.AllowedHeaders = getStrings("CORS_ALLOWED_HEADERS", "Authorization,Content-Type")
	cfg.CORS.ExposedHeaders = getStrings("CORS_EXPOSED_HEADERS", "X-Trace-ID")
	cfg.CORS.MaxAge = getInt("CORS_MAX_AGE", 3600)
	cfg.CORS.AllowCredentials = getBool("CORS_ALLOW_CREDENTIALS", true)

	cfg.GCP.ProjectID = getString("GCP_PROJECT_ID", "")
	cfg.GCP.Location = getString("GCP_LOCATION", "southamerica-east1")
	cfg.GCP.ServiceAccount = getBase64("GCP_SERVICE_ACCOUNT")

	cfg.Order.Expiration = getDuration("ORDER_EXPIRATION", 48*time.Hour)
	cfg.Order.FallbackHourlyRate = getString("ORDER_FALLBACK_HOURLY_RATE", "40")

	return cfg
}

func getString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getStrings(key, fallback string) []string {
	return strings.Split(getString(key, fallback), ",")
}

func getInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getBase64(key string) []byte {
	v, err := base64.StdEncoding.DecodeString(os.Getenv(key))
	if err != nil {
		return nil
	}
	return v
}
