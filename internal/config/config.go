package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass     string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"10"`

	// ML Sidecar Config
	MLServiceURL string        `env:"ML_SERVICE_URL" envDefault:"http://localhost:8500"`
	MLTimeout    time.Duration `env:"ML_TIMEOUT" envDefault:"10s"`
	EmbeddingDim int           `env:"EMBEDDING_DIM" envDefault:"512"`

	// Entity Extraction Config
	EntityConfidenceThreshold float64 `env:"ENTITY_CONFIDENCE_THRESHOLD" envDefault:"0.3"`

	// Deduplication Config
	DuplicateSimilarityThreshold float64 `env:"DUPLICATE_SIMILARITY_THRESHOLD" envDefault:"0.95"`
	DuplicateGeoRadiusDegrees    float64 `env:"DUPLICATE_GEO_RADIUS_DEGREES" envDefault:"0.015"`

	// Clustering Config
	ClusterEpsDegrees float64       `env:"CLUSTER_EPS_DEGREES" envDefault:"0.005"`
	ClusterMinPoints  int           `env:"CLUSTER_MIN_POINTS" envDefault:"3"`
	ClusterInterval   time.Duration `env:"CLUSTER_INTERVAL" envDefault:"5m"`

	// Urgency Config
	UrgencyEscalationKeywords []string `env:"URGENCY_ESCALATION_KEYWORDS"`
	UrgencyPersonCountMin     int      `env:"URGENCY_PERSON_COUNT_MIN" envDefault:"5"`

	// Priority Config
	PriorityWeightCount   float64 `env:"PRIORITY_WEIGHT_COUNT" envDefault:"0.4"`
	PriorityWeightUrgency float64 `env:"PRIORITY_WEIGHT_URGENCY" envDefault:"0.4"`
	PriorityWeightRecency float64 `env:"PRIORITY_WEIGHT_RECENCY" envDefault:"0.2"`

	// Dashboard Config
	DashboardCacheTTL    time.Duration `env:"DASHBOARD_CACHE_TTL" envDefault:"30s"`
	DashboardWindowHours int           `env:"DASHBOARD_WINDOW_HOURS" envDefault:"24"`
	TimelineDays         int           `env:"TIMELINE_DAYS" envDefault:"7"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// defaultEscalationKeywords - список слов, поднимающих срочность на одну ступень.
// Политика развертывания, переопределяется через URGENCY_ESCALATION_KEYWORDS.
var defaultEscalationKeywords = []string{
	"trapped", "drowning", "collapsed", "unconscious",
	"severe", "critical", "immediately", "rescue",
	"bleeding", "dying", "injured",
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:                  os.Getenv("DATABASE_URL"),
		HTTPPort:                     getEnv("HTTP_PORT", "8080"),
		LogLevel:                     getEnv("LOG_LEVEL", "info"),
		RedisAddr:                    getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:                    os.Getenv("REDIS_PASSWORD"),
		RedisDB:                      getEnvAsInt("REDIS_DB", 0),
		RedisPoolSize:                getEnvAsInt("REDIS_POOL_SIZE", 10),
		MLServiceURL:                 getEnv("ML_SERVICE_URL", "http://localhost:8500"),
		MLTimeout:                    getEnvAsDuration("ML_TIMEOUT", 10*time.Second),
		EmbeddingDim:                 getEnvAsInt("EMBEDDING_DIM", 512),
		EntityConfidenceThreshold:    getEnvAsFloat("ENTITY_CONFIDENCE_THRESHOLD", 0.3),
		DuplicateSimilarityThreshold: getEnvAsFloat("DUPLICATE_SIMILARITY_THRESHOLD", 0.95),
		DuplicateGeoRadiusDegrees:    getEnvAsFloat("DUPLICATE_GEO_RADIUS_DEGREES", 0.015),
		ClusterEpsDegrees:            getEnvAsFloat("CLUSTER_EPS_DEGREES", 0.005),
		ClusterMinPoints:             getEnvAsInt("CLUSTER_MIN_POINTS", 3),
		ClusterInterval:              getEnvAsDuration("CLUSTER_INTERVAL", 5*time.Minute),
		UrgencyPersonCountMin:        getEnvAsInt("URGENCY_PERSON_COUNT_MIN", 5),
		PriorityWeightCount:          getEnvAsFloat("PRIORITY_WEIGHT_COUNT", 0.4),
		PriorityWeightUrgency:        getEnvAsFloat("PRIORITY_WEIGHT_URGENCY", 0.4),
		PriorityWeightRecency:        getEnvAsFloat("PRIORITY_WEIGHT_RECENCY", 0.2),
		DashboardCacheTTL:            getEnvAsDuration("DASHBOARD_CACHE_TTL", 30*time.Second),
		DashboardWindowHours:         getEnvAsInt("DASHBOARD_WINDOW_HOURS", 24),
		TimelineDays:                 getEnvAsInt("TIMELINE_DAYS", 7),
		WebhookURL:                   os.Getenv("WEBHOOK_URL"),
		WebhookSecret:                os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:               getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:            getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:             getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
	}

	// Загрузка ключевых слов эскалации
	cfg.UrgencyEscalationKeywords = getEnvAsList("URGENCY_ESCALATION_KEYWORDS", defaultEscalationKeywords)

	// Загрузка API ключей
	cfg.APIKeys = getEnvAsList("API_KEYS", nil)

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
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

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
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

// getEnvAsList возвращает значение переменной окружения как список строк, разделённых запятыми
func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultValue
	}
	items := strings.Split(value, ",")
	for i, item := range items {
		items[i] = strings.TrimSpace(item)
	}
	return items
}
