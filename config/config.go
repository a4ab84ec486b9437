package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const devJWTSecret = "carehub-development-secret"

type Config struct {
	Port        string
	Env         string
	DBPath      string
	CORSOrigins string

	JWTSecret   string
	JWTIssuer   string
	JWTTTL      time.Duration
	AuthzStrict bool

	GoogleClientID string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	WeatherAPIURL     string
	WeatherDefaultLat float64
	WeatherDefaultLon float64
	WeatherCacheTTL   time.Duration
	TriviaAPIURL      string
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = FromEnv()

	if AppConfig.JWTSecret == "" {
		if AppConfig.Env == "production" {
			log.Fatal("JWT_SECRET is required")
		}
		AppConfig.JWTSecret = devJWTSecret
	}
}

// FromEnv builds a Config from the current environment without side effects.
func FromEnv() *Config {
	return &Config{
		Port:        GetEnv("PORT", "3000"),
		Env:         GetEnv("ENV", "development"),
		DBPath:      GetEnv("DB_PATH", "./data/carehub.db"),
		CORSOrigins: GetEnv("CORS_ORIGINS", "*"),

		JWTSecret:   GetEnv("JWT_SECRET", ""),
		JWTIssuer:   GetEnv("JWT_ISSUER", "carehub"),
		JWTTTL:      GetEnvDuration("JWT_TTL", 24*time.Hour),
		AuthzStrict: GetEnvBool("AUTHZ_STRICT", true),

		GoogleClientID: GetEnv("GOOGLE_CLIENT_ID", ""),

		RedisAddr:     GetEnv("REDIS_ADDR", ""),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		RedisDB:       GetEnvInt("REDIS_DB", 0),

		WeatherAPIURL:     GetEnv("WEATHER_API_URL", "https://api.open-meteo.com/v1/forecast"),
		WeatherDefaultLat: GetEnvFloat("WEATHER_DEFAULT_LAT", 1.3521),
		WeatherDefaultLon: GetEnvFloat("WEATHER_DEFAULT_LON", 103.8198),
		WeatherCacheTTL:   GetEnvDuration("WEATHER_CACHE_TTL", 10*time.Minute),
		TriviaAPIURL:      GetEnv("TRIVIA_API_URL", "https://opentdb.com/api.php"),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("[CONFIG] %s=%q is not an integer, using %d", key, value, defaultValue)
	}
	return defaultValue
}

func GetEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("[CONFIG] %s=%q is not a number, using %v", key, value, defaultValue)
	}
	return defaultValue
}

func GetEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
		log.Printf("[CONFIG] %s=%q is not a boolean, using %v", key, value, defaultValue)
	}
	return defaultValue
}

func GetEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("[CONFIG] %s=%q is not a duration, using %v", key, value, defaultValue)
	}
	return defaultValue
}
