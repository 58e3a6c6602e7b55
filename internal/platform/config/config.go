package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr     string
	LogLevel string
	Redis    RedisConfig
	Cache    CacheConfig
	Batch    BatchConfig
}

// RedisConfig configures the optional shared result cache. An empty URL
// selects the in-process cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// CacheConfig bounds how long parsed IBAN details are reused.
type CacheConfig struct {
	TTL time.Duration
}

// BatchConfig limits batch validation requests.
type BatchConfig struct {
	MaxItems    int
	Concurrency int
}

// FromEnv builds a Server config from environment variables so main stays lean.
// A .env file in the working directory is loaded first when present; variables
// already set in the environment win.
func FromEnv() Server {
	_ = godotenv.Load()

	return Server{
		Addr:     envString("IBAN_GATEWAY_ADDR", ":8080"),
		LogLevel: envString("LOG_LEVEL", "info"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 500*time.Millisecond),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 500*time.Millisecond),
		},
		Cache: CacheConfig{
			TTL: envDuration("CACHE_TTL", 10*time.Minute),
		},
		Batch: BatchConfig{
			MaxItems:    envInt("BATCH_MAX_ITEMS", 500),
			Concurrency: envInt("BATCH_CONCURRENCY", 8),
		},
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
