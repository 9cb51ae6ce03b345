package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	MetricsAddr string
	MongoURI    string
	MongoDB     string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	TokenSecret string
	TokenTTL    time.Duration
	CacheTTL    time.Duration
	RateRPS     int
	SeedFile    string
	SeedWorkers int
}

func Load() Config {
	// optional .env for local development
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:      env("APP_ENV", "prod"),
		HTTPAddr:    env("HTTP_ADDR", ":5000"),
		MetricsAddr: env("METRICS_ADDR", ":9100"),
		MongoURI:    env("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     env("MONGO_DB", "HotelRoomsDB"),
		RedisAddr:   env("REDIS_ADDR", "localhost:6379"),
		RedisPass:   env("REDIS_PASSWORD", ""),
		RedisDB:     atoi("REDIS_DB", 0),
		TokenSecret: env("ACCESS_TOKEN_SECRET", ""),
		TokenTTL:    time.Duration(atoi("TOKEN_TTL_SECONDS", 3600)) * time.Second,
		CacheTTL:    time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
		RateRPS:     atoi("RATE_LIMIT_RPS", 20),
		SeedFile:    env("SEED_FILE", "seed/fixtures.json"),
		SeedWorkers: atoi("SEED_WORKERS", 8),
	}
	if c.TokenSecret == "" {
		log.Warn().Msg("ACCESS_TOKEN_SECRET is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
