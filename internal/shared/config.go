package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv           string
	HTTPAddr         string
	UseMockHotels    bool
	SearchAPIBase    string
	SearchAPIKey     string
	SearchAPIRPS     int
	NominatimBase    string
	GeocodeCacheSize int
	RedisAddr        string
	RedisDB          int
	RedisPass        string
	CacheTTL         time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:   env("APP_ENV", "prod"),
		HTTPAddr: env("HTTP_ADDR", ":8080"),
		// mock stays on unless explicitly switched off
		UseMockHotels:    os.Getenv("USE_MOCK_HOTELS") != "0",
		SearchAPIBase:    env("SEARCHAPI_BASE_URL", "https://www.searchapi.io/api/v1/search"),
		SearchAPIKey:     env("SEARCHAPI_KEY", ""),
		SearchAPIRPS:     atoi("SEARCHAPI_RPS", 5),
		NominatimBase:    env("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org/search"),
		GeocodeCacheSize: atoi("GEOCODE_CACHE_SIZE", 256),
		RedisAddr:        env("REDIS_ADDR", "localhost:6379"),
		RedisPass:        env("REDIS_PASSWORD", ""),
		RedisDB:          atoi("REDIS_DB", 0),
		CacheTTL:         time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
	}
	if !c.UseMockHotels && c.SearchAPIKey == "" {
		log.Warn().Msg("USE_MOCK_HOTELS=0 but SEARCHAPI_KEY is empty; falling back to mock data")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
