// README: Config loader with env defaults for HTTP, Redis cache, and Gemini settings.
package config

import (
	"os"
	"strconv"
	"time"
)

type AIConfig struct {
	GeminiKey   string
	PlanModel   string
	ArtModel    string
	PlanTimeout time.Duration
	ArtTimeout  time.Duration
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Redis struct {
		// Empty Addr disables the plan cache entirely.
		Addr string
	}
	AI  AIConfig
	Map struct {
		MaxNodes int
	}
	Cache struct {
		PlanTTL time.Duration
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("WG_HTTP_ADDR", ":8080")
	cfg.Redis.Addr = os.Getenv("WG_REDIS_ADDR")
	cfg.AI.GeminiKey = envOrError("GEMINI_API_KEY")
	cfg.AI.PlanModel = envOrDefault("WG_PLAN_MODEL", "gemini-3-pro-preview")
	cfg.AI.ArtModel = envOrDefault("WG_ART_MODEL", "gemini-2.5-flash-image")
	cfg.AI.PlanTimeout = time.Duration(envOrDefaultInt("WG_PLAN_TIMEOUT_SECONDS", 90)) * time.Second
	cfg.AI.ArtTimeout = time.Duration(envOrDefaultInt("WG_ART_TIMEOUT_SECONDS", 30)) * time.Second
	cfg.Map.MaxNodes = envOrDefaultInt("WG_MAP_MAX_NODES", 6)
	cfg.Cache.PlanTTL = time.Duration(envOrDefaultInt("WG_PLAN_CACHE_TTL_HOURS", 24)) * time.Hour
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
