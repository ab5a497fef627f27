package cache_fx

import (
	"log"
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"

	"tripwise/internal/cache"
)

var Module = fx.Provide(ProvidePlanCache)

// ProvidePlanCache selects the cache backend from CACHE_BACKEND
// (memory|redis|off). A broken redis falls back to the in-memory cache
// rather than failing startup.
func ProvidePlanCache() cache.PlanCache {
	backend := os.Getenv("CACHE_BACKEND")
	if backend == "" {
		backend = "memory"
	}

	ttl := 5 * time.Minute
	if v := os.Getenv("CACHE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = time.Duration(n) * time.Second
		}
	}

	switch backend {
	case "redis":
		cfg := cache.DefaultRedisConfig()
		if host := os.Getenv("REDIS_HOST"); host != "" {
			cfg.Host = host
		}
		if port := os.Getenv("REDIS_PORT"); port != "" {
			cfg.Port = port
		}
		cfg.Password = os.Getenv("REDIS_PASSWORD")
		cfg.TTL = ttl

		redisCache, err := cache.NewRedisCache(cfg)
		if err != nil {
			log.Printf("Redis cache unavailable (%v), falling back to in-memory cache", err)
			return cache.NewMemoryCache(ttl)
		}
		log.Printf("Redis plan cache enabled (host: %s:%s, TTL: %v)", cfg.Host, cfg.Port, cfg.TTL)
		return redisCache
	case "off":
		log.Println("Plan cache disabled")
		return cache.NewNoOpCache()
	default:
		return cache.NewMemoryCache(ttl)
	}
}
