package infra

import (
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// InitRedis returns a client for REDIS_URL, or nil when none is configured.
// Callers fall back to in-process caching in that case.
func InitRedis() *redis.Client {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("Error parsing REDIS_URL, falling back to in-memory cache: %v", err)
		return nil
	}

	return redis.NewClient(opts)
}
