package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Redis     bool      `json:"redis"`
	Backend   string    `json:"backend"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// SetBackendMode records which calendar backend was selected at startup
// ("google" or "in-memory").
func SetBackendMode(mode string) {
	mu.Lock()
	defer mu.Unlock()
	currentHealth.Backend = mode
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
// A nil redisClient means the server runs with the in-memory context store.
func StartHealthMonitor(redisClient *redis.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		for range ticker.C {
			redisHealthy := false
			if redisClient != nil {
				redisHealthy = redisClient.Ping(ctx).Err() == nil
			}

			mu.Lock()
			currentHealth.Redis = redisHealthy
			currentHealth.CheckedAt = time.Now()
			mu.Unlock()
		}
	}()
}
