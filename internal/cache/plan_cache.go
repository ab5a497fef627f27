// Package cache shortcuts recomputation of deterministic plans. Only
// AI-disabled requests are cached; enriched responses depend on a remote
// model and are never stored.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"
	"time"

	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
)

type PlanCache interface {
	Get(ctx context.Context, req *request_models.TripRequest) (*response_models.TripPlan, bool)
	Set(ctx context.Context, req *request_models.TripRequest, plan *response_models.TripPlan) error
	Close() error
}

// generateKey hashes the deterministic request fields. AI settings are
// deliberately excluded: cached entries only ever serve AI-disabled requests.
func generateKey(req *request_models.TripRequest) string {
	keyData := struct {
		Source           string
		Destination      string
		DepartDate       string
		ReturnDate       string
		Days             int
		Travelers        int
		BudgetLevel      string
		Preferences      []string
		FlexibilityHours int
	}{
		Source:           req.Source,
		Destination:      req.Destination,
		DepartDate:       req.DepartDate,
		ReturnDate:       req.ReturnDate,
		Days:             req.Days,
		Travelers:        req.Travelers,
		BudgetLevel:      req.BudgetLevel,
		Preferences:      req.Preferences,
		FlexibilityHours: req.FlexibilityHours,
	}

	data, _ := json.Marshal(keyData)
	hash := sha256.Sum256(data)
	return "plan:" + hex.EncodeToString(hash[:])
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, req *request_models.TripRequest) (*response_models.TripPlan, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, req *request_models.TripRequest, plan *response_models.TripPlan) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

// MemoryCache is a single-process TTL cache; entries are evicted lazily on
// read.
type memoryEntry struct {
	plan      *response_models.TripPlan
	expiresAt time.Time
}

type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]memoryEntry
	ttl  time.Duration
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		data: make(map[string]memoryEntry),
		ttl:  ttl,
	}
}

func (c *MemoryCache) Get(ctx context.Context, req *request_models.TripRequest) (*response_models.TripPlan, bool) {
	key := generateKey(req)
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.data[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		delete(c.data, key) // cleanup expired
		return nil, false
	}
	return e.plan, true
}

func (c *MemoryCache) Set(ctx context.Context, req *request_models.TripRequest, plan *response_models.TripPlan) error {
	key := generateKey(req)
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = memoryEntry{plan: plan, expiresAt: time.Now().Add(c.ttl)}
	return nil
}

func (c *MemoryCache) Close() error {
	return nil
}
