package memcache

import (
	"sync"
	"time"

	"travelsynth/internal/models/response_models"
)

// PlanListCache holds the dashboard listing per user so repeated dashboard
// loads do not hit the database. Creating or deleting a plan must invalidate
// the owner's entry so the next read reflects the change.
type PlanListCache interface {
	Get(userID string) ([]response_models.PlanSummary, bool)
	Set(userID string, plans []response_models.PlanSummary, ttl time.Duration)
	Invalidate(userID string)
}

type entry struct {
	plans     []response_models.PlanSummary
	expiresAt time.Time
}

type planListCache struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewPlanListCache() PlanListCache {
	return &planListCache{
		data: make(map[string]entry),
	}
}

func (c *planListCache) Get(userID string) ([]response_models.PlanSummary, bool) {
	c.mu.RLock()
	e, ok := c.data[userID]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.Invalidate(userID)
		return nil, false
	}
	return e.plans, true
}

func (c *planListCache) Set(userID string, plans []response_models.PlanSummary, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[userID] = entry{
		plans:     plans,
		expiresAt: time.Now().Add(ttl),
	}
}

func (c *planListCache) Invalidate(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, userID)
}
