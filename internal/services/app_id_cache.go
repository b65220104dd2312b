package services

import (
	"sync"

	"github.com/renato0307/revue/internal/domain"
)

// AppIDCache memoizes the app resolved for one project slug.
// Only the last resolved slug is kept; last writer wins.
type AppIDCache struct {
	mu   sync.RWMutex
	app  *domain.ExpoApp
	slug string
}

// NewAppIDCache creates an empty cache
func NewAppIDCache() *AppIDCache {
	return &AppIDCache{}
}

// Get returns the cached app when slug matches exactly
func (c *AppIDCache) Get(slug string) (domain.ExpoApp, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.app == nil || c.slug != slug {
		return domain.ExpoApp{}, false
	}
	return *c.app, true
}

// Set replaces the cached entry
func (c *AppIDCache) Set(slug string, app domain.ExpoApp) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.app = &app
	c.slug = slug
}

// Invalidate drops the cached entry
func (c *AppIDCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.app = nil
	c.slug = ""
}
