package memory

import (
	"time"

	"event-ticketing-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

const settingsKey = "event_settings"

type SettingsCache struct {
	cache *cache.Cache
}

func NewSettingsCache() *SettingsCache {
	// Settings change rarely; a short TTL keeps stale reads bounded after
	// out-of-band updates while purging expired items every minute.
	c := cache.New(5*time.Minute, 1*time.Minute)
	return &SettingsCache{
		cache: c,
	}
}

func (r *SettingsCache) Save(settings *entity.EventSettings) {
	r.cache.Set(settingsKey, settings, cache.DefaultExpiration)
}

func (r *SettingsCache) Get() (*entity.EventSettings, bool) {
	if x, found := r.cache.Get(settingsKey); found {
		return x.(*entity.EventSettings), true
	}
	return nil, false
}

func (r *SettingsCache) Invalidate() {
	r.cache.Delete(settingsKey)
}
