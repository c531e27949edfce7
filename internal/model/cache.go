package model

import "sync"

// Loader resolves a registry artifact path to a usable model instance.
type Loader interface {
	Get(path string) (Model, error)
}

// Cache shares loaded model instances across requests, keyed by artifact
// path. Loaded models are treated as immutable during inference, so a single
// instance can serve concurrent requests.
type Cache struct {
	mu     sync.RWMutex
	models map[string]Model
	load   func(path string) (Model, error)
}

func NewCache() *Cache {
	return &Cache{models: make(map[string]Model), load: Load}
}

func (c *Cache) Get(path string) (Model, error) {
	c.mu.RLock()
	m, ok := c.models[path]
	c.mu.RUnlock()
	if ok {
		return m, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.models[path]; ok {
		return m, nil
	}
	m, err := c.load(path)
	if err != nil {
		return nil, err
	}
	c.models[path] = m
	return m, nil
}
