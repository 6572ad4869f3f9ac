package riskmodel

import (
	"sync"
)

const (
	KeyCrimeWeight       = "crime_weight"
	KeyLightingWeight    = "lighting_weight"
	KeyCrowdWeight       = "crowd_weight"
	KeyNonlinearExponent = "nonlinear_exponent"
)

// Config holds the named risk weights. It is mutable process-wide state with
// a monotonically increasing version counter bumped on every update; the
// version is the cache-invalidation key for anything derived from it.
// Weights are not required to sum to 1.
type Config struct {
	mu      sync.RWMutex
	weights map[string]float64
	version uint64
}

func NewConfig() *Config {
	return &Config{
		weights: map[string]float64{
			KeyCrimeWeight:       0.6,
			KeyLightingWeight:    0.15,
			KeyCrowdWeight:       0.15,
			KeyNonlinearExponent: 1.3,
		},
	}
}

// Update merges kv into the config, last write wins per key. Unknown keys are
// accepted and stored. Returns the new config version.
func (c *Config) Update(kv map[string]float64) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, v := range kv {
		c.weights[k] = v
	}
	c.version++
	return c.version
}

func (c *Config) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

func (c *Config) Get(key string) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.weights[key]
	return v, ok
}

// scoring parameters captured under one lock so a score never mixes weights
// from two different versions.
type parameters struct {
	crimeWeight    float64
	lightingWeight float64
	crowdWeight    float64
	exponent       float64
}

func (c *Config) snapshot() (parameters, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return parameters{
		crimeWeight:    c.weights[KeyCrimeWeight],
		lightingWeight: c.weights[KeyLightingWeight],
		crowdWeight:    c.weights[KeyCrowdWeight],
		exponent:       c.weights[KeyNonlinearExponent],
	}, c.version
}
