package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// cache holds one entry per configuration type. The entry's sync.Once makes
// concurrent first loads parse the environment exactly once, and every caller
// waiting on it sees the same value or error.
type cache struct {
	mu      sync.Mutex
	entries map[reflect.Type]*entry
}

type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	globalCache = newCache()

	defaultEnvLoaded sync.Once
)

func newCache() *cache {
	return &cache{entries: make(map[reflect.Type]*entry)}
}

func (c *cache) lookup(key reflect.Type) *entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		e = new(entry)
		c.entries[key] = e
	}
	return e
}

// forget drops the entry for key. With a non-nil only, the entry is dropped
// only if it is still the current one.
func (c *cache) forget(key reflect.Type, only *entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if only == nil || c.entries[key] == only {
		delete(c.entries, key)
	}
}

// LoadEnv reads the given .env files into the process environment, or ./.env
// when no path is given. Later files take precedence over earlier ones;
// variables already set in the environment are overridden.
func LoadEnv(paths ...string) error {
	// Mark the implicit default load as done so Load does not re-read ./.env
	// over the values set here.
	defaultEnvLoaded.Do(func() {})

	if len(paths) == 0 {
		if err := godotenv.Overload(); err != nil {
			return fmt.Errorf("load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Overload(paths...); err != nil {
		return fmt.Errorf("load %v: %w", paths, err)
	}
	return nil
}

// MustLoadEnv is like LoadEnv but panics on error.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}

// Load parses environment variables into v according to its `env` tags.
// The first successful Load for a type is cached; later calls copy the cached
// value into v without touching the environment.
//
// Example:
//
//	var policy geo.Policy
//	if err := config.Load(&policy); err != nil {
//		return err
//	}
//	coord, err := geo.NewCoordinate(lat, lon, policy.CoordinateOptions()...)
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// A missing ./.env is not an error.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	key := typeKey[T]()
	e := globalCache.lookup(key)
	e.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = parsed
	})
	if e.err != nil {
		// Let the next call retry, e.g. after the missing variable was set.
		globalCache.forget(key, e)
		return e.err
	}

	*v = e.value.(T)
	return nil
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig drops the cached value for T and parses the environment again.
func ForceReloadConfig[T any](v *T) error {
	globalCache.forget(typeKey[T](), nil)
	return Load(v)
}

// ResetCache forgets every cached configuration. Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	globalCache.entries = make(map[reflect.Type]*entry)
	globalCache.mu.Unlock()
}

func typeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
