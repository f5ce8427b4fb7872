package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/refined/pkg/logger"
)

// configCache stores parsed configuration values keyed by type and prefix.
type configCache struct {
	mu     sync.RWMutex
	values map[string]any
	onces  map[string]*sync.Once
}

var (
	globalCache = newConfigCache()

	defaultEnvLoaded sync.Once
)

func newConfigCache() *configCache {
	return &configCache{
		values: make(map[string]any),
		onces:  make(map[string]*sync.Once),
	}
}

func (c *configCache) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[key]
	return v, ok
}

func (c *configCache) once(key string) *sync.Once {
	c.mu.Lock()
	defer c.mu.Unlock()
	once, ok := c.onces[key]
	if !ok {
		once = new(sync.Once)
		c.onces[key] = once
	}
	return once
}

func (c *configCache) store(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[key] = v
}

// forget drops a failed load so that the next call parses again.
func (c *configCache) forget(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.onces, key)
}

// Load parses environment variables into v. Each configuration type is
// parsed once per prefix and served from cache afterwards.
//
// Fields of type refined.Refined, refined.Vector and refined.Bytes are
// checked against their constraint while the variable is decoded. When a
// value is rejected the returned error matches ErrParsingConfig and
// ErrInvalidValue, and refined.ExtractViolations reports every rejected
// field by its Go name.
//
//	type ServerConfig struct {
//		Port    refined.Refined[int, refined.Between[int, constant.Zero[int], MaxPort]] `env:"PORT" envDefault:"8080"`
//		Workers refined.Refined[int, refined.Positive[int]]                             `env:"WORKERS,required"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg, config.WithPrefix("API_")); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// The default .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	o := newOptions(opts)
	if len(o.envFiles) > 0 {
		if err := godotenv.Load(o.envFiles...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}

	key := o.prefix + getTypeName[T]()
	log := o.logger.With(logger.Component("config"), "type", key)

	if cached, ok := globalCache.get(key); ok {
		*v = cached.(T)
		return nil
	}

	var failure *rejection
	globalCache.once(key).Do(func() {
		var parsed T
		if err := env.ParseWithOptions(&parsed, env.Options{Prefix: o.prefix}); err != nil {
			failure = newRejection(err)
			return
		}
		globalCache.store(key, parsed)
	})

	if failure != nil {
		globalCache.forget(key)
		log.Error("config rejected", failure.logAttrs()...)
		return failure.err()
	}

	cached, ok := globalCache.get(key)
	if !ok {
		// Another goroutine ran the parse and it failed.
		return ErrConfigNotLoaded
	}
	*v = cached.(T)
	log.Debug("config loaded")
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// ResetCache forgets every loaded configuration. It is meant for tests that
// change the environment between loads.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()
	globalCache.values = make(map[string]any)
	globalCache.onces = make(map[string]*sync.Once)
}

// getTypeName returns a string identifier for the generic type T
func getTypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
