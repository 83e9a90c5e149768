package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrNilConfig indicates a nil pointer was passed to Load.
var ErrNilConfig = errors.New("config: target must be a non-nil pointer")

var (
	mu    sync.Mutex
	cache = make(map[reflect.Type]any)

	// .env loading happens once per process, before the first parse.
	dotenvOnce sync.Once
)

// Load parses environment variables into cfg based on its struct tags.
// Each configuration type is loaded once per process; subsequent calls
// for the same type return the cached value.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	dotenvOnce.Do(func() {
		// Missing .env files are fine; real environments set vars directly.
		_ = godotenv.Load()
	})

	mu.Lock()
	defer mu.Unlock()

	t := reflect.TypeOf(*cfg)
	if cached, ok := cache[t]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", t, err)
	}

	cache[t] = *cfg
	return nil
}

// MustLoad is like Load but panics on failure. Useful during startup
// when a missing required variable should stop the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
