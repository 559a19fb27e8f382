package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry holds the parsed value of one config type.
type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	cacheMu sync.Mutex
	cache   = map[reflect.Type]*entry{}

	dotenvOnce sync.Once
)

// Load parses the environment into v. Each config type is parsed once per
// process; later calls copy the cached value into v. The ./.env file, when
// present, is loaded before the first parse. Parse failures are not cached.
//
//	type EndpointConfig struct {
//		URL     string        `env:"REGWIZARD_ENDPOINT_URL"`
//		Timeout time.Duration `env:"REGWIZARD_SUBMIT_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg EndpointConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() {
		// a missing .env is fine
		_ = godotenv.Load()
	})

	key := reflect.TypeFor[T]()

	cacheMu.Lock()
	e, ok := cache[key]
	if !ok {
		e = &entry{}
		cache[key] = e
	}
	cacheMu.Unlock()

	e.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = parsed
	})

	if e.err != nil {
		cacheMu.Lock()
		if cache[key] == e {
			delete(cache, key)
		}
		cacheMu.Unlock()
		return e.err
	}

	*v = e.value.(T)
	return nil
}

// MustLoad is Load for configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: load %T: %v", v, err))
	}
}

// LoadEnv loads variables from the given .env files into the process
// environment. With no paths it loads ./.env. Later files do not override
// variables set by earlier ones or by the real environment.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	return nil
}

func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(err)
	}
}

// ResetCache drops every cached configuration. Intended for tests.
func ResetCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	clear(cache)
}

// ForceReload re-parses the environment into v and replaces the cached copy.
func ForceReload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	cacheMu.Lock()
	delete(cache, reflect.TypeFor[T]())
	cacheMu.Unlock()
	return Load(v)
}
