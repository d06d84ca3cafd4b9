package contracts

import (
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config fixes the engine's checking mode. The flag is immutable once an
// Engine is built; there is no way to toggle it afterwards.
type Config struct {
	// Enable turns contract checking on. When false every contract is the
	// identity function: no predicate runs and no trace is emitted.
	Enable bool `env:"CONTRACTS_ENABLE" envDefault:"false"`
}

var (
	defaultEngine *Engine
	defaultOnce   sync.Once

	defaultEnvLoaded sync.Once
)

// loadConfig reads the environment once into a Config. A malformed
// environment degrades to the zero config (checking disabled) rather than
// failing: the library must stay usable without any configuration.
func loadConfig() Config {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}
	}
	return cfg
}

// DefaultEngine returns the process-wide engine, initialized exactly once
// from the environment. Embedders and tests that need a specific checking
// mode should build their own engine with New instead.
func DefaultEngine() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = New(loadConfig())
	})
	return defaultEngine
}
