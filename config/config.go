package config

import (
	"errors"
	"fmt"

	"github.com/joeshaw/envdecode"
	"github.com/minaorangina/gofish/engine"
	"github.com/minaorangina/gofish/game"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is read from GOFISH_* environment variables
type Config struct {
	Port                int   `env:"GOFISH_PORT,default=8000"`
	Seed                int64 `env:"GOFISH_SEED,default=0"`
	MaxTicks            int   `env:"GOFISH_MAX_TICKS,default=10000"`
	MinPlayers          int   `env:"GOFISH_MIN_PLAYERS,default=2"`
	MaxPlayers          int   `env:"GOFISH_MAX_PLAYERS,default=10"`
	GrantExtraTurnOnHit bool  `env:"GOFISH_EXTRA_TURN_ON_HIT,default=false"`
	ConsiderOnlyAskable bool  `env:"GOFISH_CONSIDER_ONLY_ASKABLE,default=false"`
}

// Load decodes the environment into a Config and validates it
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("could not read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalidConfig, c.Port)
	}
	if c.MaxTicks <= 0 {
		return fmt.Errorf("%w: max ticks must be positive, got %d", ErrInvalidConfig, c.MaxTicks)
	}
	if c.MinPlayers < 1 || c.MaxPlayers < c.MinPlayers {
		return fmt.Errorf("%w: player bounds %d-%d", ErrInvalidConfig, c.MinPlayers, c.MaxPlayers)
	}
	return nil
}

// Rules returns the game rules the config describes
func (c Config) Rules() game.Rules {
	return game.Rules{
		MinPlayers:          c.MinPlayers,
		MaxPlayers:          c.MaxPlayers,
		GrantExtraTurnOnHit: c.GrantExtraTurnOnHit,
	}
}

// MatchOpts returns match options for the config. Logger and listeners are left to the caller.
func (c Config) MatchOpts() engine.MatchOpts {
	return engine.MatchOpts{
		Seed:                c.Seed,
		Rules:               c.Rules(),
		ConsiderOnlyAskable: c.ConsiderOnlyAskable,
	}
}
