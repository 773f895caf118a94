package config

import (
	"time"

	"github.com/joeshaw/envdecode"
)

// Config holds the runtime settings of the host process, decoded from the
// environment. Table capacities are compile-time constants in the netstate
// package and deliberately not configurable here.
type Config struct {
	LeaderboardPath  string        `env:"LEADERBOARD_PATH,default=leaderboard.dat"`
	LogPath          string        `env:"LOG_PATH,default=host.log"`
	AutosaveInterval time.Duration `env:"AUTOSAVE_INTERVAL,default=30s"`
	TopN             int           `env:"LEADERBOARD_TOP_N,default=5"`
}

// Load decodes a Config from the environment.
func Load() (Config, error) {
	var c Config
	if err := envdecode.Decode(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
