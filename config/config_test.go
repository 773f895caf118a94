package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults apply when the environment is empty", func(t *testing.T) {
		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, "leaderboard.dat", cfg.LeaderboardPath)
		assert.Equal(t, "host.log", cfg.LogPath)
		assert.Equal(t, 30*time.Second, cfg.AutosaveInterval)
		assert.Equal(t, 5, cfg.TopN)
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		t.Setenv("LEADERBOARD_PATH", "/var/lib/game/scores.dat")
		t.Setenv("AUTOSAVE_INTERVAL", "2m")
		t.Setenv("LEADERBOARD_TOP_N", "10")

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, "/var/lib/game/scores.dat", cfg.LeaderboardPath)
		assert.Equal(t, 2*time.Minute, cfg.AutosaveInterval)
		assert.Equal(t, 10, cfg.TopN)
	})
}
