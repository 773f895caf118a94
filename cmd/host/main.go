package main

import (
	"errors"
	"flag"
	"io/fs"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	netstate "github.com/ZhuJing-digipen/assignment-04-comp-nets"
	"github.com/ZhuJing-digipen/assignment-04-comp-nets/config"
	"github.com/ZhuJing-digipen/assignment-04-comp-nets/logger"
)

// The host owns the two authoritative stores for the lifetime of the
// process. The network dispatch and simulation layers are handed the store
// handles at startup; this binary wires lifecycle only (load on start,
// periodic autosave, save on shutdown).
func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("could not load config: %v", err)
	}

	flag.StringVar(&cfg.LeaderboardPath, "leaderboard", cfg.LeaderboardPath, "leaderboard snapshot file")
	flag.DurationVar(&cfg.AutosaveInterval, "autosave", cfg.AutosaveInterval, "leaderboard autosave interval")
	flag.Parse()

	log := logger.New(cfg.LogPath)
	defer log.Sync()

	state := netstate.NewGameState(log)
	board := netstate.NewLeaderboard(log)

	if err := board.Load(cfg.LeaderboardPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warnf("no leaderboard snapshot at %s; starting empty", cfg.LeaderboardPath)
		} else {
			log.Fatalf("leaderboard load: %v", err)
		}
	}

	ticker := time.NewTicker(cfg.AutosaveInterval)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			if err := board.Save(cfg.LeaderboardPath); err != nil {
				log.Errorf("leaderboard autosave: %v", err)
				continue
			}
			log.Infof("autosave complete: %d leaderboard entries, %d objects, %d players tracked",
				board.Len(), state.ObjectCount(), state.PlayerCount())
		}
	}()

	log.Infof("host up; leaderboard snapshot at %s", cfg.LeaderboardPath)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	if err := board.Save(cfg.LeaderboardPath); err != nil {
		log.Errorf("final leaderboard save: %v", err)
	}
	for _, line := range board.TopPlayers(cfg.TopN) {
		log.Info(line)
	}
}
