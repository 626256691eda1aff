package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/misterclayt0n/repsheet/internal/config"
	"github.com/misterclayt0n/repsheet/internal/logging"
	"github.com/misterclayt0n/repsheet/internal/models"
	"github.com/misterclayt0n/repsheet/internal/session"
	"github.com/misterclayt0n/repsheet/internal/storage"
	"github.com/misterclayt0n/repsheet/internal/utils"
	"go.uber.org/zap"
)

// app bundles what every command needs: config, logger, the routine
// repository and the session file.
type app struct {
	cfg      *config.Config
	log      *zap.Logger
	st       *storage.Storage
	repo     *storage.Repository
	sessions *session.Store
	loc      *time.Location
}

func openApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("Failed to load config: %w", err)
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	log, err := logging.New(level)
	if err != nil {
		return nil, err
	}

	st, err := storage.NewStorage(cfg.Storage, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("Failed to open storage: %w", err)
	}

	dir, err := config.GetConfigDir()
	if err != nil {
		st.Close()
		log.Sync()
		return nil, err
	}

	return &app{
		cfg:      cfg,
		log:      log,
		st:       st,
		repo:     storage.NewRepository(st, log),
		sessions: session.NewStore(dir),
		loc:      utils.LoadLocation(cfg.Display.Timezone),
	}, nil
}

func (a *app) Close() {
	if err := a.st.Close(); err != nil {
		a.log.Warn("closing storage", zap.Error(err))
	}
	a.log.Sync()
}

// loadSession returns the active tracker or an error when none is running.
func (a *app) loadSession() (*session.Tracker, error) {
	if !a.sessions.Exists() {
		return nil, fmt.Errorf("No active session")
	}
	tr, err := a.sessions.Load()
	if err != nil {
		return nil, fmt.Errorf("Failed to load session: %w", err)
	}
	return tr, nil
}

// exerciseAt resolves a 1-based exercise index as shown by show-session.
func exerciseAt(routine models.Routine, arg string) (*models.Exercise, error) {
	idx, err := strconv.Atoi(arg)
	if err != nil || idx < 1 {
		return nil, fmt.Errorf("Invalid exercise index. Must be a positive integer")
	}
	if idx > len(routine.Exercises) {
		return nil, fmt.Errorf("Exercise index out of range")
	}
	return &routine.Exercises[idx-1], nil
}

func parseSetNumber(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("Invalid set number. Must be a positive integer")
	}
	return n, nil
}
