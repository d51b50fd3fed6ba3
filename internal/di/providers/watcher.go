package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/brightsideapp/brightside-server/internal/config"
	"github.com/brightsideapp/brightside-server/internal/logger"
	"github.com/brightsideapp/brightside-server/internal/watcher"
)

// SeedWatcherHandle wraps the seed file watcher with lifecycle management.
// Watcher is nil when no seed file is configured.
type SeedWatcherHandle struct {
	Watcher *watcher.Watcher
	cancel  context.CancelFunc
}

// Shutdown implements do.Shutdownable.
func (h *SeedWatcherHandle) Shutdown() error {
	if h.Watcher == nil {
		return nil
	}
	h.cancel()
	return h.Watcher.Stop()
}

// ProvideSeedWatcher provides the seed file watcher. The watcher reloads the
// directory dataset whenever the configured seed file settles after a change.
func ProvideSeedWatcher(i do.Injector) (*SeedWatcherHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	if cfg.Data.SeedFile == "" {
		log.Info("Seed file watcher disabled, no seed file configured")
		return &SeedWatcherHandle{}, nil
	}

	w, err := watcher.New(cfg.Data.SeedFile, watcher.DefaultSettleDelay, log.Logger)
	if err != nil {
		return nil, err
	}

	reloader := watcher.NewReloader(w, storeHandle.Store, log.Logger)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		if err := reloader.Run(ctx); err != nil {
			log.Error("Seed file watcher stopped", "error", err)
		}
	}()

	return &SeedWatcherHandle{Watcher: w, cancel: cancel}, nil
}
