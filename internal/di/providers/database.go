package providers

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/brightsideapp/brightside-server/internal/config"
	"github.com/brightsideapp/brightside-server/internal/logger"
	"github.com/brightsideapp/brightside-server/internal/sse"
	"github.com/brightsideapp/brightside-server/internal/store"
	"github.com/brightsideapp/brightside-server/internal/watcher"
)

// SSEManagerHandle wraps the SSE manager with its context for lifecycle management.
type SSEManagerHandle struct {
	*sse.Manager
	cancel context.CancelFunc
}

// Shutdown implements do.Shutdownable.
func (h *SSEManagerHandle) Shutdown() error {
	h.cancel()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Manager.Shutdown(ctx)
}

// ProvideSSEManager provides the server-sent events manager.
func ProvideSSEManager(i do.Injector) (*SSEManagerHandle, error) {
	log := do.MustInvoke[*logger.Logger](i)

	manager := sse.NewManager(log.Logger)

	// Start in background
	ctx, cancel := context.WithCancel(context.Background())
	go manager.Start(ctx)

	log.Info("SSE manager started")

	return &SSEManagerHandle{
		Manager: manager,
		cancel:  cancel,
	}, nil
}

// StoreHandle wraps the store with shutdown capability.
type StoreHandle struct {
	*store.Store
}

// Shutdown implements do.Shutdownable.
func (h *StoreHandle) Shutdown() error {
	return h.Close()
}

// ProvideStore provides the database store.
func ProvideStore(i do.Injector) (*StoreHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	sseHandle := do.MustInvoke[*SSEManagerHandle](i)

	dbPath := cfg.DatabasePath()
	db, err := store.New(dbPath, log.Logger, sseHandle.Manager)
	if err != nil {
		return nil, err
	}

	log.Info("Database initialized", "path", dbPath)

	return &StoreHandle{Store: db}, nil
}

// Bootstrap records how the directory dataset was initialized.
type Bootstrap struct {
	BusinessCount int
	Seeded        bool
}

// ProvideBootstrap ensures the store holds a dataset. An empty store is
// populated from the configured seed file, or from the built-in fixture set
// when no file is configured.
func ProvideBootstrap(i do.Injector) (*Bootstrap, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	storeHandle := do.MustInvoke[*StoreHandle](i)

	ctx := context.Background()

	businesses, err := storeHandle.GetBusinesses(ctx)
	if err != nil {
		return nil, err
	}
	if len(businesses) > 0 {
		log.Info("Using existing directory data", "businesses", len(businesses))
		return &Bootstrap{BusinessCount: len(businesses)}, nil
	}

	if cfg.Data.SeedFile != "" {
		data, err := watcher.LoadSeedFile(cfg.Data.SeedFile)
		if err != nil {
			return nil, err
		}
		if err := storeHandle.LoadSeedData(ctx, data); err != nil {
			return nil, err
		}
		log.Info("Directory seeded from file",
			"path", cfg.Data.SeedFile,
			"businesses", len(data.Businesses),
		)
		return &Bootstrap{BusinessCount: len(data.Businesses), Seeded: true}, nil
	}

	if err := storeHandle.Seed(ctx); err != nil {
		return nil, err
	}
	seeded, err := storeHandle.GetBusinesses(ctx)
	if err != nil {
		return nil, err
	}
	log.Info("Directory seeded with built-in fixtures", "businesses", len(seeded))
	return &Bootstrap{BusinessCount: len(seeded), Seeded: true}, nil
}
