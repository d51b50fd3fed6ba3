package watcher

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"log/slog"
	"os"

	"github.com/brightsideapp/brightside-server/internal/store"
)

// SeedStore is the part of the store the reloader needs.
type SeedStore interface {
	LoadSeedData(ctx context.Context, data store.SeedData) error
}

// Reloader reloads the store whenever the watched seed file settles.
type Reloader struct {
	watcher *Watcher
	store   SeedStore
	logger  *slog.Logger
}

// NewReloader creates a Reloader on top of an existing watcher.
func NewReloader(w *Watcher, s SeedStore, logger *slog.Logger) *Reloader {
	return &Reloader{
		watcher: w,
		store:   s,
		logger:  logger,
	}
}

// Run starts the watcher and applies each settled change to the store.
// It blocks until the context is cancelled.
func (r *Reloader) Run(ctx context.Context) error {
	r.logger.Info("seed file watcher starting", "path", r.watcher.path)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-r.watcher.Events():
				if !ok {
					return
				}
				if err := r.reload(ctx, event.Path); err != nil {
					r.logger.Error("seed reload failed",
						"path", event.Path,
						"error", err)
					continue
				}
				r.logger.Info("seed data reloaded",
					"path", event.Path,
					"size", event.Size)
			case err, ok := <-r.watcher.Errors():
				if !ok {
					return
				}
				r.logger.Error("seed file watch error", "error", err)
			}
		}
	}()

	return r.watcher.Start(ctx)
}

// reload parses the seed file and replaces the store's dataset.
func (r *Reloader) reload(ctx context.Context, path string) error {
	data, err := LoadSeedFile(path)
	if err != nil {
		return err
	}
	return r.store.LoadSeedData(ctx, data)
}

// LoadSeedFile reads and parses a seed dataset from disk.
func LoadSeedFile(path string) (store.SeedData, error) {
	raw, err := os.ReadFile(path) //#nosec G304 -- Seed file path comes from config
	if err != nil {
		return store.SeedData{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	var data store.SeedData
	if err := json.Unmarshal(raw, &data); err != nil {
		return store.SeedData{}, fmt.Errorf("failed to parse seed file: %w", err)
	}

	if len(data.Businesses) == 0 {
		return store.SeedData{}, fmt.Errorf("seed file %s contains no businesses", path)
	}

	return data, nil
}
