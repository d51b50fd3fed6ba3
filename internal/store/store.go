// Package store is the single source of truth for directory data. Businesses,
// reviews, bookmark folders, deals, and the user session are persisted in a
// Badger database as JSON-serialized collection snapshots under fixed keys.
// Every mutation is a read-modify-write of one or more whole collections
// inside a single Badger transaction; there is one consumer per database, so
// no finer-grained concurrency control is needed.
package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/brightsideapp/brightside-server/internal/domain"
)

// EventEmitter is the interface for broadcasting store changes.
// The store publishes change events without depending on how clients observe
// them; the SSE layer implements this.
type EventEmitter interface {
	Emit(event any)
}

// NoopEmitter is a no-op implementation of EventEmitter for testing.
type NoopEmitter struct{}

// NewNoopEmitter creates a no-op event emitter.
func NewNoopEmitter() *NoopEmitter { return &NoopEmitter{} }

// Emit implements EventEmitter.Emit as a no-op.
func (*NoopEmitter) Emit(_ any) {}

// ChangeEvent describes a store mutation for subscribers.
type ChangeEvent struct {
	Entity string `json:"entity"` // business, review, bookmark, deal, session
	Action string `json:"action"` // added, updated, redeemed
	ID     string `json:"id"`
}

// SearchIndexer is the interface for updating the search index.
// Store uses this to keep search in sync without depending on search
// implementation.
type SearchIndexer interface {
	IndexBusiness(ctx context.Context, b *domain.Business) error
	DeleteBusiness(ctx context.Context, businessID string) error
}

// NoopSearchIndexer is a no-op implementation for testing.
type NoopSearchIndexer struct{}

// IndexBusiness is a no-op.
func (NoopSearchIndexer) IndexBusiness(context.Context, *domain.Business) error { return nil }

// DeleteBusiness is a no-op.
func (NoopSearchIndexer) DeleteBusiness(context.Context, string) error { return nil }

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger

	eventEmitter EventEmitter

	// Search indexer for keeping search in sync with store changes.
	// Set via SetSearchIndexer after store creation to avoid circular dependencies.
	searchIndexer SearchIndexer

	// now is replaceable in tests to control rate-limit and deal windows.
	now func() time.Time
}

// New creates a new Store instance with the given database path and event emitter.
func New(path string, logger *slog.Logger, emitter EventEmitter) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	store := &Store{
		db:           db,
		logger:       logger,
		eventEmitter: emitter,
		now:          time.Now,
	}

	if logger != nil {
		logger.Info("Badger database opened successfully", "path", path)
	}

	return store, nil
}

// Close gracefully closes the database connection.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing database connection")
	}
	return s.db.Close()
}

// SetSearchIndexer sets the search indexer for keeping search in sync.
// This is set after store creation to avoid circular dependencies
// (store needs to exist before the search service can be created).
func (s *Store) SetSearchIndexer(indexer SearchIndexer) {
	s.searchIndexer = indexer
}

// emit publishes a change event if an emitter is configured.
func (s *Store) emit(entity, action, id string) {
	if s.eventEmitter != nil {
		s.eventEmitter.Emit(ChangeEvent{Entity: entity, Action: action, ID: id})
	}
}

// indexBusiness pushes a business into the search index, logging failures.
// Index updates are best-effort; the store stays authoritative.
func (s *Store) indexBusiness(ctx context.Context, b *domain.Business) {
	if s.searchIndexer == nil {
		return
	}
	if err := s.searchIndexer.IndexBusiness(ctx, b); err != nil && s.logger != nil {
		s.logger.Warn("failed to index business", "business_id", b.ID, "error", err)
	}
}

// Collection snapshot helpers. A missing key reads as an empty collection
// (storage absence is never an error, per the degraded-data policy).

// readList loads a whole collection snapshot outside a transaction.
func readList[T any](s *Store, key string) ([]T, error) {
	var items []T
	err := s.db.View(func(txn *badger.Txn) error {
		loaded, err := listInTxn[T](txn, key)
		if err != nil {
			return err
		}
		items = loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// listInTxn loads a collection snapshot inside a transaction.
func listInTxn[T any](txn *badger.Txn, key string) ([]T, error) {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}

	var items []T
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &items)
	})
	if err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// setInTxn writes a JSON-serialized value inside a transaction.
func setInTxn(txn *badger.Txn, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return txn.Set([]byte(key), data)
}

// exists checks if a key exists.
func (s *Store) exists(key string) (bool, error) {
	err := s.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get([]byte(key))
		return err
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
