package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/brightsideapp/brightside-server/internal/domain"
	"github.com/brightsideapp/brightside-server/internal/id"
)

// GetSession returns the singleton user session, creating and persisting a
// fresh one on first access.
func (s *Store) GetSession(_ context.Context) (*domain.UserSession, error) {
	var session *domain.UserSession
	err := s.db.Update(func(txn *badger.Txn) error {
		loaded, err := sessionInTxn(txn, s, s.now())
		if err != nil {
			return err
		}
		session = loaded
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

// UpdateSession persists preference changes on the session. The rate-limit
// fields are owned by AddReview and are overwritten here deliberately only if
// the caller read-modified the current session.
func (s *Store) UpdateSession(_ context.Context, session *domain.UserSession) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return setInTxn(txn, KeySession, session)
	})
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	s.emit("session", "updated", session.ID)
	return nil
}

// sessionInTxn loads the session inside a transaction, creating and writing a
// fresh one if the key is absent.
func sessionInTxn(txn *badger.Txn, s *Store, now time.Time) (*domain.UserSession, error) {
	item, err := txn.Get([]byte(KeySession))
	if errors.Is(err, badger.ErrKeyNotFound) {
		session := &domain.UserSession{
			ID:        id.MustGenerate(id.Session),
			CreatedAt: now,
		}
		if err := setInTxn(txn, KeySession, session); err != nil {
			return nil, err
		}
		if s.logger != nil {
			s.logger.Info("created user session", "session_id", session.ID)
		}
		return session, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", KeySession, err)
	}

	var session domain.UserSession
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &session)
	})
	if err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", KeySession, err)
	}
	return &session, nil
}
