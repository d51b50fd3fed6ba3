package store

import (
	"context"
	"encoding/json/jsontext"
	"errors"

	"github.com/dgraph-io/badger/v4"
)

// Dump returns the raw JSON snapshot of every collection key, for the
// database inspection tool. Absent keys are omitted.
func (s *Store) Dump(_ context.Context) (map[string]jsontext.Value, error) {
	out := make(map[string]jsontext.Value, len(CollectionKeys))
	err := s.db.View(func(txn *badger.Txn) error {
		for _, key := range CollectionKeys {
			item, err := txn.Get([]byte(key))
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			val, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			out[key] = jsontext.Value(val)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
