package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/ichscheine/goAIME-sub001/internal/sessiontimer"
)

const timerKeyPrefix = "timer/"

// TimerStore keeps session timer snapshots in a badger key-value store so a
// paused timer survives a server restart.
type TimerStore struct {
	db *badger.DB
}

// Compile-time check: *TimerStore satisfies sessiontimer.Storage.
var _ sessiontimer.Storage = (*TimerStore)(nil)

// OpenTimerStore opens a badger database in dir. An empty dir keeps
// everything in memory.
func OpenTimerStore(dir string) (*TimerStore, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open timer store: %w", err)
	}
	return &TimerStore{db: db}, nil
}

func (s *TimerStore) Close() error {
	return s.db.Close()
}

func (s *TimerStore) Save(ctx context.Context, key string, snap sessiontimer.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode timer snapshot: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(timerKeyPrefix+key), data)
	})
}

// Load returns sessiontimer.ErrNoSnapshot when nothing is stored under key.
func (s *TimerStore) Load(ctx context.Context, key string) (sessiontimer.Snapshot, error) {
	var snap sessiontimer.Snapshot
	if err := ctx.Err(); err != nil {
		return snap, err
	}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(timerKeyPrefix + key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return sessiontimer.Snapshot{}, sessiontimer.ErrNoSnapshot
	}
	if err != nil {
		return sessiontimer.Snapshot{}, fmt.Errorf("load timer snapshot: %w", err)
	}
	return snap, nil
}

// Delete removes a snapshot. Deleting a missing key is not an error.
func (s *TimerStore) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(timerKeyPrefix + key))
	})
}
