package theme

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// Store is a string key/value store.
type Store interface {
	// Get returns the value of key; ok is false when it is absent.
	Get(key string) (value string, ok bool, err error)
	// Set writes the value of key.
	Set(key string, value string) error
	// Update atomically replaces the value of key with the result of fn,
	// which receives the current value; ok is false when it is absent.
	Update(key string, fn func(old string, ok bool) (value string, err error)) (value string, err error)
	// Close releases the store.
	Close() error
}

// StoreConfig configures a BadgerStore.
type StoreConfig struct {
	Path     string      // Database directory. Ignored when InMemory.
	InMemory bool        // No disk persistence, for tests.
	Log      *zap.Logger // Receives badger's own logging when set.
}

// BadgerStore is a Store backed by badger.
type BadgerStore struct {
	db *badger.DB
	mu sync.Mutex // Serializes Update.
}

// UPDATE_RETRIES bounds the retries of an Update that lost a write
// conflict.
const UPDATE_RETRIES = 16

var _ Store = (*BadgerStore)(nil)

// badgerLogger routes badger logging to zap.
type badgerLogger struct {
	log *zap.SugaredLogger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Errorf(format, args...)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warnf(format, args...)
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}

// OpenStore opens, creating when needed, a badger database.
func OpenStore(cfg StoreConfig) (store *BadgerStore, err error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			err = errors.New(f("store path is required"))
			return
		}
		err = os.MkdirAll(cfg.Path, 0750)
		if err != nil {
			err = fmt.Errorf("%v: %w", f("create store directory %v", cfg.Path), err)
			return
		}
		opts = badger.DefaultOptions(cfg.Path)
	}

	if cfg.Log != nil {
		opts = opts.WithLogger(&badgerLogger{log: cfg.Log.Named("badger").Sugar()})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		err = fmt.Errorf("%v: %w", f("open store"), err)
		return
	}

	store = &BadgerStore{db: db}
	return
}

func (store *BadgerStore) Get(key string) (value string, ok bool, err error) {
	err = store.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		data, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		value, ok = string(data), true
		return nil
	})
	return
}

func (store *BadgerStore) Set(key string, value string) error {
	return store.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
}

func (store *BadgerStore) Update(key string, fn func(old string, ok bool) (value string, err error)) (value string, err error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	for range UPDATE_RETRIES {
		err = store.db.Update(func(txn *badger.Txn) error {
			old, ok := "", false
			item, err := txn.Get([]byte(key))
			switch {
			case errors.Is(err, badger.ErrKeyNotFound):
			case err != nil:
				return err
			default:
				data, err := item.ValueCopy(nil)
				if err != nil {
					return err
				}
				old, ok = string(data), true
			}

			value, err = fn(old, ok)
			if err != nil {
				return err
			}
			return txn.Set([]byte(key), []byte(value))
		})
		if !errors.Is(err, badger.ErrConflict) {
			return
		}
	}

	return
}

func (store *BadgerStore) Close() error {
	return store.db.Close()
}
