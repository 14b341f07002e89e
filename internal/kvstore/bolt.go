package kvstore

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

// blobBucket holds every application blob; keys are the caller's names.
var blobBucket = []byte("blobs")

// Bolt is a Store backed by a bbolt database file. Writes are durable
// and synchronous; the file survives process restart.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens (creating if needed) the database file at path.
func OpenBolt(path string) (*Bolt, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(blobBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init data file: %w", err)
	}

	return &Bolt{db: db}, nil
}

// Get returns the blob stored under key.
func (b *Bolt) Get(key string) ([]byte, bool, error) {
	var value []byte
	var found bool
	err := b.db.View(func(tx *bolt.Tx) error {
		stored := tx.Bucket(blobBucket).Get([]byte(key))
		if stored == nil {
			return nil
		}
		found = true
		// The slice is only valid inside the transaction.
		value = make([]byte, len(stored))
		copy(value, stored)
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return value, found, nil
}

// Put stores the blob under key.
func (b *Bolt) Put(key string, value []byte) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(blobBucket).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying database file.
func (b *Bolt) Close() error {
	return b.db.Close()
}
