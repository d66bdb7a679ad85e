// Package store persists entity state in a bolt database.
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/boltdb/bolt"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/milk9111/maidmodes/nbt"
)

var ErrNotFound = errors.New("store: record not found")

var bucketEntities = []byte("entities")

// Record is one saved entity.
type Record struct {
	ID      uuid.UUID     `json:"id"`
	Name    string        `json:"name"`
	Mode    string        `json:"mode"`
	Tick    uint64        `json:"tick"`
	SavedAt time.Time     `json:"saved_at"`
	State   *nbt.Compound `json:"state"`
}

// Store wraps a bolt database holding Records keyed by entity id.
type Store struct {
	db *bolt.DB
}

func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("store: create directory: %w", err)
		}
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketEntities)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create bucket: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Put writes rec, replacing any earlier record with the same id.
func (s *Store) Put(_ context.Context, rec *Record) error {
	if rec == nil || rec.ID == uuid.Nil {
		return fmt.Errorf("store: record needs an id")
	}
	data, err := sonic.Marshal(rec)
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", rec.ID, err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketEntities).Put(rec.ID[:], data)
	})
}

func (s *Store) Get(_ context.Context, id uuid.UUID) (*Record, error) {
	var rec Record
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketEntities).Get(id[:])
		if data == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return sonic.Unmarshal(data, &rec)
	})
	if err != nil {
		return nil, err
	}
	if rec.State == nil {
		rec.State = nbt.New()
	}
	return &rec, nil
}

func (s *Store) Delete(_ context.Context, id uuid.UUID) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketEntities).Delete(id[:])
	})
}

// List returns every record ordered by name, then id.
func (s *Store) List(_ context.Context) ([]*Record, error) {
	var out []*Record
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketEntities).ForEach(func(_, v []byte) error {
			var rec Record
			if err := sonic.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("store: unmarshal: %w", err)
			}
			out = append(out, &rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}
