package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"github.com/ariseapp/arise/internal/constants"
)

// DiskvStore keeps the snapshot as one document in a diskv key-value store
// under the config directory. This is the default backend: a local,
// schema-less slot the whole tree is written to after every action.
type DiskvStore struct {
	dir  string
	slot string
	d    *diskv.Diskv
}

func NewDiskvStore(dir string) *DiskvStore {
	return &DiskvStore{
		dir:  dir,
		slot: constants.SnapshotSlot,
		d: diskv.New(diskv.Options{
			BasePath:     filepath.Join(dir, "data"),
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
	}
}

func (s *DiskvStore) Init() error {
	if err := os.MkdirAll(filepath.Join(s.dir, "data"), 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

func (s *DiskvStore) Read() ([]byte, error) {
	if !s.d.Has(s.slot) {
		return nil, ErrNotFound
	}
	data, err := s.d.Read(s.slot)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return data, nil
}

func (s *DiskvStore) Write(data []byte) error {
	if err := s.d.Write(s.slot, data); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

func (s *DiskvStore) Close() error {
	return nil
}

func (s *DiskvStore) Path() string {
	return filepath.Join(s.dir, "data")
}
