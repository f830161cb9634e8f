package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"economy/models"

	log "github.com/sirupsen/logrus"
)

// FileStore persists the ledger as a single JSON document
type FileStore struct {
	path string
}

// NewFileStore creates a file store writing to path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the data file location
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the data file. A missing file is an empty ledger.
func (s *FileStore) Load(ctx context.Context) (*models.LedgerSnapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.WithField("path", s.path).Info("No ledger file found, starting empty")
		return models.NewLedgerSnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	snapshot := models.NewLedgerSnapshot()
	if err := json.Unmarshal(data, snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.path, err)
	}
	if snapshot.Balances == nil {
		snapshot.Balances = make(map[int64]int64)
	}
	return snapshot, nil
}

// Save rewrites the whole data file. The document is written to a temporary file in
// the same directory and renamed over the target.
func (s *FileStore) Save(ctx context.Context, snapshot *models.LedgerSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}
