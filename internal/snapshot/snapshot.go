// Package snapshot persists the desktop variant's working data as a single
// JSON file and restores it on the next start.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rogerio-castellano/ops-dashboard/internal/models"
)

type Snapshot struct {
	Customers    []models.Customer    `json:"customers"`
	Products     []models.Product     `json:"products"`
	Orders       []models.Order       `json:"orders"`
	Integrations []models.Integration `json:"integrations"`
	Partnerships []models.Partnership `json:"partnerships"`
	Campaigns    []models.Campaign    `json:"campaigns"`
	SavedAt      time.Time            `json:"savedAt"`
}

// Result reports a save or load. Data is nil after a save and after loading
// when nothing was saved yet.
type Result struct {
	Success bool      `json:"success"`
	Error   string    `json:"error,omitempty"`
	Data    *Snapshot `json:"data"`
}

func failed(err error) Result {
	return Result{Success: false, Error: err.Error()}
}

// FileStore reads and writes one snapshot file. Writes go to a temporary file
// that is renamed over the target, so a crash never leaves a torn file.
type FileStore struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: func() time.Time { return time.Now().UTC() }}
}

func (f *FileStore) Path() string { return f.path }

func (f *FileStore) Save(s Snapshot) Result {
	f.mu.Lock()
	defer f.mu.Unlock()

	s.SavedAt = f.now()
	body, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return failed(fmt.Errorf("encode snapshot: %w", err))
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return failed(err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return failed(err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		return failed(err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return failed(err)
	}
	if err := tmp.Close(); err != nil {
		return failed(err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return failed(err)
	}
	return Result{Success: true}
}

func (f *FileStore) Load() Result {
	f.mu.Lock()
	defer f.mu.Unlock()

	body, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Result{Success: true}
	}
	if err != nil {
		return failed(err)
	}
	var s Snapshot
	if err := json.Unmarshal(body, &s); err != nil {
		return failed(fmt.Errorf("decode snapshot %s: %w", f.path, err))
	}
	return Result{Success: true, Data: &s}
}
