package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/sheshnag/movie-booking/internal/model"
)

// FileStore keeps the booking collection as one JSON array in a single
// file.  Reads load the whole document; writes rewrite it completely.
// When the file's directory cannot be created at open time the store
// marks itself unavailable and every operation degrades: GetAll returns
// an empty collection, Append and UpdateStatus become no-ops.  A write
// failure on an available store is a real error and is returned.
type FileStore struct {
	mu          sync.Mutex
	path        string
	unavailable bool
}

// NewFileStore returns a FileStore writing to path.  The parent
// directory is created if missing; failure to do so is a capability
// problem, not an error, and produces a degraded no-op store.
func NewFileStore(path string) *FileStore {
	fs := &FileStore{path: path}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Printf("store: %s unavailable, running without persistence: %v", path, err)
		fs.unavailable = true
	}
	return fs
}

// load reads and decodes the collection.  Missing file and decode
// failures both yield an empty collection.
func (fs *FileStore) load() []model.Booking {
	if fs.unavailable {
		return []model.Booking{}
	}
	data, err := os.ReadFile(fs.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("store: read %s: %v", fs.path, err)
		}
		return []model.Booking{}
	}
	var bookings []model.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		log.Printf("store: corrupt collection in %s: %v", fs.path, err)
		return []model.Booking{}
	}
	return bookings
}

// save serializes and rewrites the complete collection.  The document
// is written to a temp file and renamed so a crash mid-write cannot
// leave a truncated collection behind.
func (fs *FileStore) save(bookings []model.Booking) error {
	if fs.unavailable {
		return nil
	}
	data, err := json.MarshalIndent(bookings, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal collection: %w", err)
	}
	tmp := fs.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("store: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return fmt.Errorf("store: rename %s: %w", tmp, err)
	}
	return nil
}

// GetAll returns the full collection in insertion order.
func (fs *FileStore) GetAll(ctx context.Context) []model.Booking {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.load()
}

// Append pushes one record onto the collection and rewrites it.
func (fs *FileStore) Append(ctx context.Context, b model.Booking) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	bookings := fs.load()
	bookings = append(bookings, b)
	return fs.save(bookings)
}

// GetByID scans the collection for the record with the given id.
func (fs *FileStore) GetByID(ctx context.Context, id string) (model.Booking, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	for _, b := range fs.load() {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Booking{}, ErrNotFound
}

// UpdateStatus mutates the status of the matching record in place and
// rewrites the collection.  Unknown ids report false without touching
// the stored document.
func (fs *FileStore) UpdateStatus(ctx context.Context, id, status string) (bool, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	bookings := fs.load()
	for i := range bookings {
		if bookings[i].ID == id {
			bookings[i].Status = status
			if err := fs.save(bookings); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Close is a no-op for the file backend.
func (fs *FileStore) Close() error { return nil }
