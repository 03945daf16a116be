package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/sheshnag/movie-booking/internal/model"
)

// RedisStore keeps the booking collection as one JSON array under a
// single Redis key, mirroring the single-slot layout of the file
// backend.  Whole-document read/rewrite and last-writer-wins semantics
// are intentionally identical; only the slot moves off the local disk.
// A nil client (Redis unreachable at startup) produces a degraded
// no-op store, matching how the rest of the application treats a
// missing Redis.
type RedisStore struct {
	mu     sync.Mutex
	client *redis.Client
	key    string
}

// NewRedisStore returns a RedisStore writing the collection under key.
// client may be nil, in which case every operation degrades to the
// empty-collection / no-op behaviour.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	if client == nil {
		log.Printf("store: redis unavailable, running without persistence")
	}
	return &RedisStore{client: client, key: key}
}

func (rs *RedisStore) load(ctx context.Context) []model.Booking {
	if rs.client == nil {
		return []model.Booking{}
	}
	data, err := rs.client.Get(ctx, rs.key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("store: read %s: %v", rs.key, err)
		}
		return []model.Booking{}
	}
	var bookings []model.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		log.Printf("store: corrupt collection in %s: %v", rs.key, err)
		return []model.Booking{}
	}
	return bookings
}

func (rs *RedisStore) save(ctx context.Context, bookings []model.Booking) error {
	if rs.client == nil {
		return nil
	}
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("store: marshal collection: %w", err)
	}
	if err := rs.client.Set(ctx, rs.key, data, 0).Err(); err != nil {
		return fmt.Errorf("store: write %s: %w", rs.key, err)
	}
	return nil
}

// GetAll returns the full collection in insertion order.
func (rs *RedisStore) GetAll(ctx context.Context) []model.Booking {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.load(ctx)
}

// Append pushes one record onto the collection and rewrites the slot.
func (rs *RedisStore) Append(ctx context.Context, b model.Booking) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	bookings := rs.load(ctx)
	bookings = append(bookings, b)
	return rs.save(ctx, bookings)
}

// GetByID scans the collection for the record with the given id.
func (rs *RedisStore) GetByID(ctx context.Context, id string) (model.Booking, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	for _, b := range rs.load(ctx) {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Booking{}, ErrNotFound
}

// UpdateStatus mutates the status of the matching record and rewrites
// the slot.  Unknown ids report false without writing.
func (rs *RedisStore) UpdateStatus(ctx context.Context, id, status string) (bool, error) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	bookings := rs.load(ctx)
	for i := range bookings {
		if bookings[i].ID == id {
			bookings[i].Status = status
			if err := rs.save(ctx, bookings); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Close closes the underlying Redis client.
func (rs *RedisStore) Close() error {
	if rs.client == nil {
		return nil
	}
	return rs.client.Close()
}
