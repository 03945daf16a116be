// Package store persists booking records.  The whole collection lives
// in a single serialized JSON array under one named slot: a local file
// by default, or a single Redis key.  Every write re-serializes the
// complete collection, so concurrent writers are last-writer-wins; this
// is acceptable for a single-operator demo deployment and is called out
// as a hazard for anything more.
package store

import (
	"context"
	"errors"

	"github.com/sheshnag/movie-booking/internal/model"
)

// ErrNotFound is returned by GetByID when no booking with the given
// identifier exists.  Handlers translate it into an HTTP 404 response.
var ErrNotFound = errors.New("booking not found")

// Store is the capability object through which booking records are
// persisted.  Implementations must keep insertion order, return an
// empty collection on first use, and degrade to no-ops rather than
// failing when the backing storage is unavailable at open time.
type Store interface {
	// GetAll returns the full collection in insertion order.  A missing
	// or unreadable backing document yields an empty collection, never
	// an error.
	GetAll(ctx context.Context) []model.Booking
	// Append adds one record to the collection and persists it.  A
	// failed write returns an error; the record must not be partially
	// visible afterwards.
	Append(ctx context.Context, b model.Booking) error
	// GetByID returns the record with the given id or ErrNotFound.
	GetByID(ctx context.Context, id string) (model.Booking, error)
	// UpdateStatus sets the status of the record with the given id and
	// persists the collection.  It reports false (with a nil error)
	// when the id is unknown.
	UpdateStatus(ctx context.Context, id, status string) (bool, error)
	// Close releases any resources held by the store.
	Close() error
}
