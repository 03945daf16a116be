package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sheshnag/movie-booking/internal/model"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "bookings.json"))
}

func sample(id string) model.Booking {
	return model.Booking{
		ID:              id,
		CustomerName:    "Asha Rao",
		CustomerEmail:   "asha@example.com",
		CustomerPhone:   "9876543210",
		MovieTitle:      "Saiyaara",
		MovieID:         "1",
		Showtime:        "6:00PM",
		TicketTier:      "gold",
		NumberOfTickets: 2,
		TotalAmount:     900,
		BookingDate:     "2025-08-01T12:00:00Z",
		Status:          model.StatusPending,
	}
}

func TestGetAllEmptyOnFirstRun(t *testing.T) {
	fs := newTestStore(t)
	got := fs.GetAll(context.Background())
	if len(got) != 0 {
		t.Fatalf("GetAll on fresh store returned %d records", len(got))
	}
}

func TestGetAllIsIdempotent(t *testing.T) {
	fs := newTestStore(t)
	if err := fs.Append(context.Background(), sample("SHESH-1")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	first := fs.GetAll(context.Background())
	second := fs.GetAll(context.Background())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("consecutive GetAll calls differ: %v vs %v", first, second)
	}
}

func TestAppendRoundTrip(t *testing.T) {
	fs := newTestStore(t)
	want := sample("SHESH-42")
	if err := fs.Append(context.Background(), want); err != nil {
		t.Fatalf("Append: %v", err)
	}
	got, err := fs.GetByID(context.Background(), "SHESH-42")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestAppendPreservesInsertionOrder(t *testing.T) {
	fs := newTestStore(t)
	for _, id := range []string{"SHESH-1", "SHESH-2", "SHESH-3"} {
		if err := fs.Append(context.Background(), sample(id)); err != nil {
			t.Fatalf("Append(%s): %v", id, err)
		}
	}
	all := fs.GetAll(context.Background())
	if len(all) != 3 {
		t.Fatalf("got %d records, want 3", len(all))
	}
	for i, id := range []string{"SHESH-1", "SHESH-2", "SHESH-3"} {
		if all[i].ID != id {
			t.Fatalf("record %d has id %q, want %q", i, all[i].ID, id)
		}
	}
}

func TestGetByIDNotFound(t *testing.T) {
	fs := newTestStore(t)
	if _, err := fs.GetByID(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByID on unknown id: err = %v, want ErrNotFound", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	fs := newTestStore(t)
	if err := fs.Append(context.Background(), sample("SHESH-7")); err != nil {
		t.Fatalf("Append: %v", err)
	}

	ok, err := fs.UpdateStatus(context.Background(), "SHESH-7", model.StatusPaid)
	if err != nil || !ok {
		t.Fatalf("UpdateStatus = (%v, %v), want (true, nil)", ok, err)
	}
	got, err := fs.GetByID(context.Background(), "SHESH-7")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Status != model.StatusPaid {
		t.Fatalf("status = %q, want %q", got.Status, model.StatusPaid)
	}
}

func TestUpdateStatusUnknownIDLeavesCollectionUnchanged(t *testing.T) {
	fs := newTestStore(t)
	if err := fs.Append(context.Background(), sample("SHESH-7")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	before := fs.GetAll(context.Background())

	ok, err := fs.UpdateStatus(context.Background(), "nonexistent", model.StatusPaid)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if ok {
		t.Fatal("UpdateStatus on unknown id reported true")
	}
	after := fs.GetAll(context.Background())
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("collection changed by failed update:\nbefore %v\nafter  %v", before, after)
	}
}

func TestUnavailableStoreDegradesToNoop(t *testing.T) {
	// A path whose parent directory cannot be created marks the store
	// unavailable; operations must not fail.  Using a regular file as a
	// path element guarantees MkdirAll fails.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	fs := NewFileStore(filepath.Join(blocker, "data", "bookings.json"))
	ctx := context.Background()
	if got := fs.GetAll(ctx); len(got) != 0 {
		t.Fatalf("GetAll on unavailable store returned %d records", len(got))
	}
	if err := fs.Append(ctx, sample("SHESH-1")); err != nil {
		t.Fatalf("Append on unavailable store: %v", err)
	}
	ok, err := fs.UpdateStatus(ctx, "SHESH-1", model.StatusPaid)
	if err != nil || ok {
		t.Fatalf("UpdateStatus on unavailable store = (%v, %v), want (false, nil)", ok, err)
	}
}
