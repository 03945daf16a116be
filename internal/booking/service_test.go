package booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sheshnag/movie-booking/internal/model"
	"github.com/sheshnag/movie-booking/internal/notify"
	"github.com/sheshnag/movie-booking/internal/queue"
	"github.com/sheshnag/movie-booking/internal/store"
)

// fakeStore implements store.Store in memory with injectable failures.
type fakeStore struct {
	bookings  []model.Booking
	appendErr error
	updateErr error
}

func (f *fakeStore) GetAll(ctx context.Context) []model.Booking {
	return append([]model.Booking{}, f.bookings...)
}

func (f *fakeStore) Append(ctx context.Context, b model.Booking) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.bookings = append(f.bookings, b)
	return nil
}

func (f *fakeStore) GetByID(ctx context.Context, id string) (model.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Booking{}, store.ErrNotFound
}

func (f *fakeStore) UpdateStatus(ctx context.Context, id, status string) (bool, error) {
	if f.updateErr != nil {
		return false, f.updateErr
	}
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Status = status
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) Close() error { return nil }

// fakeNotifier records the bookings it was asked to announce.
type fakeNotifier struct {
	fn func(ctx context.Context, b model.Booking)
}

func (f *fakeNotifier) BookingCreated(ctx context.Context, b model.Booking) {
	if f.fn != nil {
		f.fn(ctx, b)
	}
}

func validInput() Input {
	return Input{
		Name:       "Asha Rao",
		Email:      "asha@example.com",
		Phone:      "+91 98765 43210",
		MovieID:    "1",
		MovieTitle: "Saiyaara",
		Showtime:   "6:00PM",
		TicketTier: "gold",
		Tickets:    2,
	}
}

func TestCreateBookingGoldPair(t *testing.T) {
	st := &fakeStore{}
	svc := New(st, &fakeNotifier{}, nil)

	b, err := svc.CreateBooking(context.Background(), validInput())
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if b.TotalAmount != 900 {
		t.Errorf("total = %d, want 900 for two gold tickets", b.TotalAmount)
	}
	if b.Status != model.StatusPending {
		t.Errorf("status = %q, want pending", b.Status)
	}
	if b.NumberOfTickets != 2 || b.TicketTier != "gold" {
		t.Errorf("tickets = %d tier = %q", b.NumberOfTickets, b.TicketTier)
	}
	if !strings.HasPrefix(b.ID, "SHESH-") {
		t.Errorf("booking id %q missing SHESH prefix", b.ID)
	}
	if b.BookingDate == "" {
		t.Error("booking date not set")
	}
	if len(st.bookings) != 1 {
		t.Fatalf("store holds %d records, want 1", len(st.bookings))
	}
}

func TestCreateBookingFromSeatSelection(t *testing.T) {
	st := &fakeStore{}
	svc := New(st, &fakeNotifier{}, nil)

	in := validInput()
	in.TicketTier = ""
	in.Tickets = 0
	in.SeatIDs = []string{"GOLD-A1", "SILVER-D2"}

	b, err := svc.CreateBooking(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if b.TotalAmount != 700 {
		t.Errorf("total = %d, want 450+250 = 700", b.TotalAmount)
	}
	if b.NumberOfTickets != 2 {
		t.Errorf("tickets = %d, want 2", b.NumberOfTickets)
	}
	// Mixed selections report silver; the amount above is still priced
	// per tier.  This mirrors the storefront's historical behaviour.
	if b.TicketTier != "silver" {
		t.Errorf("mixed selection tier = %q, want silver", b.TicketTier)
	}
}

func TestCreateBookingPureGoldSeats(t *testing.T) {
	svc := New(&fakeStore{}, &fakeNotifier{}, nil)
	in := validInput()
	in.SeatIDs = []string{"GOLD-A1", "GOLD-A2", "GOLD-A1"} // duplicate collapses
	b, err := svc.CreateBooking(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if b.TicketTier != "gold" || b.NumberOfTickets != 2 || b.TotalAmount != 900 {
		t.Fatalf("got tier=%q tickets=%d total=%d, want gold/2/900", b.TicketTier, b.NumberOfTickets, b.TotalAmount)
	}
}

func TestCreateBookingRecomputesAmount(t *testing.T) {
	// There is no amount field on the input at all; whatever the client
	// believes the price is, the stored total comes from the tier table.
	svc := New(&fakeStore{}, &fakeNotifier{}, nil)
	in := validInput()
	in.TicketTier = "platinum" // unknown tier prices as silver
	b, err := svc.CreateBooking(context.Background(), in)
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if b.TotalAmount != 500 {
		t.Fatalf("total = %d, want 500 (silver fallback x2)", b.TotalAmount)
	}
	if b.TicketTier != "silver" {
		t.Fatalf("tier = %q, want silver fallback", b.TicketTier)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc := New(&fakeStore{}, &fakeNotifier{}, nil)
	tests := []struct {
		name   string
		mutate func(*Input)
		field  string
	}{
		{"short name", func(in *Input) { in.Name = "A" }, "name"},
		{"bad email", func(in *Input) { in.Email = "not-an-email" }, "email"},
		{"short phone", func(in *Input) { in.Phone = "12345" }, "phone"},
		{"missing showtime", func(in *Input) { in.Showtime = "" }, "showtime"},
		{"zero tickets", func(in *Input) { in.Tickets = 0 }, "tickets"},
		{"too many seats", func(in *Input) {
			in.SeatIDs = []string{"SILVER-D1", "SILVER-D2", "SILVER-D3", "SILVER-D4", "SILVER-D5",
				"SILVER-D6", "SILVER-D7", "SILVER-D8", "SILVER-D9", "SILVER-D10", "SILVER-D11"}
		}, "seat_ids"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			_, err := svc.CreateBooking(context.Background(), in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v, want ValidationError", err)
			}
			if _, ok := verr.Fields[tc.field]; !ok {
				t.Fatalf("ValidationError fields = %v, want entry for %q", verr.Fields, tc.field)
			}
		})
	}
}

func TestValidationFailureHasNoSideEffects(t *testing.T) {
	st := &fakeStore{}
	notified := false
	svc := New(st, &fakeNotifier{fn: func(context.Context, model.Booking) { notified = true }}, nil)

	in := validInput()
	in.Email = "nope"
	if _, err := svc.CreateBooking(context.Background(), in); err == nil {
		t.Fatal("expected validation error")
	}
	if len(st.bookings) != 0 {
		t.Fatal("record persisted despite validation failure")
	}
	if notified {
		t.Fatal("notification dispatched despite validation failure")
	}
}

func TestPersistenceFailurePropagatesAndSkipsNotify(t *testing.T) {
	st := &fakeStore{appendErr: errors.New("disk full")}
	notified := false
	svc := New(st, &fakeNotifier{fn: func(context.Context, model.Booking) { notified = true }}, nil)

	_, err := svc.CreateBooking(context.Background(), validInput())
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("err = %v, want wrapped persistence failure", err)
	}
	if notified {
		t.Fatal("notification dispatched for unpersisted booking")
	}
}

func TestPersistCompletesBeforeNotification(t *testing.T) {
	st := &fakeStore{}
	var seenInStore bool
	svc := New(st, &fakeNotifier{fn: func(ctx context.Context, b model.Booking) {
		_, err := st.GetByID(ctx, b.ID)
		seenInStore = err == nil
	}}, nil)

	if _, err := svc.CreateBooking(context.Background(), validInput()); err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if !seenInStore {
		t.Fatal("notification observed a booking that was not yet persisted")
	}
}

func TestBookingSucceedsWhenPublisherFails(t *testing.T) {
	st := &fakeStore{}
	publish := func(ctx context.Context, ev queue.BookingCreatedEvent) error {
		return errors.New("broker unreachable")
	}
	svc := New(st, &fakeNotifier{}, publish)

	b, err := svc.CreateBooking(context.Background(), validInput())
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if got, err := st.GetByID(context.Background(), b.ID); err != nil || got.Status != model.StatusPending {
		t.Fatalf("persisted record missing or wrong: %+v, %v", got, err)
	}
}

func TestBookingSucceedsWhenNotificationSinkFails(t *testing.T) {
	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer sink.Close()

	st := &fakeStore{}
	svc := New(st, notify.New(sink.URL, sink.URL, "+919876543210", time.Second), nil)

	b, err := svc.CreateBooking(context.Background(), validInput())
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	got, err := st.GetByID(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("booking not persisted: %v", err)
	}
	if got.Status != model.StatusPending {
		t.Fatalf("status = %q, want pending", got.Status)
	}
}

func TestSetStatus(t *testing.T) {
	st := &fakeStore{}
	svc := New(st, &fakeNotifier{}, nil)
	b, err := svc.CreateBooking(context.Background(), validInput())
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	ok, err := svc.SetStatus(context.Background(), b.ID, model.StatusPaid)
	if err != nil || !ok {
		t.Fatalf("SetStatus = (%v, %v), want (true, nil)", ok, err)
	}
	got, err := svc.GetBooking(context.Background(), b.ID)
	if err != nil || got.Status != model.StatusPaid {
		t.Fatalf("booking after SetStatus: %+v, %v", got, err)
	}

	ok, err = svc.SetStatus(context.Background(), "nonexistent", model.StatusPaid)
	if err != nil || ok {
		t.Fatalf("SetStatus on unknown id = (%v, %v), want (false, nil)", ok, err)
	}

	if _, err := svc.SetStatus(context.Background(), b.ID, "shipped"); err == nil {
		t.Fatal("SetStatus accepted an unknown status")
	}
}

func TestListBookingsFilter(t *testing.T) {
	st := &fakeStore{}
	svc := New(st, &fakeNotifier{}, nil)
	for i := 0; i < 3; i++ {
		if _, err := svc.CreateBooking(context.Background(), validInput()); err != nil {
			t.Fatalf("CreateBooking: %v", err)
		}
	}
	all := svc.ListBookings(context.Background(), "")
	if len(all) != 3 {
		t.Fatalf("ListBookings() = %d records, want 3", len(all))
	}
	if ok, _ := svc.SetStatus(context.Background(), all[1].ID, model.StatusCancelled); !ok {
		t.Fatal("SetStatus failed")
	}
	cancelled := svc.ListBookings(context.Background(), model.StatusCancelled)
	if len(cancelled) != 1 || cancelled[0].ID != all[1].ID {
		t.Fatalf("filtered list = %+v", cancelled)
	}
	pending := svc.ListBookings(context.Background(), model.StatusPending)
	if len(pending) != 2 {
		t.Fatalf("pending list has %d records, want 2", len(pending))
	}
}
