// Package booking orchestrates the booking flow: it validates customer
// input, computes the total via the pricing engine, persists the record
// and dispatches best-effort notifications.  A booking is successful
// once it is persisted; notification and event publishing failures are
// logged and swallowed.
package booking

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/sheshnag/movie-booking/internal/model"
	"github.com/sheshnag/movie-booking/internal/pricing"
	"github.com/sheshnag/movie-booking/internal/queue"
	"github.com/sheshnag/movie-booking/internal/seatmap"
	"github.com/sheshnag/movie-booking/internal/store"
)

// Input is the booking form submitted by a customer.  Either Tickets
// together with TicketTier (single-tier flow) or SeatIDs (seat
// selection flow) must be supplied; when SeatIDs is non-empty it wins.
type Input struct {
	Name       string   `json:"name" validate:"required,min=2"`
	Email      string   `json:"email" validate:"required,email"`
	Phone      string   `json:"phone" validate:"required,phone"`
	MovieID    string   `json:"movie_id" validate:"required"`
	MovieTitle string   `json:"movie_title" validate:"required"`
	Showtime   string   `json:"showtime" validate:"required"`
	TicketTier string   `json:"ticket_tier"`
	Tickets    int      `json:"tickets"`
	SeatIDs    []string `json:"seat_ids"`
}

// Notifier dispatches notifications for a persisted booking.  The
// dispatcher contains its own error handling; this call must not fail.
type Notifier interface {
	BookingCreated(ctx context.Context, b model.Booking)
}

// PublishFunc publishes a booking event to the message broker.  Errors
// are already logged by the publisher and may be ignored.
type PublishFunc func(ctx context.Context, event queue.BookingCreatedEvent) error

// Service implements the booking operations exposed over HTTP.
type Service struct {
	store    store.Store
	notifier Notifier
	publish  PublishFunc // nil disables event publishing
	validate *validator.Validate
}

// New constructs a Service.  st and notifier must be non-nil; publish
// may be nil when no broker is configured.
func New(st store.Store, notifier Notifier, publish PublishFunc) *Service {
	if st == nil || notifier == nil {
		panic("nil dependency passed to booking.New")
	}
	v := validator.New()
	// phone: at least ten digits somewhere in the value, ignoring
	// separators and a leading +.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		digits := 0
		for _, r := range fl.Field().String() {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		return digits >= 10
	})
	return &Service{store: st, notifier: notifier, publish: publish, validate: v}
}

// CreateBooking validates input, computes the total amount, persists a
// new pending booking and fires the notifications.  Persistence always
// completes before any notification is dispatched; once the record is
// stored the booking succeeds regardless of notification outcome.
func (s *Service) CreateBooking(ctx context.Context, in Input) (model.Booking, error) {
	if err := s.validateInput(in); err != nil {
		return model.Booking{}, err
	}

	tier, count, total := resolveTickets(in)

	b := model.Booking{
		ID:              newBookingID(),
		CustomerName:    in.Name,
		CustomerEmail:   in.Email,
		CustomerPhone:   in.Phone,
		MovieTitle:      in.MovieTitle,
		MovieID:         in.MovieID,
		Showtime:        in.Showtime,
		TicketTier:      tier,
		NumberOfTickets: count,
		SeatIDs:         dedupe(in.SeatIDs),
		TotalAmount:     total,
		BookingDate:     time.Now().UTC().Format(time.RFC3339),
		Status:          model.StatusPending,
	}

	if err := s.store.Append(ctx, b); err != nil {
		return model.Booking{}, fmt.Errorf("booking: persist %s: %w", b.ID, err)
	}

	// Best-effort side channels; the booking is already committed.
	s.notifier.BookingCreated(ctx, b)
	if s.publish != nil {
		_ = s.publish(ctx, queue.BookingCreatedEvent{
			BookingID:       b.ID,
			CustomerName:    b.CustomerName,
			CustomerEmail:   b.CustomerEmail,
			MovieID:         b.MovieID,
			MovieTitle:      b.MovieTitle,
			Showtime:        b.Showtime,
			TicketTier:      b.TicketTier,
			NumberOfTickets: b.NumberOfTickets,
			SeatIDs:         b.SeatIDs,
			TotalAmount:     b.TotalAmount,
			Status:          b.Status,
			CreatedAt:       b.BookingDate,
		})
	}

	return b, nil
}

// ListBookings returns all bookings in insertion order, optionally
// restricted to one status.
func (s *Service) ListBookings(ctx context.Context, status string) []model.Booking {
	all := s.store.GetAll(ctx)
	if status == "" {
		return all
	}
	out := make([]model.Booking, 0, len(all))
	for _, b := range all {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out
}

// GetBooking returns one booking by id, or store.ErrNotFound.
func (s *Service) GetBooking(ctx context.Context, id string) (model.Booking, error) {
	return s.store.GetByID(ctx, id)
}

// SetStatus updates a booking's status on behalf of the admin view.  It
// reports false when the id is unknown.  Any recognised status may be
// set from any other; the lifecycle deliberately enforces no transition
// graph.
func (s *Service) SetStatus(ctx context.Context, id, status string) (bool, error) {
	if !model.ValidStatus(status) {
		return false, &ValidationError{Fields: map[string]string{
			"status": fmt.Sprintf("must be one of pending, confirmed, paid, cancelled; got %q", status),
		}}
	}
	ok, err := s.store.UpdateStatus(ctx, id, status)
	if err != nil {
		return false, fmt.Errorf("booking: update status of %s: %w", id, err)
	}
	if ok {
		log.Printf("booking: %s status set to %s", id, status)
	}
	return ok, nil
}

// validateInput applies the form schema plus the flow-specific rules.
func (s *Service) validateInput(in Input) error {
	fields := map[string]string{}
	if err := s.validate.Struct(in); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = messageFor(fe)
		}
	}
	if len(in.SeatIDs) == 0 && in.Tickets < 1 {
		fields["tickets"] = "at least one ticket is required"
	}
	if len(dedupe(in.SeatIDs)) > seatmap.MaxSeats {
		fields["seat_ids"] = fmt.Sprintf("at most %d seats may be booked at once", seatmap.MaxSeats)
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "phone":
		return "must contain at least 10 digits"
	}
	return "is invalid"
}

// resolveTickets determines tier, ticket count and total amount.  The
// seat selection flow derives counts from the id prefixes; a mixed
// gold+silver selection reports tier "silver", a long-standing quirk of
// the storefront that is preserved here.  The amount is nevertheless
// computed per tier, so mixed bookings are priced correctly.
func resolveTickets(in Input) (tier string, count, total int) {
	seats := dedupe(in.SeatIDs)
	if len(seats) > 0 {
		gold, silver := seatmap.Counts(seats)
		tier = pricing.TierSilver
		if silver == 0 && gold > 0 {
			tier = pricing.TierGold
		}
		return tier, gold + silver, pricing.TotalForCounts(gold, silver)
	}
	tier = pricing.TierByID(in.TicketTier).ID
	return tier, in.Tickets, pricing.Total(in.TicketTier, in.Tickets)
}

func dedupe(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// newBookingID builds an identifier from the current timestamp and a
// random base36 suffix.  Collisions are treated as negligible for a
// single cinema's volume; uniqueness is not formally guaranteed.
func newBookingID() string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffix := make([]byte, 9)
	for i := range suffix {
		suffix[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return fmt.Sprintf("SHESH-%d-%s", time.Now().UnixMilli(), suffix)
}
