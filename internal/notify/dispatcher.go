// Package notify delivers best-effort booking notifications to two
// external webhook sinks: an admin alert and a customer email relay.
// Deliveries are independent, bounded by a timeout, and never surface
// errors to the booking flow; a failed notification is logged and
// dropped, not retried.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/sheshnag/movie-booking/internal/model"
	"github.com/sheshnag/movie-booking/internal/pricing"
)

// AdminAlert is the payload posted to the admin notification sink.
type AdminAlert struct {
	To          string        `json:"to"`
	Message     string        `json:"message"`
	BookingData model.Booking `json:"bookingData"`
}

// EmailMessage is the payload posted to the email relay sink.
type EmailMessage struct {
	To          string        `json:"to"`
	Subject     string        `json:"subject"`
	HTML        string        `json:"html"`
	BookingData model.Booking `json:"bookingData"`
}

// Dispatcher formats and submits booking notifications.  An empty
// webhook URL disables the corresponding sink.
type Dispatcher struct {
	adminWebhookURL string
	emailWebhookURL string
	adminContact    string
	http            *http.Client
}

// New returns a Dispatcher posting to the given webhook URLs.  timeout
// bounds each outbound call so a stuck sink cannot suspend the caller
// indefinitely.
func New(adminWebhookURL, emailWebhookURL, adminContact string, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Dispatcher{
		adminWebhookURL: adminWebhookURL,
		emailWebhookURL: emailWebhookURL,
		adminContact:    adminContact,
		http:            &http.Client{Timeout: timeout},
	}
}

// BookingCreated sends the admin alert and the customer confirmation
// email for a freshly persisted booking.  The two deliveries run
// concurrently and neither can fail the other; all errors are logged
// and swallowed.  The method returns once both attempts finish.
func (d *Dispatcher) BookingCreated(ctx context.Context, b model.Booking) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := d.sendAdminAlert(ctx, b); err != nil {
			log.Printf("notify: admin alert for booking %s failed: %v", b.ID, err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := d.sendEmailConfirmation(ctx, b); err != nil {
			log.Printf("notify: email confirmation for booking %s failed: %v", b.ID, err)
		}
	}()
	wg.Wait()
}

func (d *Dispatcher) sendAdminAlert(ctx context.Context, b model.Booking) error {
	if d.adminWebhookURL == "" {
		return nil
	}
	payload := AdminAlert{
		To:          d.adminContact,
		Message:     adminMessage(b),
		BookingData: b,
	}
	return d.post(ctx, d.adminWebhookURL, payload)
}

func (d *Dispatcher) sendEmailConfirmation(ctx context.Context, b model.Booking) error {
	if d.emailWebhookURL == "" {
		return nil
	}
	payload := EmailMessage{
		To:          b.CustomerEmail,
		Subject:     fmt.Sprintf("Booking Confirmation - %s | Sheshnag Cinema", b.MovieTitle),
		HTML:        emailHTML(b),
		BookingData: b,
	}
	return d.post(ctx, d.emailWebhookURL, payload)
}

// post submits one JSON payload to a sink.  Any non-2xx status counts
// as a failure so it shows up in the logs.
func (d *Dispatcher) post(ctx context.Context, url string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := d.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sink returned status %d", resp.StatusCode)
	}
	return nil
}

// tierLabel renders the display name used in outbound messages.
func tierLabel(tierID string) string {
	if tierID == pricing.TierGold {
		return "Gold (Balcony)"
	}
	return "Silver (Standard)"
}

// adminMessage builds the plain text summary posted to the admin sink.
func adminMessage(b model.Booking) string {
	return fmt.Sprintf(`*NEW BOOKING ALERT!*

*Movie:* %s
*Customer:* %s
*Phone:* %s
*Email:* %s

*Booking Details:*
- Tickets: %d %s
- Showtime: %s
- Total Amount: Rs.%d
- Booking ID: %s

*Status:* Pending Payment

Please contact customer for payment confirmation!`,
		b.MovieTitle, b.CustomerName, b.CustomerPhone, b.CustomerEmail,
		b.NumberOfTickets, tierLabel(b.TicketTier),
		b.Showtime, b.TotalAmount, b.ID)
}

// emailHTML builds the customer confirmation body.  The booking is
// unpaid at this point, so the mail instructs the customer to pay at
// the counter to confirm it.
func emailHTML(b model.Booking) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1>Sheshnag Cinema</h1>
    <h2>Booking Confirmation</h2>
    <p>Dear %s,</p>
    <p>Your booking has been successfully created! Please find the details below:</p>
    <div style="background: #f9f9f9; padding: 20px; border-radius: 8px;">
      <p><strong>Booking ID:</strong> %s</p>
      <p><strong>Movie:</strong> %s</p>
      <p><strong>Showtime:</strong> %s</p>
      <p><strong>Ticket Type:</strong> %s</p>
      <p><strong>Number of Tickets:</strong> %d</p>
      <p><strong>Total Amount:</strong> Rs.%d</p>
    </div>
    <div style="background: #fff3cd; padding: 15px; border-radius: 8px; margin-top: 20px;">
      <p><strong>Important:</strong> Please show this email at the cinema counter and pay Rs.%d to confirm your booking and collect your tickets.</p>
      <p>Your booking will be held for 30 minutes after the showtime.</p>
    </div>
    <p>Thank you for choosing Sheshnag Cinema!</p>
    <p style="color: #666; font-size: 12px;">This is an automated email. Please do not reply to this message.</p>
  </div>
</body>
</html>`,
		b.CustomerName, b.ID, b.MovieTitle, b.Showtime,
		tierLabel(b.TicketTier), b.NumberOfTickets, b.TotalAmount, b.TotalAmount)
}
