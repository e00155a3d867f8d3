package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nailsbynatalia/booking-service/internal/domain"
)

const reminderTemplate = "booking_reminder"

// Client talks to the external mail relay. All failures degrade
// gracefully: the caller records the error and retries on a later scan,
// so a relay outage never breaks the reminder pipeline.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a relay client.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendReminder posts one reminder to the relay.
func (c *Client) SendReminder(ctx context.Context, recipient string, booking *domain.Booking) error {
	err := c.send(ctx, recipient, booking)
	if err != nil {
		c.log.Error("notifier: relay unavailable for booking %s: %v", booking.ID, err)
		return fmt.Errorf("%w: booking=%s, error=%v", ErrServiceDegraded, booking.ID, err)
	}

	c.log.Info("notifier: reminder for booking %s delivered to relay", booking.ID)
	return nil
}

func (c *Client) send(ctx context.Context, recipient string, booking *domain.Booking) error {
	payload := reminderPayload{
		Recipient:     recipient,
		Template:      reminderTemplate,
		BookingID:     booking.ID.String(),
		CustomerName:  booking.CustomerName,
		ServiceID:     booking.ServiceID.String(),
		Category:      string(booking.Category),
		CustomerPhone: booking.CustomerPhone,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	url := c.baseURL + "/v1/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
