package jobs

import (
	"fmt"
	"log/slog"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"flashbooth/internal/pkg/config"
	"flashbooth/internal/pkg/errs"
)

// Notifier delivers day-before reminders to customers.
type Notifier interface {
	SendBookingReminder(phone, customerName, productName, eventDate, eventTime string) error
}

type TwilioNotifier struct {
	client *twilio.RestClient
	from   string
}

// NewNotifier returns the Twilio-backed notifier, or a logging no-op when no
// Twilio account is configured.
func NewNotifier(cfg config.TwilioConfig) Notifier {
	if cfg.AccountSID == "" {
		return NoopNotifier{}
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &TwilioNotifier{client: client, from: cfg.FromNumber}
}

func (n *TwilioNotifier) SendBookingReminder(phone, customerName, productName, eventDate, eventTime string) error {
	body := fmt.Sprintf(
		"Bonjour %s, petit rappel : votre photobooth %s arrive demain (%s à %s). À très vite !",
		customerName, productName, eventDate, eventTime,
	)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(n.from)
	params.SetBody(body)

	resp, err := n.client.Api.CreateMessage(params)
	if err != nil {
		return errs.Wrap(err, "failed to send reminder SMS")
	}
	if resp.Sid != nil {
		slog.Info("reminder SMS sent", "to", phone, "sid", *resp.Sid)
	}
	return nil
}

// NoopNotifier logs instead of sending. Used in development and tests.
type NoopNotifier struct{}

func (NoopNotifier) SendBookingReminder(phone, customerName, productName, eventDate, eventTime string) error {
	slog.Info("reminder suppressed, no SMS backend configured",
		"to", phone, "product", productName, "event_date", eventDate)
	return nil
}
