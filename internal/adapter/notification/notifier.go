package notification

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/srgjo27/campus_event/internal/core/domain"
)

const dateLayout = "Monday, 02 January 2006"

// Notifier turns domain events into email messages and hands them to a
// Sender, which is either the email gateway or the queue in front of it.
type Notifier struct {
	sender      Sender
	frontendURL string
	log         zerolog.Logger
	now         func() time.Time
}

func NewNotifier(sender Sender, frontendURL string, log zerolog.Logger) *Notifier {
	return &Notifier{
		sender:      sender,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		log:         log.With().Str("component", "notifier").Logger(),
		now:         time.Now,
	}
}

func (n *Notifier) NotifyPaymentConfirmed(ctx context.Context, detail *domain.RegistrationDetail) error {
	confirmedAt := n.now()
	if detail.Registration.PaymentConfirmedAt != nil {
		confirmedAt = *detail.Registration.PaymentConfirmedAt
	}

	body, err := render(paymentConfirmedTmpl, paymentConfirmedData{
		UserName:    detail.UserName,
		EventTitle:  detail.EventTitle,
		StartsAt:    detail.EventStartsAt.Format(dateLayout + " 15:04 MST"),
		Location:    detail.EventLocation,
		Amount:      detail.Registration.AmountPaid.StringFixed(2),
		ConfirmedAt: confirmedAt.Format(dateLayout),
	})
	if err != nil {
		return fmt.Errorf("failed to render payment email: %w", err)
	}

	return n.send(ctx, Message{
		To:      detail.UserEmail,
		Subject: "Pembayaran Dikonfirmasi - " + detail.EventTitle,
		Body:    body,
		IsHTML:  true,
	})
}

func (n *Notifier) NotifyWelcome(ctx context.Context, user *domain.User) error {
	return n.send(ctx, Message{
		To:      user.Email,
		Subject: "Welcome to Web Event",
		Body:    fmt.Sprintf("Welcome %s! Your account has been created successfully.", user.Name),
	})
}

func (n *Notifier) NotifyPasswordReset(ctx context.Context, user *domain.User, token string) error {
	link := n.frontendURL + "/reset-password?token=" + url.QueryEscape(token)

	return n.send(ctx, Message{
		To:      user.Email,
		Subject: "Reset Password",
		Body:    "Click this link to reset your password: " + link,
	})
}

func (n *Notifier) send(ctx context.Context, msg Message) error {
	if err := n.sender.Send(ctx, msg); err != nil {
		return err
	}

	n.log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("notification sent")
	return nil
}
