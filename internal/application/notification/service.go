// Package notification tells users about security-relevant changes to their
// account. Delivery is best-effort: failures are logged, never returned.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-api-selfservice/internal/domain"
)

type smsSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

type mailer interface {
	SendEmail(to, subject, body string) error
}

// Notifier fans a message out to every configured channel.
type Notifier struct {
	sms    smsSender
	mail   mailer
	logger *slog.Logger
}

// NewNotifier builds a Notifier. Either channel may be nil to disable it.
func NewNotifier(sms smsSender, mail mailer, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{sms: sms, mail: mail, logger: logger}
}

func (n *Notifier) PasswordChanged(ctx context.Context, u *domain.User) {
	const msg = "The password on your account was just changed. If this wasn't you, contact support immediately."
	n.sendSMS(ctx, u.UserID, u.PhoneNumber, msg)
	n.sendEmail(ctx, u.UserID, u.Email, "Your password was changed", msg)
}

// PhoneChanged alerts the previous number, which is the channel an attacker
// who just replaced it does not control.
func (n *Notifier) PhoneChanged(ctx context.Context, u *domain.User, previousPhone string) {
	msg := fmt.Sprintf("The phone number on your account was changed to %s. If this wasn't you, contact support immediately.", u.PhoneNumber)
	if previousPhone != u.PhoneNumber {
		n.sendSMS(ctx, u.UserID, previousPhone, msg)
	}
	n.sendEmail(ctx, u.UserID, u.Email, "Your phone number was changed", msg)
}

func (n *Notifier) sendSMS(ctx context.Context, userID, to, msg string) {
	if n.sms == nil || to == "" {
		return
	}
	if err := n.sms.SendSMS(ctx, to, msg); err != nil {
		n.logger.WarnContext(ctx, "security SMS not delivered", "user_id", userID, "err", err)
	}
}

func (n *Notifier) sendEmail(ctx context.Context, userID, to, subject, body string) {
	if n.mail == nil || to == "" {
		return
	}
	if err := n.mail.SendEmail(to, subject, body); err != nil {
		n.logger.WarnContext(ctx, "security email not delivered", "user_id", userID, "err", err)
	}
}
