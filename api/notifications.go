package api

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"ticketing/entities"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// EmailNotifier sends refund notices over SMTP. Callers treat delivery
// as best effort.
type EmailNotifier struct {
	cfg SMTPConfig
}

func NewEmailNotifier(cfg SMTPConfig) EmailNotifier {
	if cfg.Host == "" {
		panic("NewEmailNotifier: SMTP host is empty")
	}
	if cfg.From == "" {
		panic("NewEmailNotifier: from address is empty")
	}

	return EmailNotifier{cfg: cfg}
}

func (n EmailNotifier) NotifyOrderRefunded(ctx context.Context, notice entities.RefundNotice) error {
	subject := fmt.Sprintf("Your order for %s has been refunded", notice.EventTitle)
	return n.send(ctx, notice.Recipient, subject, renderRefundNotice(notice))
}

func (n EmailNotifier) NotifyRefundFailed(ctx context.Context, notice entities.RefundFailureNotice) error {
	subject := fmt.Sprintf("Refund failed for order %s", notice.OrderID)
	return n.send(ctx, notice.Recipient, subject, renderFailureNotice(notice))
}

func (n EmailNotifier) send(ctx context.Context, to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	if err := msg.From(n.cfg.From); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(n.cfg.Host,
		mail.WithPort(n.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(n.cfg.Username),
		mail.WithPassword(n.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	return client.DialAndSendWithContext(ctx, msg)
}
