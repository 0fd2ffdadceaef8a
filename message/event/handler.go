package event

import (
	"context"

	"ticketing/entities"
)

type CommandSender interface {
	Send(ctx context.Context, command any) error
}

type NotificationSender interface {
	NotifyOrderRefunded(ctx context.Context, notice entities.RefundNotice) error
	NotifyRefundFailed(ctx context.Context, notice entities.RefundFailureNotice) error
}

type AuditRepository interface {
	Store(ctx context.Context, event entities.AuditEvent) error
}

type Handler struct {
	commandSender CommandSender
	notifier      NotificationSender
	auditRepo     AuditRepository
	opsEmail      string
}

func NewHandler(
	commandSender CommandSender,
	notifier NotificationSender,
	auditRepo AuditRepository,
	opsEmail string,
) Handler {
	if commandSender == nil {
		panic("missing commandSender")
	}
	if notifier == nil {
		panic("missing notifier")
	}
	if auditRepo == nil {
		panic("missing auditRepo")
	}

	return Handler{
		commandSender: commandSender,
		notifier:      notifier,
		auditRepo:     auditRepo,
		opsEmail:      opsEmail,
	}
}
