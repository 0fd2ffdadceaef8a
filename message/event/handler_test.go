package event_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketing/api"
	"ticketing/entities"
	"ticketing/message/event"
)

type commandSenderStub struct {
	sent []any
	err  error
}

func (s *commandSenderStub) Send(ctx context.Context, command any) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, command)
	return nil
}

type auditRepoStub struct {
	stored []entities.AuditEvent
}

func (s *auditRepoStub) Store(ctx context.Context, event entities.AuditEvent) error {
	s.stored = append(s.stored, event)
	return nil
}

func TestOnEventCancelledSendsRefundCommand(t *testing.T) {
	sender := &commandSenderStub{}
	h := event.NewHandler(sender, &api.NotificationsMock{}, &auditRepoStub{}, "ops@example.com")

	cancelled := entities.EventCancelled_v1{
		Header:      entities.NewEventHeaderWithIdempotencyKey("cancel-abc"),
		EventID:     uuid.New(),
		OrganizerID: uuid.New(),
		Reason:      "venue flooded",
	}
	require.NoError(t, h.OnEventCancelled(context.Background(), &cancelled))

	require.Len(t, sender.sent, 1)
	cmd, ok := sender.sent[0].(entities.RefundEventOrders)
	require.True(t, ok)
	assert.Equal(t, cancelled.EventID, cmd.EventID)
	assert.Equal(t, cancelled.OrganizerID, cmd.OrganizerID)
	assert.Equal(t, cancelled.Reason, cmd.Reason)
	assert.Equal(t, "cancel-abc", cmd.Header.IdempotencyKey)
}

func TestOnEventCancelledReturnsSendErrorForRetry(t *testing.T) {
	sender := &commandSenderStub{err: errors.New("redis down")}
	h := event.NewHandler(sender, &api.NotificationsMock{}, &auditRepoStub{}, "ops@example.com")

	err := h.OnEventCancelled(context.Background(), &entities.EventCancelled_v1{
		Header:  entities.NewEventHeader(),
		EventID: uuid.New(),
	})
	assert.Error(t, err)
}

func TestNotifyOrderRefundedBuildsBuyerNotice(t *testing.T) {
	notifier := &api.NotificationsMock{}
	h := event.NewHandler(&commandSenderStub{}, notifier, &auditRepoStub{}, "ops@example.com")

	refunded := entities.OrderRefunded_v1{
		Header:     entities.NewEventHeader(),
		OrderID:    uuid.New(),
		EventID:    uuid.New(),
		EventTitle: "Lagos Jazz Night",
		BuyerEmail: "ada@example.com",
		Amount:     entities.Money{Amount: "5250.00", Currency: "NGN"},
		Reason:     "venue flooded",
	}
	require.NoError(t, h.NotifyOrderRefunded(context.Background(), &refunded))

	require.Len(t, notifier.RefundNotices, 1)
	notice := notifier.RefundNotices[0]
	assert.Equal(t, "ada@example.com", notice.Recipient)
	assert.Equal(t, "Lagos Jazz Night", notice.EventTitle)
	assert.Equal(t, refunded.OrderID, notice.OrderID)
	assert.Equal(t, refunded.Amount, notice.Amount)
}

func TestNotifyOrderRefundedSwallowsSendErrors(t *testing.T) {
	notifier := &api.NotificationsMock{Err: errors.New("smtp: connection refused")}
	h := event.NewHandler(&commandSenderStub{}, notifier, &auditRepoStub{}, "ops@example.com")

	err := h.NotifyOrderRefunded(context.Background(), &entities.OrderRefunded_v1{
		Header:  entities.NewEventHeader(),
		OrderID: uuid.New(),
	})

	// notification is best effort, a failure must not trigger a redelivery
	assert.NoError(t, err)
}

func TestNotifyOrderRefundFailedGoesToOps(t *testing.T) {
	notifier := &api.NotificationsMock{}
	h := event.NewHandler(&commandSenderStub{}, notifier, &auditRepoStub{}, "ops@example.com")

	failed := entities.OrderRefundFailed_v1{
		Header:      entities.NewEventHeader(),
		OrderID:     uuid.New(),
		EventID:     uuid.New(),
		EventTitle:  "Lagos Jazz Night",
		Amount:      entities.Money{Amount: "3000.00", Currency: "NGN"},
		ErrorDetail: "network timeout",
	}
	require.NoError(t, h.NotifyOrderRefundFailed(context.Background(), &failed))

	require.Len(t, notifier.FailureNotices, 1)
	notice := notifier.FailureNotices[0]
	assert.Equal(t, "ops@example.com", notice.Recipient)
	assert.Equal(t, "network timeout", notice.ErrorDetail)
}

func TestStoreOrderRefundedInAudit(t *testing.T) {
	auditRepo := &auditRepoStub{}
	h := event.NewHandler(&commandSenderStub{}, &api.NotificationsMock{}, auditRepo, "ops@example.com")

	refunded := entities.OrderRefunded_v1{
		Header:  entities.NewEventHeader(),
		OrderID: uuid.New(),
		Amount:  entities.Money{Amount: "5250.00", Currency: "NGN"},
	}
	require.NoError(t, h.StoreOrderRefunded(context.Background(), &refunded))

	require.Len(t, auditRepo.stored, 1)
	stored := auditRepo.stored[0]
	assert.Equal(t, refunded.Header.ID, stored.AuditEventID)
	assert.Equal(t, "OrderRefunded_v1", stored.EventName)

	var payload entities.OrderRefunded_v1
	require.NoError(t, json.Unmarshal(stored.EventPayload, &payload))
	assert.Equal(t, refunded.OrderID, payload.OrderID)
}
