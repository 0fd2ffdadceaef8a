package api

import (
	"context"
	"sync"

	"ticketing/entities"
)

type NotificationsMock struct {
	lock sync.Mutex

	RefundNotices  []entities.RefundNotice
	FailureNotices []entities.RefundFailureNotice

	Err error
}

func (m *NotificationsMock) NotifyOrderRefunded(ctx context.Context, notice entities.RefundNotice) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.RefundNotices = append(m.RefundNotices, notice)
	return nil
}

func (m *NotificationsMock) NotifyRefundFailed(ctx context.Context, notice entities.RefundFailureNotice) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.FailureNotices = append(m.FailureNotices, notice)
	return nil
}
