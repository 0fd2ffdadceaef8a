package api

import (
	"context"
	"fmt"
	"sync"

	"ticketing/entities"
)

type PaymentsMock struct {
	lock sync.Mutex

	Refunds []entities.PaymentRefund

	// FailFor rejects refunds for the listed payment references,
	// simulating a provider-side error.
	FailFor map[string]error
}

func (m *PaymentsMock) RefundPayment(ctx context.Context, request entities.PaymentRefund) (string, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	if err, ok := m.FailFor[request.PaymentReference]; ok {
		return "", err
	}

	m.Refunds = append(m.Refunds, request)
	return fmt.Sprintf("re_mock_%d", len(m.Refunds)), nil
}
