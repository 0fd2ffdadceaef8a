package db

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrEventNotFound aborts the whole refund invocation: there is
	// nothing to iterate.
	ErrEventNotFound = errors.New("event not found")

	// ErrOrderNotRefundable means the order is no longer in the
	// completed state, usually because a concurrent invocation already
	// refunded it.
	ErrOrderNotRefundable = errors.New("order is not in a refundable state")
)

const (
	postgresUniqueValueViolationErrorCode = "23505"
)

func isErrorUniqueViolation(err error) bool {
	var psqlErr *pq.Error
	return errors.As(err, &psqlErr) && psqlErr.Code == postgresUniqueValueViolationErrorCode
}
