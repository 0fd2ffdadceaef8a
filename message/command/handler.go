package command

import (
	"context"

	"ticketing/entities"
	"ticketing/refunds"
)

type RefundOrchestrator interface {
	Process(ctx context.Context, cmd entities.RefundEventOrders) (refunds.Summary, error)
}

type Handler struct {
	orchestrator RefundOrchestrator
}

func NewHandler(orchestrator RefundOrchestrator) Handler {
	if orchestrator == nil {
		panic("orchestrator is required")
	}

	return Handler{orchestrator: orchestrator}
}
