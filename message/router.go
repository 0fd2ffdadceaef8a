package message

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"

	"ticketing/message/command"
	"ticketing/message/event"
	"ticketing/message/outbox"
)

func NewWatermillRouter(
	pgSubscriber message.Subscriber,
	publisher message.Publisher,
	commandProcessorConfig cqrs.CommandProcessorConfig,
	eventProcessorConfig cqrs.EventProcessorConfig,
	commandHandler command.Handler,
	eventHandler event.Handler,
	watermillLogger watermill.LoggerAdapter,
) *message.Router {
	router, err := message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		panic(err)
	}

	useMiddlewares(router, watermillLogger)

	_, err = outbox.NewForwarder(pgSubscriber, publisher, watermillLogger, router)
	if err != nil {
		panic(err)
	}

	commandProcessor, err := cqrs.NewCommandProcessorWithConfig(router, commandProcessorConfig)
	if err != nil {
		panic(err)
	}

	err = commandProcessor.AddHandlers(
		cqrs.NewCommandHandler(
			"RefundEventOrders",
			commandHandler.RefundEventOrders,
		),
	)
	if err != nil {
		panic(err)
	}

	eventProcessor, err := cqrs.NewEventProcessorWithConfig(router, eventProcessorConfig)
	if err != nil {
		panic(err)
	}

	err = eventProcessor.AddHandlers(
		cqrs.NewEventHandler(
			"RefundCancelledEventOrders",
			eventHandler.OnEventCancelled,
		),
		cqrs.NewEventHandler(
			"NotifyOrderRefunded",
			eventHandler.NotifyOrderRefunded,
		),
		cqrs.NewEventHandler(
			"NotifyOrderRefundFailed",
			eventHandler.NotifyOrderRefundFailed,
		),
		cqrs.NewEventHandler(
			"StoreEventCancelledInAudit",
			eventHandler.StoreEventCancelled,
		),
		cqrs.NewEventHandler(
			"StoreOrderRefundedInAudit",
			eventHandler.StoreOrderRefunded,
		),
		cqrs.NewEventHandler(
			"StoreOrderRefundFailedInAudit",
			eventHandler.StoreOrderRefundFailed,
		),
	)
	if err != nil {
		panic(err)
	}

	return router
}
