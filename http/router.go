package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

func NewHttpRouter(
	eventBus EventPublisher,
	orchestrator RefundOrchestrator,
	eventRepo EventRepository,
	refundRepo RefundRequestRepository,
	ticketRepo TicketRepository,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(otelecho.Middleware("ticketing"))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handler := Handler{
		eventBus:     eventBus,
		orchestrator: orchestrator,
		eventRepo:    eventRepo,
		refundRepo:   refundRepo,
		ticketRepo:   ticketRepo,
	}

	e.POST("/events/:event_id/cancel", handler.PostEventCancel)
	e.POST("/events/:event_id/refunds", handler.PostEventRefunds)
	e.GET("/events/:event_id/refunds", handler.GetEventRefunds)
	e.GET("/orders/:order_id/tickets", handler.GetOrderTickets)

	return e
}
