package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"ticketing/db"
	"ticketing/entities"
)

type refundEventRequest struct {
	Reason      string    `json:"reason"`
	OrganizerID uuid.UUID `json:"organizer_id"`
}

// PostEventRefunds runs the refund loop synchronously and returns the
// summary, for admin tooling that wants to watch the outcome.
func (h Handler) PostEventRefunds(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("event_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	var request refundEventRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	summary, err := h.orchestrator.Process(c.Request().Context(), entities.RefundEventOrders{
		Header:      entities.NewEventHeaderWithIdempotencyKey("refund-event-" + eventID.String()),
		EventID:     eventID,
		OrganizerID: request.OrganizerID,
		Reason:      request.Reason,
	})
	if errors.Is(err, db.ErrEventNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "event not found")
	}
	if err != nil {
		return fmt.Errorf("refunding event orders: %w", err)
	}

	return c.JSON(http.StatusOK, summary)
}

func (h Handler) GetEventRefunds(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("event_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	requests, err := h.refundRepo.ByEvent(c.Request().Context(), eventID)
	if err != nil {
		return fmt.Errorf("loading refund requests: %w", err)
	}

	return c.JSON(http.StatusOK, requests)
}
