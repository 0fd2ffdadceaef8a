package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"ticketing/db"
	"ticketing/entities"
)

type cancelEventRequest struct {
	Reason      string    `json:"reason"`
	OrganizerID uuid.UUID `json:"organizer_id"`
}

// PostEventCancel marks the event cancelled and publishes
// EventCancelled_v1; refunds then run asynchronously through the
// RefundEventOrders command. Repeating the call is safe.
func (h Handler) PostEventCancel(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("event_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	var request cancelEventRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	ctx := c.Request().Context()

	if _, err := h.eventRepo.ByID(ctx, eventID); err != nil {
		if errors.Is(err, db.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "event not found")
		}
		return fmt.Errorf("loading event: %w", err)
	}

	if err := h.eventRepo.Cancel(ctx, eventID, request.Reason, time.Now().UTC()); err != nil {
		return fmt.Errorf("cancelling event: %w", err)
	}

	event := entities.EventCancelled_v1{
		Header:      entities.NewEventHeaderWithIdempotencyKey("cancel-" + eventID.String()),
		EventID:     eventID,
		OrganizerID: request.OrganizerID,
		Reason:      request.Reason,
	}
	if err := h.eventBus.Publish(ctx, event); err != nil {
		return fmt.Errorf("failed to publish EventCancelled_v1: %w", err)
	}

	return c.JSON(http.StatusAccepted, echo.Map{
		"event_id": eventID,
		"status":   entities.EventStatusCancelled,
	})
}
