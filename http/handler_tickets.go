package http

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func (h Handler) GetOrderTickets(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	tickets, err := h.ticketRepo.ByOrder(c.Request().Context(), orderID)
	if err != nil {
		return fmt.Errorf("loading tickets: %w", err)
	}

	return c.JSON(http.StatusOK, tickets)
}
