package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketing/db"
	"ticketing/entities"
	ticketingHttp "ticketing/http"
	"ticketing/refunds"
)

type publisherStub struct {
	published []any
}

func (s *publisherStub) Publish(ctx context.Context, event any) error {
	s.published = append(s.published, event)
	return nil
}

type orchestratorStub struct {
	summary  refunds.Summary
	err      error
	received []entities.RefundEventOrders
}

func (s *orchestratorStub) Process(ctx context.Context, cmd entities.RefundEventOrders) (refunds.Summary, error) {
	s.received = append(s.received, cmd)
	return s.summary, s.err
}

type eventRepoStub struct {
	events    map[uuid.UUID]entities.Event
	cancelled []uuid.UUID
}

func (s *eventRepoStub) ByID(ctx context.Context, eventID uuid.UUID) (entities.Event, error) {
	event, ok := s.events[eventID]
	if !ok {
		return entities.Event{}, fmt.Errorf("event %s: %w", eventID, db.ErrEventNotFound)
	}
	return event, nil
}

func (s *eventRepoStub) Cancel(ctx context.Context, eventID uuid.UUID, reason string, at time.Time) error {
	s.cancelled = append(s.cancelled, eventID)
	return nil
}

type refundRepoStub struct {
	requests map[uuid.UUID][]entities.RefundRequest
}

func (s *refundRepoStub) ByEvent(ctx context.Context, eventID uuid.UUID) ([]entities.RefundRequest, error) {
	return s.requests[eventID], nil
}

type ticketRepoStub struct {
	tickets map[uuid.UUID][]entities.Ticket
}

func (s *ticketRepoStub) ByOrder(ctx context.Context, orderID uuid.UUID) ([]entities.Ticket, error) {
	return s.tickets[orderID], nil
}

type routerFixture struct {
	eventBus     *publisherStub
	orchestrator *orchestratorStub
	eventRepo    *eventRepoStub
	refundRepo   *refundRepoStub
	ticketRepo   *ticketRepoStub

	router *echo.Echo
}

func newRouterFixture() *routerFixture {
	f := &routerFixture{
		eventBus:     &publisherStub{},
		orchestrator: &orchestratorStub{},
		eventRepo:    &eventRepoStub{events: map[uuid.UUID]entities.Event{}},
		refundRepo:   &refundRepoStub{requests: map[uuid.UUID][]entities.RefundRequest{}},
		ticketRepo:   &ticketRepoStub{tickets: map[uuid.UUID][]entities.Ticket{}},
	}
	f.router = ticketingHttp.NewHttpRouter(f.eventBus, f.orchestrator, f.eventRepo, f.refundRepo, f.ticketRepo)
	return f
}

func (f *routerFixture) do(method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestPostEventCancelPublishesEvent(t *testing.T) {
	f := newRouterFixture()
	eventID := uuid.New()
	organizerID := uuid.New()
	f.eventRepo.events[eventID] = entities.Event{EventID: eventID, OrganizerID: organizerID}

	body := fmt.Sprintf(`{"reason":"venue flooded","organizer_id":%q}`, organizerID)
	rec := f.do(http.MethodPost, "/events/"+eventID.String()+"/cancel", body)

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, []uuid.UUID{eventID}, f.eventRepo.cancelled)

	require.Len(t, f.eventBus.published, 1)
	published, ok := f.eventBus.published[0].(entities.EventCancelled_v1)
	require.True(t, ok)
	assert.Equal(t, eventID, published.EventID)
	assert.Equal(t, organizerID, published.OrganizerID)
	assert.Equal(t, "venue flooded", published.Reason)
	assert.Equal(t, "cancel-"+eventID.String(), published.Header.IdempotencyKey)
}

func TestPostEventCancelUnknownEventReturns404(t *testing.T) {
	f := newRouterFixture()

	rec := f.do(http.MethodPost, "/events/"+uuid.NewString()+"/cancel", `{}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, f.eventBus.published)
}

func TestPostEventCancelInvalidIDReturns400(t *testing.T) {
	f := newRouterFixture()

	rec := f.do(http.MethodPost, "/events/not-a-uuid/cancel", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostEventRefundsReturnsSummary(t *testing.T) {
	f := newRouterFixture()
	eventID := uuid.New()
	orderID := uuid.New()
	f.orchestrator.summary = refunds.Summary{
		Success:       true,
		RefundedCount: 1,
		Details: []refunds.Detail{{
			OrderID: orderID,
			Amount:  entities.Money{Amount: "5250.00", Currency: "NGN"},
			Status:  refunds.StatusRefunded,
		}},
	}

	rec := f.do(http.MethodPost, "/events/"+eventID.String()+"/refunds", `{"reason":"venue flooded"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var summary refunds.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.True(t, summary.Success)
	assert.Equal(t, 1, summary.RefundedCount)
	require.Len(t, summary.Details, 1)
	assert.Equal(t, orderID, summary.Details[0].OrderID)

	require.Len(t, f.orchestrator.received, 1)
	assert.Equal(t, eventID, f.orchestrator.received[0].EventID)
	assert.Equal(t, "venue flooded", f.orchestrator.received[0].Reason)
}

func TestPostEventRefundsUnknownEventReturns404(t *testing.T) {
	f := newRouterFixture()
	f.orchestrator.err = fmt.Errorf("event: %w", db.ErrEventNotFound)

	rec := f.do(http.MethodPost, "/events/"+uuid.NewString()+"/refunds", `{}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetEventRefundsListsRequests(t *testing.T) {
	f := newRouterFixture()
	eventID := uuid.New()
	f.refundRepo.requests[eventID] = []entities.RefundRequest{{
		RefundRequestID: uuid.New(),
		OrderID:         uuid.New(),
		EventID:         eventID,
		Amount:          entities.Money{Amount: "3000.00", Currency: "NGN"},
		Status:          entities.RefundRequestProcessed,
	}}

	rec := f.do(http.MethodGet, "/events/"+eventID.String()+"/refunds", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var requests []entities.RefundRequest
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &requests))
	require.Len(t, requests, 1)
	assert.Equal(t, eventID, requests[0].EventID)
}

func TestGetOrderTickets(t *testing.T) {
	f := newRouterFixture()
	orderID := uuid.New()
	f.ticketRepo.tickets[orderID] = []entities.Ticket{{
		TicketID: uuid.New(),
		OrderID:  orderID,
		Price:    entities.Money{Amount: "2625.00", Currency: "NGN"},
	}}

	rec := f.do(http.MethodGet, "/orders/"+orderID.String()+"/tickets", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var tickets []entities.Ticket
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tickets))
	require.Len(t, tickets, 1)
	assert.Equal(t, orderID, tickets[0].OrderID)
}
