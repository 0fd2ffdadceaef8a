package db

var schema = `
CREATE EXTENSION IF NOT EXISTS "uuid-ossp";

CREATE TABLE IF NOT EXISTS events (
	event_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	parent_event_id UUID,
	organizer_id UUID NOT NULL,
	title VARCHAR(255) NOT NULL,
	status VARCHAR(32) NOT NULL DEFAULT 'published',
	starts_at TIMESTAMPTZ NOT NULL,
	ends_at TIMESTAMPTZ,
	cancelled_at TIMESTAMPTZ,
	cancellation_reason TEXT
);

CREATE INDEX IF NOT EXISTS idx_events_parent ON events (parent_event_id);

CREATE TABLE IF NOT EXISTS orders (
	order_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	event_id UUID NOT NULL,
	buyer_email VARCHAR(255) NOT NULL,
	buyer_name VARCHAR(255) NOT NULL DEFAULT '',
	total_amount NUMERIC(10, 2) NOT NULL,
	total_currency CHAR(3) NOT NULL,
	status VARCHAR(32) NOT NULL DEFAULT 'pending',
	payment_reference VARCHAR(255) NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_orders_event_status ON orders (event_id, status);

CREATE TABLE IF NOT EXISTS tickets (
	ticket_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	order_id UUID NOT NULL,
	event_id UUID NOT NULL,
	attendee_email VARCHAR(255) NOT NULL,
	price_amount NUMERIC(10, 2) NOT NULL,
	price_currency CHAR(3) NOT NULL,
	status VARCHAR(32) NOT NULL DEFAULT 'active',
	payment_status VARCHAR(32) NOT NULL DEFAULT 'completed',
	refunded_at TIMESTAMPTZ,
	refund_reason TEXT
);

CREATE INDEX IF NOT EXISTS idx_tickets_order ON tickets (order_id);

CREATE TABLE IF NOT EXISTS refund_requests (
	refund_request_id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
	order_id UUID NOT NULL,
	event_id UUID NOT NULL,
	amount NUMERIC(10, 2) NOT NULL,
	currency CHAR(3) NOT NULL,
	status VARCHAR(32) NOT NULL DEFAULT 'pending',
	provider_refund_id VARCHAR(255),
	error_detail TEXT,
	requested_by UUID,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_refund_requests_processed_once
	ON refund_requests (order_id) WHERE status = 'processed';

CREATE TABLE IF NOT EXISTS events_audit (
	audit_event_id UUID PRIMARY KEY,
	published_at TIMESTAMPTZ NOT NULL,
	event_name VARCHAR(255) NOT NULL,
	event_payload JSONB NOT NULL
);
`
