package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// schema is applied in full at startup; every statement is idempotent.
// Monetary columns are TEXT holding decimal strings (shopspring/decimal
// Valuer/Scanner), never REAL.
const schema = `
CREATE TABLE IF NOT EXISTS counters (
	name  TEXT PRIMARY KEY,
	value INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS settings (
	id              INTEGER PRIMARY KEY CHECK (id = 1),
	company_name    TEXT NOT NULL DEFAULT '',
	company_phone   TEXT NOT NULL DEFAULT '',
	company_email   TEXT NOT NULL DEFAULT '',
	company_address TEXT NOT NULL DEFAULT '',
	tax_rate        TEXT NOT NULL DEFAULT '0',
	invoice_prefix  TEXT NOT NULL DEFAULT 'INV-',
	quote_prefix    TEXT NOT NULL DEFAULT 'QTE-'
);

CREATE TABLE IF NOT EXISTS customers (
	id           INTEGER PRIMARY KEY,
	name         TEXT NOT NULL,
	email        TEXT NOT NULL DEFAULT '',
	phone        TEXT NOT NULL DEFAULT '',
	address      TEXT NOT NULL DEFAULT '',
	city         TEXT NOT NULL DEFAULT '',
	state        TEXT NOT NULL DEFAULT '',
	zip          TEXT NOT NULL DEFAULT '',
	notes        TEXT NOT NULL DEFAULT '',
	portal_token TEXT NOT NULL UNIQUE,
	created_at   TIMESTAMP NOT NULL,
	updated_at   TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	id          INTEGER PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	price       TEXT NOT NULL DEFAULT '0',
	unit        TEXT NOT NULL DEFAULT '',
	is_taxable  INTEGER NOT NULL DEFAULT 1,
	created_at  TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS team_members (
	id         INTEGER PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL DEFAULT '',
	phone      TEXT NOT NULL DEFAULT '',
	role       TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS requests (
	id             INTEGER PRIMARY KEY,
	customer_id    INTEGER NOT NULL,
	title          TEXT NOT NULL DEFAULT '',
	description    TEXT NOT NULL DEFAULT '',
	preferred_date TEXT NOT NULL DEFAULT '',
	status         TEXT NOT NULL DEFAULT 'new',
	created_at     TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS jobs (
	id              INTEGER PRIMARY KEY,
	customer_id     INTEGER NOT NULL,
	quote_id        INTEGER,
	request_id      INTEGER,
	title           TEXT NOT NULL DEFAULT '',
	description     TEXT NOT NULL DEFAULT '',
	status          TEXT NOT NULL DEFAULT 'scheduled',
	scheduled_date  TEXT NOT NULL DEFAULT '',
	scheduled_time  TEXT NOT NULL DEFAULT '',
	assigned_to     INTEGER,
	line_items      TEXT NOT NULL DEFAULT '[]',
	estimated_total TEXT NOT NULL DEFAULT '0',
	completed_at    TIMESTAMP,
	created_at      TIMESTAMP NOT NULL,
	updated_at      TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_jobs_customer ON jobs (customer_id);
CREATE INDEX IF NOT EXISTS idx_jobs_date ON jobs (scheduled_date);

CREATE TABLE IF NOT EXISTS quotes (
	id               INTEGER PRIMARY KEY,
	quote_number     TEXT NOT NULL UNIQUE,
	customer_id      INTEGER NOT NULL,
	title            TEXT NOT NULL DEFAULT '',
	description      TEXT NOT NULL DEFAULT '',
	status           TEXT NOT NULL DEFAULT 'draft',
	subtotal         TEXT NOT NULL DEFAULT '0',
	tax              TEXT NOT NULL DEFAULT '0',
	total            TEXT NOT NULL DEFAULT '0',
	valid_until      TEXT NOT NULL DEFAULT '',
	converted_job_id INTEGER,
	created_at       TIMESTAMP NOT NULL,
	updated_at       TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_quotes_customer ON quotes (customer_id);

CREATE TABLE IF NOT EXISTS quote_items (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	quote_id    INTEGER NOT NULL,
	position    INTEGER NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	quantity    TEXT NOT NULL DEFAULT '0',
	unit_price  TEXT NOT NULL DEFAULT '0',
	line_total  TEXT NOT NULL DEFAULT '0'
);
CREATE INDEX IF NOT EXISTS idx_quote_items_quote ON quote_items (quote_id);

CREATE TABLE IF NOT EXISTS invoices (
	id             INTEGER PRIMARY KEY,
	invoice_number TEXT NOT NULL UNIQUE,
	job_id         INTEGER,
	customer_id    INTEGER NOT NULL,
	status         TEXT NOT NULL DEFAULT 'draft',
	subtotal       TEXT NOT NULL DEFAULT '0',
	tax            TEXT NOT NULL DEFAULT '0',
	total          TEXT NOT NULL DEFAULT '0',
	amount_paid    TEXT NOT NULL DEFAULT '0',
	balance_due    TEXT NOT NULL DEFAULT '0',
	due_date       TEXT NOT NULL DEFAULT '',
	notes          TEXT NOT NULL DEFAULT '',
	sent_at        TIMESTAMP,
	paid_at        TIMESTAMP,
	created_at     TIMESTAMP NOT NULL,
	updated_at     TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_invoices_customer ON invoices (customer_id);

CREATE TABLE IF NOT EXISTS invoice_items (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	invoice_id  INTEGER NOT NULL,
	position    INTEGER NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	quantity    TEXT NOT NULL DEFAULT '0',
	unit_price  TEXT NOT NULL DEFAULT '0',
	line_total  TEXT NOT NULL DEFAULT '0'
);
CREATE INDEX IF NOT EXISTS idx_invoice_items_invoice ON invoice_items (invoice_id);

CREATE TABLE IF NOT EXISTS payments (
	id          INTEGER PRIMARY KEY,
	invoice_id  INTEGER NOT NULL,
	customer_id INTEGER NOT NULL,
	amount      TEXT NOT NULL,
	method      TEXT NOT NULL DEFAULT '',
	reference   TEXT NOT NULL DEFAULT '',
	date        TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_payments_invoice ON payments (invoice_id);
`

// seedSettings inserts the singleton settings row with the company defaults;
// no-op when the row already exists.
const seedSettings = `
INSERT OR IGNORE INTO settings (id, company_name, company_phone, company_email, company_address, tax_rate, invoice_prefix, quote_prefix)
VALUES (1, 'Southern California Well Service', '(760) 440-8520', 'brighton@scwellservice.com',
        '1077 Main St, Ramona, CA 92065', '7.75', 'SCWS-INV-', 'SCWS-QTE-');
`

// InitSchema creates all tables and seeds the settings singleton.
func InitSchema(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	if _, err := db.Exec(seedSettings); err != nil {
		return fmt.Errorf("seed settings: %w", err)
	}
	return nil
}
