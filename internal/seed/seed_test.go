package seed

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func newSeedTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL
		);
		CREATE TABLE settings (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			profit_margin_percent NUMERIC NOT NULL,
			marketing_mode TEXT NOT NULL,
			marketing_amount NUMERIC NOT NULL,
			monthly_fixed_costs NUMERIC NOT NULL,
			expected_monthly_sales NUMERIC NOT NULL,
			currency TEXT NOT NULL
		);
		CREATE TABLE payment_methods (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			percentage_fee NUMERIC NOT NULL,
			fixed_fee NUMERIC NOT NULL,
			tax_rate NUMERIC NOT NULL,
			enabled BOOLEAN NOT NULL
		);
		CREATE TABLE products (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			notes TEXT,
			material_cost NUMERIC NOT NULL DEFAULT 0,
			labor_cost NUMERIC NOT NULL DEFAULT 0,
			packaging_cost NUMERIC NOT NULL DEFAULT 0,
			delivery_cost NUMERIC NOT NULL DEFAULT 0,
			profit_margin_percent NUMERIC NOT NULL DEFAULT 30,
			marketing_mode TEXT NOT NULL DEFAULT 'fixed',
			marketing_amount NUMERIC NOT NULL DEFAULT 0,
			active BOOLEAN NOT NULL DEFAULT TRUE
		);
	`)
	if err != nil {
		t.Fatalf("failed creating schema: %v", err)
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRunSeedsEverythingOnce(t *testing.T) {
	db := newSeedTestDB(t)

	stats, err := Run(db, Config{AdminEmail: "admin@costurela.co", AdminPassword: "secreto"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	// admin + settings + 2 payment methods + demo product.
	if stats.Inserts != 5 {
		t.Fatalf("expected 5 inserts, got %d", stats.Inserts)
	}

	var enabled int
	if err := db.QueryRow(`SELECT COUNT(1) FROM payment_methods WHERE enabled = TRUE`).Scan(&enabled); err != nil {
		t.Fatalf("count payment methods: %v", err)
	}
	if enabled != 2 {
		t.Fatalf("expected 2 enabled payment methods, got %d", enabled)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	db := newSeedTestDB(t)
	cfg := Config{AdminEmail: "admin@costurela.co", AdminPassword: "secreto"}

	if _, err := Run(db, cfg); err != nil {
		t.Fatalf("first Run returned error: %v", err)
	}

	stats, err := Run(db, cfg)
	if err != nil {
		t.Fatalf("second Run returned error: %v", err)
	}
	if stats.Inserts != 0 {
		t.Fatalf("expected 0 inserts on second run, got %d", stats.Inserts)
	}
}

func TestRunWithoutAdminCredentialsSkipsAdmin(t *testing.T) {
	db := newSeedTestDB(t)

	if _, err := Run(db, Config{}); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	var users int
	if err := db.QueryRow(`SELECT COUNT(1) FROM users`).Scan(&users); err != nil {
		t.Fatalf("count users: %v", err)
	}
	if users != 0 {
		t.Fatalf("expected no users, got %d", users)
	}
}
