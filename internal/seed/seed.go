package seed

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
)

const demoProductName = "Camiseta básica (demo)"

var defaultPaymentMethods = []struct {
	name          string
	percentageFee float64
	fixedFee      float64
	taxRate       float64
}{
	{"Tarjeta (pasarela)", 0.0299, 900, 0.19},
	{"Transferencia", 0.02, 0, 0.19},
}

// Config contains the values required by startup seed.
type Config struct {
	AdminEmail    string
	AdminPassword string
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
	Updates int
}

// Run executes the startup seed in an idempotent way.
func Run(db *sql.DB, cfg Config) (Stats, error) {
	tx, err := db.Begin()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	if err := seedAdmin(tx, cfg.AdminEmail, cfg.AdminPassword, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureSettings(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensurePaymentMethods(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}
	if err := ensureDemoProduct(tx, &stats); err != nil {
		_ = tx.Rollback()
		return Stats{}, err
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func seedAdmin(tx *sql.Tx, email, password string, stats *Stats) error {
	if email == "" || password == "" {
		return nil
	}

	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE email = ? LIMIT 1)`, email).Scan(&exists); err != nil {
		return fmt.Errorf("check admin user existence: %w", err)
	}
	if exists {
		return nil
	}

	sum := sha256.Sum256([]byte(password))
	if _, err := tx.Exec(`INSERT INTO users (email, password_hash) VALUES (?, ?)`, email, hex.EncodeToString(sum[:])); err != nil {
		return fmt.Errorf("insert admin user: %w", err)
	}
	stats.Inserts++
	return nil
}

func ensureSettings(tx *sql.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM settings WHERE id = 1)`).Scan(&exists); err != nil {
		return fmt.Errorf("check settings existence: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := tx.Exec(`
		INSERT INTO settings (id, profit_margin_percent, marketing_mode, marketing_amount, monthly_fixed_costs, expected_monthly_sales, currency)
		VALUES (1, 30, 'fixed', 0, 0, 0, 'COP')
	`); err != nil {
		return fmt.Errorf("insert settings singleton: %w", err)
	}
	stats.Inserts++
	return nil
}

func ensurePaymentMethods(tx *sql.Tx, stats *Stats) error {
	var count int
	if err := tx.QueryRow(`SELECT COUNT(1) FROM payment_methods`).Scan(&count); err != nil {
		return fmt.Errorf("count payment methods: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, m := range defaultPaymentMethods {
		if _, err := tx.Exec(`
			INSERT INTO payment_methods (name, percentage_fee, fixed_fee, tax_rate, enabled)
			VALUES (?, ?, ?, ?, TRUE)
		`, m.name, m.percentageFee, m.fixedFee, m.taxRate); err != nil {
			return fmt.Errorf("insert default payment method: %w", err)
		}
		stats.Inserts++
	}
	return nil
}

func ensureDemoProduct(tx *sql.Tx, stats *Stats) error {
	var exists bool
	if err := tx.QueryRow(`SELECT EXISTS(SELECT 1 FROM products WHERE name = ? LIMIT 1)`, demoProductName).Scan(&exists); err != nil {
		return fmt.Errorf("check demo product existence: %w", err)
	}
	if exists {
		return nil
	}

	if _, err := tx.Exec(`
		INSERT INTO products (name, notes, material_cost, labor_cost, packaging_cost, delivery_cost, profit_margin_percent, marketing_mode, marketing_amount, active)
		VALUES (?, 'Producto de ejemplo', 50, 20, 5, 5, 30, 'fixed', 0, TRUE)
	`, demoProductName); err != nil {
		return fmt.Errorf("insert demo product: %w", err)
	}
	stats.Inserts++
	return nil
}
