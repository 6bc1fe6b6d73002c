package store

import (
	"database/sql"
	"errors"
	"fmt"
)

// Settings is the seller-wide pricing configuration singleton: the default
// profit margin, the default marketing input, and the monthly overhead
// figures the per-unit fixed-cost share is derived from.
type Settings struct {
	ProfitMarginPercent  float64 `json:"profit_margin_percent"`
	MarketingMode        string  `json:"marketing_mode"`
	MarketingAmount      float64 `json:"marketing_amount"`
	MonthlyFixedCosts    float64 `json:"monthly_fixed_costs"`
	ExpectedMonthlySales float64 `json:"expected_monthly_sales"`
	Currency             string  `json:"currency"`
}

// EnsureSettings inserts the settings singleton with defaults if missing.
func (s *Store) EnsureSettings() error {
	_, err := s.db.Exec(`
		INSERT INTO settings (id, profit_margin_percent, marketing_mode, marketing_amount, monthly_fixed_costs, expected_monthly_sales, currency)
		VALUES (1, 30, 'fixed', 0, 0, 0, 'COP')
		ON CONFLICT(id) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("insert default settings: %w", err)
	}
	return nil
}

func (s *Store) GetSettings() (Settings, error) {
	if err := s.EnsureSettings(); err != nil {
		return Settings{}, err
	}

	var st Settings
	err := s.db.QueryRow(`
		SELECT profit_margin_percent, marketing_mode, marketing_amount, monthly_fixed_costs, expected_monthly_sales, currency
		FROM settings
		WHERE id = 1
	`).Scan(
		&st.ProfitMarginPercent,
		&st.MarketingMode,
		&st.MarketingAmount,
		&st.MonthlyFixedCosts,
		&st.ExpectedMonthlySales,
		&st.Currency,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Settings{}, fmt.Errorf("settings singleton not found")
		}
		return Settings{}, fmt.Errorf("query settings: %w", err)
	}
	return st, nil
}

func (s *Store) UpdateSettings(st Settings) error {
	_, err := s.db.Exec(`
		UPDATE settings
		SET
			profit_margin_percent = ?,
			marketing_mode = ?,
			marketing_amount = ?,
			monthly_fixed_costs = ?,
			expected_monthly_sales = ?,
			currency = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = 1
	`,
		st.ProfitMarginPercent,
		st.MarketingMode,
		st.MarketingAmount,
		st.MonthlyFixedCosts,
		st.ExpectedMonthlySales,
		st.Currency,
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}

	return nil
}
