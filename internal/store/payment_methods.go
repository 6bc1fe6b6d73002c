package store

import (
	"fmt"

	"github.com/costurela/costurela/internal/pricing"
)

// PaymentMethod is one payment-processing option and its fee parameters.
type PaymentMethod struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	PercentageFee float64 `json:"percentage_fee"`
	FixedFee      float64 `json:"fixed_fee"`
	TaxRate       float64 `json:"tax_rate"`
	Enabled       bool    `json:"enabled"`
}

// FeeRule converts the stored method into the engine's fee rule shape.
func (m PaymentMethod) FeeRule() pricing.FeeRule {
	return pricing.FeeRule{
		PercentageFee: m.PercentageFee,
		FixedFee:      m.FixedFee,
		TaxRate:       m.TaxRate,
	}
}

func (s *Store) ListPaymentMethods() ([]PaymentMethod, error) {
	rows, err := s.db.Query(`
		SELECT id, name, percentage_fee, fixed_fee, tax_rate, enabled
		FROM payment_methods
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query payment methods: %w", err)
	}
	defer rows.Close()

	methods := make([]PaymentMethod, 0)
	for rows.Next() {
		var m PaymentMethod
		if err := rows.Scan(&m.ID, &m.Name, &m.PercentageFee, &m.FixedFee, &m.TaxRate, &m.Enabled); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		methods = append(methods, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment methods: %w", err)
	}

	return methods, nil
}

func (s *Store) CreatePaymentMethod(m PaymentMethod) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO payment_methods (name, percentage_fee, fixed_fee, tax_rate, enabled)
		VALUES (?, ?, ?, ?, ?)
	`, m.Name, m.PercentageFee, m.FixedFee, m.TaxRate, m.Enabled)
	if err != nil {
		return 0, fmt.Errorf("insert payment method: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read payment method id: %w", err)
	}
	return id, nil
}

// UpdatePaymentMethod returns false when the method does not exist.
func (s *Store) UpdatePaymentMethod(id int64, m PaymentMethod) (bool, error) {
	result, err := s.db.Exec(`
		UPDATE payment_methods
		SET
			name = ?,
			percentage_fee = ?,
			fixed_fee = ?,
			tax_rate = ?,
			enabled = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, m.Name, m.PercentageFee, m.FixedFee, m.TaxRate, m.Enabled, id)
	if err != nil {
		return false, fmt.Errorf("update payment method: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update payment method: %w", err)
	}
	return affected > 0, nil
}

// Combined fees are compared at a reference pre-fee price; the ranking is
// stable for any positive reference because every fee component grows
// monotonically.
const feeComparisonReferencePrice = 100.0

// WorstCaseFeeRule picks the enabled method with the highest combined fee,
// the conservative estimate pricing uses. Returns nil when no method is
// enabled, which callers must surface as a data-quality warning.
func (s *Store) WorstCaseFeeRule() (*pricing.FeeRule, error) {
	methods, err := s.ListPaymentMethods()
	if err != nil {
		return nil, err
	}

	var worst *pricing.FeeRule
	var worstFee float64
	for _, m := range methods {
		if !m.Enabled {
			continue
		}
		rule := m.FeeRule()
		fee := rule.FeeOn(feeComparisonReferencePrice)
		if worst == nil || fee > worstFee {
			r := rule
			worst = &r
			worstFee = fee
		}
	}

	return worst, nil
}
