package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/costurela/costurela/internal/pricing"
)

// Product is one catalog item: its itemized cost lines, its pricing
// inputs, and the prices the last computation (or the seller) set.
// CostPrice and SellingPrice stay nil until something sets them.
type Product struct {
	ID                    int64    `json:"id"`
	Name                  string   `json:"name"`
	Notes                 string   `json:"notes"`
	MaterialCost          float64  `json:"material_cost"`
	SecondaryMaterialCost float64  `json:"secondary_material_cost"`
	HasSecondaryMaterial  bool     `json:"has_secondary_material"`
	AccessoryCost         float64  `json:"accessory_cost"`
	HasAccessory          bool     `json:"has_accessory"`
	SecondaryAccessory    float64  `json:"secondary_accessory_cost"`
	HasSecondaryAccessory bool     `json:"has_secondary_accessory"`
	LaborCost             float64  `json:"labor_cost"`
	PackagingCost         float64  `json:"packaging_cost"`
	DeliveryCost          float64  `json:"delivery_cost"`
	ExtraCost             float64  `json:"extra_cost"`
	ProfitMarginPercent   float64  `json:"profit_margin_percent"`
	MarketingMode         string   `json:"marketing_mode"`
	MarketingAmount       float64  `json:"marketing_amount"`
	CostPrice             *float64 `json:"cost_price"`
	SellingPrice          *float64 `json:"selling_price"`
	Active                bool     `json:"active"`
}

// CostLines assembles the engine's line set from the stored costs plus the
// per-unit fixed-cost share derived from settings.
func (p Product) CostLines(fixedCostShare float64) pricing.CostLines {
	return pricing.CostLines{
		Material:              p.MaterialCost,
		SecondaryMaterial:     p.SecondaryMaterialCost,
		HasSecondaryMaterial:  p.HasSecondaryMaterial,
		Accessory:             p.AccessoryCost,
		HasAccessory:          p.HasAccessory,
		SecondaryAccessory:    p.SecondaryAccessory,
		HasSecondaryAccessory: p.HasSecondaryAccessory,
		Labor:                 p.LaborCost,
		Packaging:             p.PackagingCost,
		Delivery:              p.DeliveryCost,
		Extra:                 p.ExtraCost,
		FixedCostShare:        fixedCostShare,
	}
}

// MarketingInput returns the stored marketing input in engine shape.
func (p Product) MarketingInput() pricing.MarketingInput {
	return pricing.MarketingInput{
		Amount: p.MarketingAmount,
		Mode:   pricing.MarketingMode(p.MarketingMode),
	}
}

const productColumns = `
	id, name, COALESCE(notes, ''),
	material_cost, secondary_material_cost, has_secondary_material,
	accessory_cost, has_accessory, secondary_accessory_cost, has_secondary_accessory,
	labor_cost, packaging_cost, delivery_cost, extra_cost,
	profit_margin_percent, marketing_mode, marketing_amount,
	cost_price, selling_price, active`

func scanProduct(row interface{ Scan(...any) error }) (Product, error) {
	var p Product
	var cost, selling sql.NullFloat64
	err := row.Scan(
		&p.ID, &p.Name, &p.Notes,
		&p.MaterialCost, &p.SecondaryMaterialCost, &p.HasSecondaryMaterial,
		&p.AccessoryCost, &p.HasAccessory, &p.SecondaryAccessory, &p.HasSecondaryAccessory,
		&p.LaborCost, &p.PackagingCost, &p.DeliveryCost, &p.ExtraCost,
		&p.ProfitMarginPercent, &p.MarketingMode, &p.MarketingAmount,
		&cost, &selling, &p.Active,
	)
	if err != nil {
		return Product{}, err
	}
	if cost.Valid {
		v := cost.Float64
		p.CostPrice = &v
	}
	if selling.Valid {
		v := selling.Float64
		p.SellingPrice = &v
	}
	return p, nil
}

func (s *Store) ListProducts(query string) ([]Product, error) {
	search := "%" + query + "%"
	rows, err := s.db.Query(`
		SELECT `+productColumns+`
		FROM products
		WHERE (? = '' OR name LIKE ? OR COALESCE(notes, '') LIKE ?)
		ORDER BY id DESC
	`, query, search, search)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

// GetProduct returns nil when the product does not exist.
func (s *Store) GetProduct(id int64) (*Product, error) {
	row := s.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query product: %w", err)
	}
	return &p, nil
}

func (s *Store) CreateProduct(p Product) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO products (
			name, notes,
			material_cost, secondary_material_cost, has_secondary_material,
			accessory_cost, has_accessory, secondary_accessory_cost, has_secondary_accessory,
			labor_cost, packaging_cost, delivery_cost, extra_cost,
			profit_margin_percent, marketing_mode, marketing_amount,
			cost_price, selling_price, active
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.Name, p.Notes,
		p.MaterialCost, p.SecondaryMaterialCost, p.HasSecondaryMaterial,
		p.AccessoryCost, p.HasAccessory, p.SecondaryAccessory, p.HasSecondaryAccessory,
		p.LaborCost, p.PackagingCost, p.DeliveryCost, p.ExtraCost,
		p.ProfitMarginPercent, p.MarketingMode, p.MarketingAmount,
		p.CostPrice, p.SellingPrice, p.Active,
	)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read product id: %w", err)
	}
	return id, nil
}

// UpdateProduct returns false when the product does not exist.
func (s *Store) UpdateProduct(id int64, p Product) (bool, error) {
	result, err := s.db.Exec(`
		UPDATE products
		SET
			name = ?,
			notes = ?,
			material_cost = ?,
			secondary_material_cost = ?,
			has_secondary_material = ?,
			accessory_cost = ?,
			has_accessory = ?,
			secondary_accessory_cost = ?,
			has_secondary_accessory = ?,
			labor_cost = ?,
			packaging_cost = ?,
			delivery_cost = ?,
			extra_cost = ?,
			profit_margin_percent = ?,
			marketing_mode = ?,
			marketing_amount = ?,
			active = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`,
		p.Name, p.Notes,
		p.MaterialCost, p.SecondaryMaterialCost, p.HasSecondaryMaterial,
		p.AccessoryCost, p.HasAccessory, p.SecondaryAccessory, p.HasSecondaryAccessory,
		p.LaborCost, p.PackagingCost, p.DeliveryCost, p.ExtraCost,
		p.ProfitMarginPercent, p.MarketingMode, p.MarketingAmount,
		p.Active, id,
	)
	if err != nil {
		return false, fmt.Errorf("update product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update product: %w", err)
	}
	return affected > 0, nil
}

// SetComputedPrices persists the prices one pricing run produced: the
// direct-cost total as the cost price and the final price as the selling
// price. Returns false when the product does not exist.
func (s *Store) SetComputedPrices(id int64, costPrice, sellingPrice float64) (bool, error) {
	result, err := s.db.Exec(`
		UPDATE products
		SET cost_price = ?, selling_price = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, costPrice, sellingPrice, id)
	if err != nil {
		return false, fmt.Errorf("set computed prices: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("set computed prices: %w", err)
	}
	return affected > 0, nil
}

// PortfolioEntries projects the active catalog into the engine's
// portfolio entry shape. Products without stored prices still count
// toward the total, so the aggregator can report them as unpriced.
func (s *Store) PortfolioEntries() ([]pricing.Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, name, cost_price, selling_price
		FROM products
		WHERE active = TRUE
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query portfolio entries: %w", err)
	}
	defer rows.Close()

	entries := make([]pricing.Entry, 0)
	for rows.Next() {
		var e pricing.Entry
		var cost, price sql.NullFloat64
		if err := rows.Scan(&e.ID, &e.Name, &cost, &price); err != nil {
			return nil, fmt.Errorf("scan portfolio entry: %w", err)
		}
		if cost.Valid {
			v := cost.Float64
			e.Cost = &v
		}
		if price.Valid {
			v := price.Float64
			e.Price = &v
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate portfolio entries: %w", err)
	}

	return entries, nil
}
