package store

import (
	"encoding/json"
	"fmt"

	"github.com/costurela/costurela/internal/pricing"
)

// Snapshot is one persisted pricing result for a product. Snapshots are
// immutable; recomputing appends a new row instead of touching old ones.
type Snapshot struct {
	ID        int64             `json:"id"`
	ProductID int64             `json:"product_id"`
	CreatedAt string            `json:"created_at"`
	Breakdown pricing.Breakdown `json:"breakdown"`
}

func (s *Store) InsertSnapshot(productID int64, b pricing.Breakdown) (int64, error) {
	payload, err := json.Marshal(b)
	if err != nil {
		return 0, fmt.Errorf("marshal breakdown: %w", err)
	}

	res, err := s.db.Exec(`
		INSERT INTO price_snapshots (product_id, breakdown_json)
		VALUES (?, ?)
	`, productID, string(payload))
	if err != nil {
		return 0, fmt.Errorf("insert price snapshot: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read snapshot id: %w", err)
	}
	return id, nil
}

// ListSnapshots returns a product's pricing history, newest first.
func (s *Store) ListSnapshots(productID int64) ([]Snapshot, error) {
	rows, err := s.db.Query(`
		SELECT id, product_id, created_at, breakdown_json
		FROM price_snapshots
		WHERE product_id = ?
		ORDER BY datetime(created_at) DESC, id DESC
	`, productID)
	if err != nil {
		return nil, fmt.Errorf("query price snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := make([]Snapshot, 0)
	for rows.Next() {
		var snap Snapshot
		var breakdownJSON string
		if err := rows.Scan(&snap.ID, &snap.ProductID, &snap.CreatedAt, &breakdownJSON); err != nil {
			return nil, fmt.Errorf("scan price snapshot: %w", err)
		}
		// A snapshot with an unreadable payload renders as zeros rather
		// than failing the whole history.
		_ = json.Unmarshal([]byte(breakdownJSON), &snap.Breakdown)
		snapshots = append(snapshots, snap)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate price snapshots: %w", err)
	}

	return snapshots, nil
}
