// Package store persists the seller's catalog, pricing settings and
// payment methods in SQLite. It owns all SQL; the pricing engine never
// touches the database.
package store

import "database/sql"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}
