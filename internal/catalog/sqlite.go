// Package catalog provides the product catalog backing the assistant's
// search and detail tools, persisted in a local SQLite database.
package catalog

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	logx "github.com/liwaisi-tech/ai-micro-businesses-assistant/pkg/logger"
)

// Product is one sellable item or service.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	InStock     bool    `json:"in_stock"`
}

// Repository is a SQLite-backed product store.
type Repository struct {
	db *sql.DB
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS products (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	category    TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	price       REAL NOT NULL,
	in_stock    INTEGER NOT NULL DEFAULT 1
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
`

// Open opens (creating if needed) the catalog database at path and ensures
// the schema exists. An empty catalog is seeded with the demo product set.
func Open(path string) (*Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open catalog db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure catalog schema: %w", err)
	}

	repo := &Repository{db: db}
	n, err := repo.count()
	if err != nil {
		db.Close()
		return nil, err
	}
	if n == 0 {
		if err := repo.seed(); err != nil {
			db.Close()
			return nil, err
		}
		logx.Info().Str("path", path).Int("products", len(seedProducts)).Msg("seeded empty product catalog")
	}

	return repo, nil
}

// Close releases the underlying database handle.
func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) count() (int, error) {
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM products").Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (r *Repository) seed() error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO products (id, name, category, description, price, in_stock)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	defer stmt.Close()

	for _, p := range seedProducts {
		if _, err := stmt.Exec(p.ID, p.Name, p.Category, p.Description, p.Price, boolToInt(p.InStock)); err != nil {
			return fmt.Errorf("seed product %q: %w", p.ID, err)
		}
	}
	return tx.Commit()
}

// Search returns products whose name, category or description matches the
// query (case-insensitive substring), optionally filtered by category and
// capped at limit results.
func (r *Repository) Search(query, category string, limit int) ([]Product, error) {
	if limit <= 0 {
		limit = 10
	}
	pattern := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"

	q := `
		SELECT id, name, category, description, price, in_stock
		FROM products
		WHERE (lower(name) LIKE ? OR lower(category) LIKE ? OR lower(description) LIKE ?)`
	args := []any{pattern, pattern, pattern}
	if category != "" {
		q += " AND lower(category) = ?"
		args = append(args, strings.ToLower(category))
	}
	q += " ORDER BY name LIMIT ?"
	args = append(args, limit)

	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Get looks up one product by id.
func (r *Repository) Get(id string) (*Product, error) {
	row := r.db.QueryRow(`
		SELECT id, name, category, description, price, in_stock
		FROM products WHERE id = ?`, id)

	var p Product
	var inStock int
	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Description, &p.Price, &inStock)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get product %q: %w", id, err)
	}
	p.InStock = inStock != 0
	return &p, nil
}

func scanProduct(rows *sql.Rows) (Product, error) {
	var p Product
	var inStock int
	if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Description, &p.Price, &inStock); err != nil {
		return Product{}, fmt.Errorf("scan product: %w", err)
	}
	p.InStock = inStock != 0
	return p, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
