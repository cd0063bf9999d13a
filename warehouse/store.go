// Package warehouse stores products and stock movements.
package warehouse

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	pg *pgxpool.Pool
}

func NewStore(pg *pgxpool.Pool) *Store {
	return &Store{pg: pg}
}

func (s *Store) ListProducts(ctx context.Context, userID int64) ([]Product, error) {
	rows, err := s.pg.Query(ctx,
		`SELECT id, user_id, name, category, barcode, price, quantity, min_quantity, unit, image_url, created_at, updated_at
		 FROM warehouse_products WHERE user_id=$1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	out := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Category, &p.Barcode, &p.Price,
			&p.Quantity, &p.MinQuantity, &p.Unit, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) CreateProduct(ctx context.Context, p *Product) (int64, error) {
	var id int64
	err := s.pg.QueryRow(ctx,
		`INSERT INTO warehouse_products (user_id, name, category, barcode, price, quantity, min_quantity, unit, image_url)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		 RETURNING id`,
		p.UserID, p.Name, p.Category, p.Barcode, p.Price, p.Quantity, p.MinQuantity, p.Unit, p.ImageURL).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create product: %w", err)
	}
	return id, nil
}

func (s *Store) UpdateProduct(ctx context.Context, p *Product) error {
	_, err := s.pg.Exec(ctx,
		`UPDATE warehouse_products
		 SET name=$3, category=$4, barcode=$5, price=$6, quantity=$7, min_quantity=$8, unit=$9, image_url=$10, updated_at=NOW()
		 WHERE id=$1 AND user_id=$2`,
		p.ID, p.UserID, p.Name, p.Category, p.Barcode, p.Price, p.Quantity, p.MinQuantity, p.Unit, p.ImageURL)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, userID, productID int64) error {
	_, err := s.pg.Exec(ctx,
		`DELETE FROM warehouse_products WHERE id=$1 AND user_id=$2`, productID, userID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// ListMovements returns movements newest-first, optionally filtered to one
// product. The unfiltered listing is capped at 100 rows.
func (s *Store) ListMovements(ctx context.Context, userID int64, productID *int64) ([]Movement, error) {
	query := `SELECT wm.id, wm.user_id, wm.product_id, wp.name, wm.movement_type, wm.quantity, wm.price, wm.reason, wm.created_at
		 FROM warehouse_movements wm
		 JOIN warehouse_products wp ON wm.product_id = wp.id
		 WHERE wm.user_id=$1`
	args := []any{userID}
	if productID != nil {
		query += ` AND wm.product_id=$2 ORDER BY wm.created_at DESC`
		args = append(args, *productID)
	} else {
		query += ` ORDER BY wm.created_at DESC LIMIT 100`
	}

	rows, err := s.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	out := []Movement{}
	for rows.Next() {
		var m Movement
		if err := rows.Scan(&m.ID, &m.UserID, &m.ProductID, &m.ProductName, &m.Type,
			&m.Quantity, &m.Price, &m.Reason, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// CreateMovement records a stock change and adjusts the product quantity in
// the same transaction.
func (s *Store) CreateMovement(ctx context.Context, m *Movement) error {
	tx, err := s.pg.Begin(ctx)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`INSERT INTO warehouse_movements (user_id, product_id, movement_type, quantity, price, reason)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		m.UserID, m.ProductID, m.Type, m.Quantity, m.Price, m.Reason); err != nil {
		return fmt.Errorf("create movement: %w", err)
	}

	delta := m.Quantity
	if m.Type != MovementIn {
		delta = -delta
	}
	if _, err := tx.Exec(ctx,
		`UPDATE warehouse_products SET quantity = quantity + $3, updated_at=NOW() WHERE id=$1 AND user_id=$2`,
		m.ProductID, m.UserID, delta); err != nil {
		return fmt.Errorf("adjust quantity: %w", err)
	}

	return tx.Commit(ctx)
}

// StockStats aggregates product count, total stock value, and items at or
// below their minimum quantity.
func (s *Store) StockStats(ctx context.Context, userID int64) (Stats, error) {
	var st Stats
	err := s.pg.QueryRow(ctx,
		`SELECT COUNT(*),
		        COALESCE(SUM(quantity * price), 0),
		        COALESCE(SUM(CASE WHEN quantity <= min_quantity THEN 1 ELSE 0 END), 0)
		 FROM warehouse_products WHERE user_id=$1`, userID).
		Scan(&st.TotalProducts, &st.TotalValue, &st.LowStockCount)
	if err != nil {
		return Stats{}, fmt.Errorf("stock stats: %w", err)
	}
	return st, nil
}
