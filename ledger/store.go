// Package ledger stores financial transactions and their report
// aggregations.
package ledger

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/balansai/miniapp-backend/forecast"
)

type Store struct {
	pg *pgxpool.Pool
}

func NewStore(pg *pgxpool.Pool) *Store {
	return &Store{pg: pg}
}

// periodFilters map a report period onto a created_at predicate. All
// aggregation happens in SQL; handlers only shape the result.
var periodFilters = map[string]string{
	"day":   `created_at::date = CURRENT_DATE`,
	"week":  `date_trunc('week', created_at) = date_trunc('week', NOW())`,
	"month": `date_trunc('month', created_at) = date_trunc('month', NOW())`,
	"year":  `date_trunc('year', created_at) = date_trunc('year', NOW())`,
}

func periodFilter(period string) string {
	if f, ok := periodFilters[period]; ok {
		return f
	}
	return periodFilters["month"]
}

func (s *Store) List(ctx context.Context, userID int64, limit int) ([]Transaction, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	rows, err := s.pg.Query(ctx,
		`SELECT id, user_id, transaction_type, amount, category, note, created_at
		 FROM transactions WHERE user_id=$1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	out := []Transaction{}
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &t.Category, &t.Note, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) Create(ctx context.Context, t *Transaction) (int64, error) {
	var id int64
	err := s.pg.QueryRow(ctx,
		`INSERT INTO transactions (user_id, transaction_type, amount, category, note)
		 VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		t.UserID, t.Type, t.Amount, t.Category, t.Note).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create transaction: %w", err)
	}
	return id, nil
}

func (s *Store) Delete(ctx context.Context, userID, id int64) error {
	_, err := s.pg.Exec(ctx,
		`DELETE FROM transactions WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

// PeriodSummary totals income, expense, and entry count for the period
// (day, week, month, or year; anything else means month).
func (s *Store) PeriodSummary(ctx context.Context, userID int64, period string) (Summary, error) {
	var sum Summary
	query := `SELECT COALESCE(SUM(CASE WHEN transaction_type='income' THEN amount ELSE 0 END), 0),
	                 COALESCE(SUM(CASE WHEN transaction_type='expense' THEN amount ELSE 0 END), 0),
	                 COUNT(*)
	          FROM transactions WHERE user_id=$1 AND ` + periodFilter(period)
	if err := s.pg.QueryRow(ctx, query, userID).Scan(&sum.TotalIncome, &sum.TotalExpense, &sum.TransactionCount); err != nil {
		return Summary{}, fmt.Errorf("period summary: %w", err)
	}
	return sum, nil
}

// TopExpenseCategories returns the five largest expense categories for the
// period.
func (s *Store) TopExpenseCategories(ctx context.Context, userID int64, period string) ([]CategoryTotal, error) {
	query := `SELECT category, SUM(amount)
	          FROM transactions
	          WHERE user_id=$1 AND transaction_type='expense' AND ` + periodFilter(period) + `
	          GROUP BY category ORDER BY SUM(amount) DESC LIMIT 5`
	rows, err := s.pg.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("top categories: %w", err)
	}
	defer rows.Close()

	out := []CategoryTotal{}
	for rows.Next() {
		var c CategoryTotal
		if err := rows.Scan(&c.Category, &c.Total); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// MonthlyAggregates returns up to months of per-month totals ordered
// most-recent-first, feeding the forecast calculator.
func (s *Store) MonthlyAggregates(ctx context.Context, userID int64, months int) ([]forecast.MonthlyAggregate, error) {
	if months <= 0 || months > 24 {
		months = 6
	}
	rows, err := s.pg.Query(ctx,
		`SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month,
		        COALESCE(SUM(CASE WHEN transaction_type='income' THEN amount ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN transaction_type='expense' THEN amount ELSE 0 END), 0)
		 FROM transactions
		 WHERE user_id=$1
		 GROUP BY date_trunc('month', created_at)
		 ORDER BY date_trunc('month', created_at) DESC
		 LIMIT $2`, userID, months)
	if err != nil {
		return nil, fmt.Errorf("monthly aggregates: %w", err)
	}
	defer rows.Close()

	out := []forecast.MonthlyAggregate{}
	for rows.Next() {
		var m forecast.MonthlyAggregate
		if err := rows.Scan(&m.Month, &m.Income, &m.Expense); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
