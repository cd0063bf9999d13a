package ledger

import "time"

// Transaction kinds.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction is one financial entry.
type Transaction struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Type      string    `json:"transaction_type"`
	Amount    float64   `json:"amount"`
	Category  string    `json:"category"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Summary aggregates one reporting period.
type Summary struct {
	TotalIncome      float64 `json:"total_income"`
	TotalExpense     float64 `json:"total_expense"`
	TransactionCount int64   `json:"transaction_count"`
}

// CategoryTotal is one row of the top-expense-categories breakdown.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}
