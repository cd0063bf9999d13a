// Package forecast projects next-month income and expenses from historical
// monthly totals. This is a single-step linear extrapolation, not a
// statistical model; the formula is fixed for compatibility with the
// numbers users already see.
package forecast

import "math"

// MonthlyAggregate is one month of historical totals.
type MonthlyAggregate struct {
	Month   string  `json:"month"` // YYYY-MM
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// Result is the one-period-ahead projection. When Insufficient is true the
// caller has fewer than MinMonths of history and only Message is set.
type Result struct {
	Insufficient bool   `json:"insufficient_data,omitempty"`
	Message      string `json:"message,omitempty"`

	ForecastIncome   float64 `json:"forecast_income"`
	ForecastExpense  float64 `json:"forecast_expense"`
	ForecastProfit   float64 `json:"forecast_profit"`
	IncomeGrowthPct  float64 `json:"income_growth_pct"`
	ExpenseGrowthPct float64 `json:"expense_growth_pct"`
	MonthsAnalyzed   int     `json:"months_analyzed"`
}

// MinMonths is the history required to produce a projection.
const MinMonths = 3

// Calculate consumes history ordered most-recent-first (at most the window
// the caller chooses, typically 6 months) and returns the projection.
//
// The growth rate is the whole-window relative change divided by the month
// count, i.e. a per-month average rather than a compounded rate. That
// scaling is deliberate and must not be "fixed".
func Calculate(history []MonthlyAggregate) Result {
	if len(history) < MinMonths {
		return Result{
			Insufficient: true,
			Message:      "not enough history: at least 3 months of transactions are required",
		}
	}

	count := float64(len(history))
	var sumIncome, sumExpense float64
	for _, m := range history {
		sumIncome += m.Income
		sumExpense += m.Expense
	}
	avgIncome := sumIncome / count
	avgExpense := sumExpense / count

	first := history[0]
	last := history[len(history)-1]

	var incomeGrowth, expenseGrowth float64
	if last.Income > 0 {
		incomeGrowth = ((first.Income - last.Income) / last.Income) / count
	}
	if last.Expense > 0 {
		expenseGrowth = ((first.Expense - last.Expense) / last.Expense) / count
	}

	forecastIncome := avgIncome * (1 + incomeGrowth)
	forecastExpense := avgExpense * (1 + expenseGrowth)

	return Result{
		ForecastIncome:   round2(forecastIncome),
		ForecastExpense:  round2(forecastExpense),
		ForecastProfit:   round2(forecastIncome - forecastExpense),
		IncomeGrowthPct:  round2(incomeGrowth * 100),
		ExpenseGrowthPct: round2(expenseGrowth * 100),
		MonthsAnalyzed:   len(history),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
