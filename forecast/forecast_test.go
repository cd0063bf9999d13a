package forecast

import "testing"

func TestCalculateInsufficientHistory(t *testing.T) {
	t.Parallel()

	res := Calculate([]MonthlyAggregate{
		{Month: "2024-03", Income: 100, Expense: 60},
		{Month: "2024-02", Income: 120, Expense: 70},
	})
	if !res.Insufficient {
		t.Fatal("expected insufficient-data result for 2 months")
	}
	if res.Message == "" {
		t.Fatal("expected a human-readable message")
	}
}

// Fixed-point regression: values derived by hand from the formula.
// avgIncome = 100, avgExpense = 60; incomeGrowth = ((100-80)/80)/3,
// expenseGrowth = ((60-50)/50)/3.
func TestCalculateFixture(t *testing.T) {
	t.Parallel()

	res := Calculate([]MonthlyAggregate{
		{Month: "2024-03", Income: 100, Expense: 60},
		{Month: "2024-02", Income: 120, Expense: 70},
		{Month: "2024-01", Income: 80, Expense: 50},
	})

	if res.Insufficient {
		t.Fatal("unexpected insufficient-data result")
	}
	if res.ForecastIncome != 108.33 {
		t.Errorf("forecast income: got %v, want 108.33", res.ForecastIncome)
	}
	if res.ForecastExpense != 64.00 {
		t.Errorf("forecast expense: got %v, want 64.00", res.ForecastExpense)
	}
	if res.ForecastProfit != 44.33 {
		t.Errorf("forecast profit: got %v, want 44.33", res.ForecastProfit)
	}
	if res.IncomeGrowthPct != 8.33 {
		t.Errorf("income growth: got %v, want 8.33", res.IncomeGrowthPct)
	}
	if res.ExpenseGrowthPct != 6.67 {
		t.Errorf("expense growth: got %v, want 6.67", res.ExpenseGrowthPct)
	}
	if res.MonthsAnalyzed != 3 {
		t.Errorf("months analyzed: got %d, want 3", res.MonthsAnalyzed)
	}
}

// A zero income in the oldest month pins the growth rate at zero instead
// of dividing by zero.
func TestCalculateZeroBaseline(t *testing.T) {
	t.Parallel()

	res := Calculate([]MonthlyAggregate{
		{Month: "2024-03", Income: 100, Expense: 60},
		{Month: "2024-02", Income: 50, Expense: 30},
		{Month: "2024-01", Income: 0, Expense: 0},
	})

	if res.IncomeGrowthPct != 0 {
		t.Errorf("income growth with zero baseline: got %v, want 0", res.IncomeGrowthPct)
	}
	if res.ExpenseGrowthPct != 0 {
		t.Errorf("expense growth with zero baseline: got %v, want 0", res.ExpenseGrowthPct)
	}
	if res.ForecastIncome != 50.00 {
		t.Errorf("forecast income: got %v, want 50.00", res.ForecastIncome)
	}
}
