package models

type DashboardSummary struct {
	TotalIncome        float64       `json:"total_income"`
	TotalExpenses      float64       `json:"total_expenses"`
	Balance            float64       `json:"balance"`
	RecentTransactions []Transaction `json:"recent_transactions"`
	Budgets            []Budget      `json:"budgets"`
	Goals              []Goal        `json:"goals"`
	TransactionCount   int           `json:"transaction_count"`
	BudgetCount        int           `json:"budget_count"`
	GoalCount          int           `json:"goal_count"`
}
