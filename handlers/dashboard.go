package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"finance-tracker-api/middleware"
	"finance-tracker-api/models"
)

type DashboardHandler struct {
	DB *sql.DB
}

// GetSummary composes the dashboard: the 5 most recent transactions,
// income/expense totals for the current calendar month, all budgets
// and the incomplete goals.
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	summary := models.DashboardSummary{
		RecentTransactions: []models.Transaction{},
		Budgets:            []models.Budget{},
		Goals:              []models.Goal{},
	}

	rows, err := h.DB.Query(`
		SELECT id, user_id, amount, description, category, type, date, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT 5
	`, userID)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Description, &t.Category, &t.Type, &t.Date, &t.CreatedAt); err != nil {
			continue
		}
		summary.RecentTransactions = append(summary.RecentTransactions, t)
	}
	rows.Close()

	// Local wall-clock start of the current month, time zeroed.
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	err = h.DB.QueryRow(`
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND type = 'income' AND date >= $2
	`, userID, monthStart).Scan(&summary.TotalIncome)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute income"})
		return
	}

	err = h.DB.QueryRow(`
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND type = 'expense' AND date >= $2
	`, userID, monthStart).Scan(&summary.TotalExpenses)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute expenses"})
		return
	}

	summary.Balance = summary.TotalIncome - summary.TotalExpenses

	rows, err = h.DB.Query(`
		SELECT id, user_id, category, amount, spent, period, created_at
		FROM budgets
		WHERE user_id = $1
	`, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch budgets"})
		return
	}
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Spent, &b.Period, &b.CreatedAt); err != nil {
			continue
		}
		summary.Budgets = append(summary.Budgets, b)
	}
	rows.Close()

	rows, err = h.DB.Query(`
		SELECT id, user_id, title, description, target_amount, current_amount, target_date, completed, created_at
		FROM goals
		WHERE user_id = $1 AND completed = FALSE
	`, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goals"})
		return
	}
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			continue
		}
		summary.Goals = append(summary.Goals, goal)
	}
	rows.Close()

	summary.TransactionCount = len(summary.RecentTransactions)
	summary.BudgetCount = len(summary.Budgets)
	summary.GoalCount = len(summary.Goals)

	c.JSON(http.StatusOK, summary)
}
