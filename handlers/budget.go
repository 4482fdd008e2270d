package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"finance-tracker-api/middleware"
	"finance-tracker-api/models"
)

type BudgetHandler struct {
	DB *sql.DB
}

// CreateBudget creates a spending limit for a category. The period
// defaults to monthly and spent starts at zero.
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	period := req.Period
	if period == "" {
		period = "monthly"
	}

	budget := models.Budget{
		UserID:   userID,
		Category: req.Category,
		Amount:   req.Amount,
		Period:   period,
	}
	err := h.DB.QueryRow(`
		INSERT INTO budgets (user_id, category, amount, period)
		VALUES ($1, $2, $3, $4)
		RETURNING id, spent, created_at
	`, userID, req.Category, req.Amount, period).Scan(&budget.ID, &budget.Spent, &budget.CreatedAt)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create budget"})
		return
	}

	c.JSON(http.StatusCreated, budget)
}

// GetBudgets returns all budgets owned by the caller.
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rows, err := h.DB.Query(`
		SELECT id, user_id, category, amount, spent, period, created_at
		FROM budgets
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch budgets"})
		return
	}
	defer rows.Close()

	budgets := []models.Budget{}
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Spent, &b.Period, &b.CreatedAt); err != nil {
			continue
		}
		budgets = append(budgets, b)
	}

	c.JSON(http.StatusOK, budgets)
}

// UpdateBudget applies a partial update. Unset fields keep their prior
// values. The ownership check and the mutation are one statement, so a
// concurrent delete cannot slip between them.
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	userID := middleware.GetUserID(c)
	budgetID := c.Param("id")

	if _, err := uuid.Parse(budgetID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}

	var req models.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var budget models.Budget
	err := h.DB.QueryRow(`
		UPDATE budgets
		SET category = COALESCE($1, category),
		    amount = COALESCE($2, amount),
		    spent = COALESCE($3, spent),
		    period = COALESCE($4, period)
		WHERE id = $5 AND user_id = $6
		RETURNING id, user_id, category, amount, spent, period, created_at
	`, req.Category, req.Amount, req.Spent, req.Period, budgetID, userID).
		Scan(&budget.ID, &budget.UserID, &budget.Category, &budget.Amount, &budget.Spent, &budget.Period, &budget.CreatedAt)

	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update budget"})
		return
	}

	c.JSON(http.StatusOK, budget)
}

// DeleteBudget removes one of the caller's budgets.
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	userID := middleware.GetUserID(c)
	budgetID := c.Param("id")

	if _, err := uuid.Parse(budgetID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}

	result, err := h.DB.Exec(`
		DELETE FROM budgets WHERE id = $1 AND user_id = $2
	`, budgetID, userID)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete budget"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Budget not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Budget deleted successfully"})
}
