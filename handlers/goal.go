package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"finance-tracker-api/middleware"
	"finance-tracker-api/models"
)

type GoalHandler struct {
	DB *sql.DB
}

func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var description sql.NullString
	if req.Description != "" {
		description = sql.NullString{String: req.Description, Valid: true}
	}

	goal := models.Goal{
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		TargetDate:   req.TargetDate,
	}
	err := h.DB.QueryRow(`
		INSERT INTO goals (user_id, title, description, target_amount, target_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, current_amount, completed, created_at
	`, userID, req.Title, description, req.TargetAmount, req.TargetDate).
		Scan(&goal.ID, &goal.CurrentAmount, &goal.Completed, &goal.CreatedAt)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
		return
	}

	c.JSON(http.StatusCreated, goal)
}

func (h *GoalHandler) GetGoals(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rows, err := h.DB.Query(`
		SELECT id, user_id, title, description, target_amount, current_amount, target_date, completed, created_at
		FROM goals
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goals"})
		return
	}
	defer rows.Close()

	goals := []models.Goal{}
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			continue
		}
		goals = append(goals, goal)
	}

	c.JSON(http.StatusOK, goals)
}

// UpdateGoal applies a partial update; unset fields keep their prior
// values.
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	userID := middleware.GetUserID(c)
	goalID := c.Param("id")

	if _, err := uuid.Parse(goalID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	var req models.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var goal models.Goal
	var description sql.NullString
	var targetDate sql.NullTime
	err := h.DB.QueryRow(`
		UPDATE goals
		SET title = COALESCE($1, title),
		    description = COALESCE($2, description),
		    target_amount = COALESCE($3, target_amount),
		    current_amount = COALESCE($4, current_amount),
		    target_date = COALESCE($5, target_date),
		    completed = COALESCE($6, completed)
		WHERE id = $7 AND user_id = $8
		RETURNING id, user_id, title, description, target_amount, current_amount, target_date, completed, created_at
	`, req.Title, req.Description, req.TargetAmount, req.CurrentAmount, req.TargetDate, req.Completed, goalID, userID).
		Scan(&goal.ID, &goal.UserID, &goal.Title, &description, &goal.TargetAmount, &goal.CurrentAmount, &targetDate, &goal.Completed, &goal.CreatedAt)

	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update goal"})
		return
	}

	goal.Description = description.String
	if targetDate.Valid {
		goal.TargetDate = &targetDate.Time
	}

	c.JSON(http.StatusOK, goal)
}

func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	userID := middleware.GetUserID(c)
	goalID := c.Param("id")

	if _, err := uuid.Parse(goalID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	result, err := h.DB.Exec(`
		DELETE FROM goals WHERE id = $1 AND user_id = $2
	`, goalID, userID)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete goal"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted successfully"})
}

func scanGoal(rows *sql.Rows) (models.Goal, error) {
	var goal models.Goal
	var description sql.NullString
	var targetDate sql.NullTime
	err := rows.Scan(&goal.ID, &goal.UserID, &goal.Title, &description, &goal.TargetAmount,
		&goal.CurrentAmount, &targetDate, &goal.Completed, &goal.CreatedAt)
	if err != nil {
		return goal, err
	}
	goal.Description = description.String
	if targetDate.Valid {
		goal.TargetDate = &targetDate.Time
	}
	return goal, nil
}
