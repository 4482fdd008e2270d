package models

import "time"

type Goal struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	TargetAmount  float64    `json:"target_amount"`
	CurrentAmount float64    `json:"current_amount"`
	TargetDate    *time.Time `json:"target_date,omitempty"`
	Completed     bool       `json:"completed"`
	CreatedAt     time.Time  `json:"created_at"`
}

type CreateGoalRequest struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	TargetAmount float64    `json:"target_amount" binding:"required"`
	TargetDate   *time.Time `json:"target_date"`
}

// UpdateGoalRequest carries a partial update: nil fields are left untouched.
type UpdateGoalRequest struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	TargetAmount  *float64   `json:"target_amount"`
	CurrentAmount *float64   `json:"current_amount"`
	TargetDate    *time.Time `json:"target_date"`
	Completed     *bool      `json:"completed"`
}
