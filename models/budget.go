package models

import "time"

type Budget struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Category  string    `json:"category"`
	Amount    float64   `json:"amount"`
	Spent     float64   `json:"spent"`
	Period    string    `json:"period"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateBudgetRequest struct {
	Category string  `json:"category" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Period   string  `json:"period"`
}

// UpdateBudgetRequest carries a partial update: nil fields are left untouched.
type UpdateBudgetRequest struct {
	Category *string  `json:"category"`
	Amount   *float64 `json:"amount"`
	Spent    *float64 `json:"spent"`
	Period   *string  `json:"period"`
}
