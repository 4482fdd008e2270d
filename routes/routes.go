package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"

	"finance-tracker-api/config"
	"finance-tracker-api/handlers"
)

// SetupAuthRoutes sets up public authentication routes plus /auth/me,
// which the caller mounts behind the auth middleware.
func SetupAuthRoutes(rg *gin.RouterGroup, protected *gin.RouterGroup, db *sql.DB, cfg *config.Config) {
	authHandler := &handlers.AuthHandler{DB: db, Config: cfg}

	rg.POST("/auth/register", authHandler.Register)
	rg.POST("/auth/login", authHandler.Login)
	protected.GET("/auth/me", authHandler.Me)
}

func SetupTransactionRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := &handlers.TransactionHandler{DB: db}

	rg.POST("/transactions", h.CreateTransaction)
	rg.GET("/transactions", h.GetTransactions)
	rg.DELETE("/transactions/:id", h.DeleteTransaction)
}

func SetupBudgetRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := &handlers.BudgetHandler{DB: db}

	rg.POST("/budgets", h.CreateBudget)
	rg.GET("/budgets", h.GetBudgets)
	rg.PUT("/budgets/:id", h.UpdateBudget)
	rg.DELETE("/budgets/:id", h.DeleteBudget)
}

func SetupGoalRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := &handlers.GoalHandler{DB: db}

	rg.POST("/goals", h.CreateGoal)
	rg.GET("/goals", h.GetGoals)
	rg.PUT("/goals/:id", h.UpdateGoal)
	rg.DELETE("/goals/:id", h.DeleteGoal)
}

func SetupSharedGroupRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := &handlers.SharedGroupHandler{DB: db}

	rg.POST("/shared-groups", h.CreateGroup)
	rg.GET("/shared-groups", h.GetGroups)
	rg.POST("/shared-groups/join", h.JoinGroup)
	rg.GET("/shared-groups/:id", h.GetGroup)
	rg.GET("/shared-groups/:id/expenses", h.GetExpenses)
	rg.POST("/shared-groups/:id/expenses", h.CreateExpense)
}

func SetupDashboardRoutes(rg *gin.RouterGroup, db *sql.DB) {
	h := &handlers.DashboardHandler{DB: db}

	rg.GET("/dashboard/summary", h.GetSummary)
}
