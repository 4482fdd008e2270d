package handlers

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"finance-tracker-api/middleware"
	"finance-tracker-api/models"
)

var testUser = &models.User{
	ID:        "550e8400-e29b-41d4-a716-446655440000",
	Email:     "alice@example.com",
	Username:  "alice",
	IsActive:  true,
	CreatedAt: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, func() { db.Close() }
}

// authedRouter returns a test router with the given user already
// resolved, standing in for the auth middleware.
func authedRouter(user *models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if user != nil {
		router.Use(func(c *gin.Context) {
			c.Set(middleware.UserContextKey, user)
		})
	}
	return router
}
