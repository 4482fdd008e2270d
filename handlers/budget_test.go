package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-tracker-api/models"
)

func budgetColumns() []string {
	return []string{"id", "user_id", "category", "amount", "spent", "period", "created_at"}
}

const budgetID = "990e8400-e29b-41d4-a716-446655440004"

func TestCreateBudget(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantPeriod string
	}{
		{
			name:       "Period defaults to monthly",
			body:       `{"category":"food","amount":500}`,
			wantPeriod: "monthly",
		},
		{
			name:       "Explicit period",
			body:       `{"category":"food","amount":500,"period":"weekly"}`,
			wantPeriod: "weekly",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := newMockDB(t)
			defer cleanup()

			mock.ExpectQuery("INSERT INTO budgets").
				WithArgs(testUser.ID, "food", 500.0, tt.wantPeriod).
				WillReturnRows(sqlmock.NewRows([]string{"id", "spent", "created_at"}).
					AddRow(budgetID, 0.0, time.Now()))

			router := authedRouter(testUser)
			handler := &BudgetHandler{DB: db}
			router.POST("/budgets", handler.CreateBudget)

			req := httptest.NewRequest(http.MethodPost, "/budgets", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusCreated, w.Code)

			var budget models.Budget
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &budget))
			assert.Equal(t, tt.wantPeriod, budget.Period)
			assert.Equal(t, 0.0, budget.Spent)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetBudgets(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	rows := sqlmock.NewRows(budgetColumns()).
		AddRow(budgetID, testUser.ID, "food", 500.0, 120.5, "monthly", time.Now())
	mock.ExpectQuery("SELECT (.+) FROM budgets").
		WithArgs(testUser.ID).
		WillReturnRows(rows)

	router := authedRouter(testUser)
	handler := &BudgetHandler{DB: db}
	router.GET("/budgets", handler.GetBudgets)

	req := httptest.NewRequest(http.MethodGet, "/budgets", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var budgets []models.Budget
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &budgets))
	require.Len(t, budgets, 1)
	assert.Equal(t, "food", budgets[0].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBudget_PartialFields(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	// Only amount is supplied; every other field must be sent as NULL
	// so COALESCE keeps the stored values.
	mock.ExpectQuery("UPDATE budgets").
		WithArgs(nil, 750.0, nil, nil, budgetID, testUser.ID).
		WillReturnRows(sqlmock.NewRows(budgetColumns()).
			AddRow(budgetID, testUser.ID, "food", 750.0, 120.5, "monthly", time.Now()))

	router := authedRouter(testUser)
	handler := &BudgetHandler{DB: db}
	router.PUT("/budgets/:id", handler.UpdateBudget)

	req := httptest.NewRequest(http.MethodPut, "/budgets/"+budgetID, bytes.NewBufferString(`{"amount":750}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var budget models.Budget
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &budget))
	assert.Equal(t, 750.0, budget.Amount)
	// Untouched fields come back unchanged.
	assert.Equal(t, "food", budget.Category)
	assert.Equal(t, "monthly", budget.Period)
	assert.Equal(t, 120.5, budget.Spent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBudget_NotOwned(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	// Row exists but belongs to another user: the ownership predicate
	// matches nothing, which reads exactly like a missing row.
	mock.ExpectQuery("UPDATE budgets").
		WithArgs(nil, 750.0, nil, nil, budgetID, testUser.ID).
		WillReturnError(sql.ErrNoRows)

	router := authedRouter(testUser)
	handler := &BudgetHandler{DB: db}
	router.PUT("/budgets/:id", handler.UpdateBudget)

	req := httptest.NewRequest(http.MethodPut, "/budgets/"+budgetID, bytes.NewBufferString(`{"amount":750}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateBudget_InvalidID(t *testing.T) {
	db, _, cleanup := newMockDB(t)
	defer cleanup()

	router := authedRouter(testUser)
	handler := &BudgetHandler{DB: db}
	router.PUT("/budgets/:id", handler.UpdateBudget)

	req := httptest.NewRequest(http.MethodPut, "/budgets/nope", bytes.NewBufferString(`{"amount":750}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteBudget(t *testing.T) {
	tests := []struct {
		name       string
		rows       int64
		wantStatus int
	}{
		{name: "Success", rows: 1, wantStatus: http.StatusOK},
		{name: "Absent or foreign row", rows: 0, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := newMockDB(t)
			defer cleanup()

			mock.ExpectExec("DELETE FROM budgets").
				WithArgs(budgetID, testUser.ID).
				WillReturnResult(sqlmock.NewResult(0, tt.rows))

			router := authedRouter(testUser)
			handler := &BudgetHandler{DB: db}
			router.DELETE("/budgets/:id", handler.DeleteBudget)

			req := httptest.NewRequest(http.MethodDelete, "/budgets/"+budgetID, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
