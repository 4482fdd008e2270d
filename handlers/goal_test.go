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

func goalColumns() []string {
	return []string{"id", "user_id", "title", "description", "target_amount", "current_amount", "target_date", "completed", "created_at"}
}

const goalID = "aa0e8400-e29b-41d4-a716-446655440005"

func TestCreateGoal(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("INSERT INTO goals").
		WithArgs(testUser.ID, "Emergency fund", sqlmock.AnyArg(), 10000.0, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "current_amount", "completed", "created_at"}).
			AddRow(goalID, 0.0, false, time.Now()))

	router := authedRouter(testUser)
	handler := &GoalHandler{DB: db}
	router.POST("/goals", handler.CreateGoal)

	body := `{"title":"Emergency fund","description":"Six months of expenses","target_amount":10000}`
	req := httptest.NewRequest(http.MethodPost, "/goals", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var goal models.Goal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &goal))
	assert.Equal(t, "Emergency fund", goal.Title)
	assert.Equal(t, 0.0, goal.CurrentAmount)
	assert.False(t, goal.Completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetGoals(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	rows := sqlmock.NewRows(goalColumns()).
		AddRow(goalID, testUser.ID, "Emergency fund", "Six months", 10000.0, 2500.0, nil, false, time.Now()).
		AddRow("bb0e8400-e29b-41d4-a716-446655440006", testUser.ID, "Vacation", nil, 3000.0, 3000.0,
			time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), true, time.Now())
	mock.ExpectQuery("SELECT (.+) FROM goals").
		WithArgs(testUser.ID).
		WillReturnRows(rows)

	router := authedRouter(testUser)
	handler := &GoalHandler{DB: db}
	router.GET("/goals", handler.GetGoals)

	req := httptest.NewRequest(http.MethodGet, "/goals", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var goals []models.Goal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &goals))
	require.Len(t, goals, 2)
	assert.Empty(t, goals[1].Description)
	require.NotNil(t, goals[1].TargetDate)
	assert.True(t, goals[1].Completed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateGoal_MarkCompleted(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	// Only completed is supplied.
	mock.ExpectQuery("UPDATE goals").
		WithArgs(nil, nil, nil, nil, nil, true, goalID, testUser.ID).
		WillReturnRows(sqlmock.NewRows(goalColumns()).
			AddRow(goalID, testUser.ID, "Emergency fund", "Six months", 10000.0, 10000.0, nil, true, time.Now()))

	router := authedRouter(testUser)
	handler := &GoalHandler{DB: db}
	router.PUT("/goals/:id", handler.UpdateGoal)

	req := httptest.NewRequest(http.MethodPut, "/goals/"+goalID, bytes.NewBufferString(`{"completed":true}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var goal models.Goal
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &goal))
	assert.True(t, goal.Completed)
	assert.Equal(t, "Emergency fund", goal.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateGoal_NotOwned(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()

	mock.ExpectQuery("UPDATE goals").
		WithArgs(nil, nil, nil, sqlmock.AnyArg(), nil, nil, goalID, testUser.ID).
		WillReturnError(sql.ErrNoRows)

	router := authedRouter(testUser)
	handler := &GoalHandler{DB: db}
	router.PUT("/goals/:id", handler.UpdateGoal)

	req := httptest.NewRequest(http.MethodPut, "/goals/"+goalID, bytes.NewBufferString(`{"current_amount":50}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteGoal(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		rows       int64
		wantStatus int
	}{
		{name: "Success", id: goalID, rows: 1, wantStatus: http.StatusOK},
		{name: "Absent or foreign row", id: goalID, rows: 0, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := newMockDB(t)
			defer cleanup()

			mock.ExpectExec("DELETE FROM goals").
				WithArgs(tt.id, testUser.ID).
				WillReturnResult(sqlmock.NewResult(0, tt.rows))

			router := authedRouter(testUser)
			handler := &GoalHandler{DB: db}
			router.DELETE("/goals/:id", handler.DeleteGoal)

			req := httptest.NewRequest(http.MethodDelete, "/goals/"+tt.id, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
