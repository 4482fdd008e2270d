package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"finance-tracker-api/middleware"
	"finance-tracker-api/models"
	"finance-tracker-api/utils"
)

// How many fresh invitation codes to try when an insert hits the
// unique constraint on shared_groups.invitation_code.
const invitationCodeAttempts = 3

type SharedGroupHandler struct {
	DB *sql.DB
}

// CreateGroup creates a shared expense group with a generated
// invitation code and adds the creator as its owner member, both in
// one transaction.
func (h *SharedGroupHandler) CreateGroup(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateSharedGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var description sql.NullString
	if req.Description != "" {
		description = sql.NullString{String: req.Description, Valid: true}
	}

	group := models.SharedGroup{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   userID,
	}

	for attempt := 0; attempt < invitationCodeAttempts; attempt++ {
		code, err := utils.GenerateInvitationCode()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate invitation code"})
			return
		}

		tx, err := h.DB.Begin()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		err = tx.QueryRow(`
			INSERT INTO shared_groups (name, description, created_by, invitation_code)
			VALUES ($1, $2, $3, $4)
			RETURNING id, created_at
		`, req.Name, description, userID, code).Scan(&group.ID, &group.CreatedAt)

		if isUniqueViolation(err) {
			tx.Rollback()
			continue
		}
		if err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create group"})
			return
		}

		_, err = tx.Exec(`
			INSERT INTO shared_group_members (group_id, user_id, role)
			VALUES ($1, $2, 'owner')
		`, group.ID, userID)

		if err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add owner as member"})
			return
		}

		if err := tx.Commit(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		group.InvitationCode = code
		c.JSON(http.StatusCreated, group)
		return
	}

	c.JSON(http.StatusBadRequest, gin.H{"error": "Could not generate a unique invitation code"})
}

// GetGroups lists the groups the caller is a member of.
func (h *SharedGroupHandler) GetGroups(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rows, err := h.DB.Query(`
		SELECT g.id, g.name, g.description, g.created_by, g.invitation_code, g.created_at
		FROM shared_groups g
		INNER JOIN shared_group_members m ON g.id = m.group_id
		WHERE m.user_id = $1
		ORDER BY g.created_at DESC
	`, userID)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch groups"})
		return
	}
	defer rows.Close()

	groups := []models.SharedGroup{}
	for rows.Next() {
		var g models.SharedGroup
		var description sql.NullString
		if err := rows.Scan(&g.ID, &g.Name, &description, &g.CreatedBy, &g.InvitationCode, &g.CreatedAt); err != nil {
			continue
		}
		g.Description = description.String
		groups = append(groups, g)
	}

	c.JSON(http.StatusOK, groups)
}

// GetGroup returns one group with its members. Non-members get the
// same 404 as an absent group.
func (h *SharedGroupHandler) GetGroup(c *gin.Context) {
	userID := middleware.GetUserID(c)
	groupID := c.Param("id")

	if !h.isMember(c, groupID, userID) {
		return
	}

	var group models.SharedGroup
	var description sql.NullString
	err := h.DB.QueryRow(`
		SELECT id, name, description, created_by, invitation_code, created_at
		FROM shared_groups
		WHERE id = $1
	`, groupID).Scan(&group.ID, &group.Name, &description, &group.CreatedBy, &group.InvitationCode, &group.CreatedAt)

	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch group"})
		return
	}
	group.Description = description.String

	members := []models.SharedGroupMember{}
	rows, err := h.DB.Query(`
		SELECT m.id, m.group_id, m.user_id, m.role, m.joined_at, u.username, u.email
		FROM shared_group_members m
		INNER JOIN users u ON m.user_id = u.id
		WHERE m.group_id = $1
		ORDER BY m.joined_at
	`, groupID)

	if err == nil {
		defer rows.Close()
		for rows.Next() {
			var m models.SharedGroupMember
			if err := rows.Scan(&m.ID, &m.GroupID, &m.UserID, &m.Role, &m.JoinedAt, &m.Username, &m.Email); err != nil {
				continue
			}
			members = append(members, m)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"group":   group,
		"members": members,
	})
}

// JoinGroup adds the caller to the group matching the invitation code.
func (h *SharedGroupHandler) JoinGroup(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.JoinGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.InvitationCode))

	var groupID string
	err := h.DB.QueryRow(`
		SELECT id FROM shared_groups WHERE invitation_code = $1
	`, code).Scan(&groupID)

	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	member := models.SharedGroupMember{
		GroupID: groupID,
		UserID:  userID,
		Role:    "member",
	}
	err = h.DB.QueryRow(`
		INSERT INTO shared_group_members (group_id, user_id)
		VALUES ($1, $2)
		RETURNING id, joined_at
	`, groupID, userID).Scan(&member.ID, &member.JoinedAt)

	if isUniqueViolation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Already a member of this group"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join group"})
		return
	}

	c.JSON(http.StatusOK, member)
}

// GetExpenses lists a group's expenses, newest first. Member-only.
func (h *SharedGroupHandler) GetExpenses(c *gin.Context) {
	userID := middleware.GetUserID(c)
	groupID := c.Param("id")

	if !h.isMember(c, groupID, userID) {
		return
	}

	rows, err := h.DB.Query(`
		SELECT id, group_id, paid_by, amount, description, category, date, created_at
		FROM shared_expenses
		WHERE group_id = $1
		ORDER BY date DESC
	`, groupID)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
		return
	}
	defer rows.Close()

	expenses := []models.SharedExpense{}
	for rows.Next() {
		var e models.SharedExpense
		if err := rows.Scan(&e.ID, &e.GroupID, &e.PaidBy, &e.Amount, &e.Description, &e.Category, &e.Date, &e.CreatedAt); err != nil {
			continue
		}
		expenses = append(expenses, e)
	}

	c.JSON(http.StatusOK, expenses)
}

// CreateExpense records an expense paid by the caller. Member-only;
// paid_by is always the authenticated user, never the request body.
func (h *SharedGroupHandler) CreateExpense(c *gin.Context) {
	userID := middleware.GetUserID(c)
	groupID := c.Param("id")

	if !h.isMember(c, groupID, userID) {
		return
	}

	var req models.CreateSharedExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense := models.SharedExpense{
		GroupID:     groupID,
		PaidBy:      userID,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Date:        req.Date,
	}
	err := h.DB.QueryRow(`
		INSERT INTO shared_expenses (group_id, paid_by, amount, description, category, date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, groupID, userID, req.Amount, req.Description, req.Category, req.Date).Scan(&expense.ID, &expense.CreatedAt)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create expense"})
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// isMember writes a 401/404 response and returns false unless the
// caller belongs to the group. An invalid id or a group the caller is
// not part of both look like 404.
func (h *SharedGroupHandler) isMember(c *gin.Context, groupID, userID string) bool {
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return false
	}
	if _, err := uuid.Parse(groupID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return false
	}

	var exists bool
	err := h.DB.QueryRow(`
		SELECT EXISTS(
			SELECT 1 FROM shared_group_members
			WHERE group_id = $1 AND user_id = $2
		)
	`, groupID, userID).Scan(&exists)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return false
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Group not found"})
		return false
	}
	return true
}

func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}
