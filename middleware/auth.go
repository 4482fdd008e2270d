package middleware

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"finance-tracker-api/config"
	"finance-tracker-api/models"
	"finance-tracker-api/utils"
)

// UserContextKey is where the authenticated user record is stored on
// the request context.
const UserContextKey = "currentUser"

// AuthMiddleware verifies the bearer token on each request and resolves
// it to a user record before any handler touches the store. Missing
// header, malformed header, invalid/expired token and a subject that no
// longer exists all map to 401.
func AuthMiddleware(db *sql.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format"})
			return
		}

		email, err := utils.ValidateAccessToken(parts[1], cfg.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		var user models.User
		var fullName sql.NullString
		err = db.QueryRow(`
			SELECT id, email, username, hashed_password, full_name, is_active, created_at
			FROM users
			WHERE email = $1
		`, email).Scan(&user.ID, &user.Email, &user.Username, &user.HashedPassword, &fullName, &user.IsActive, &user.CreatedAt)

		if err == sql.ErrNoRows {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		user.FullName = fullName.String

		c.Set(UserContextKey, &user)
		c.Next()
	}
}

// GetCurrentUser returns the authenticated user set by AuthMiddleware,
// or nil when the request is unauthenticated.
func GetCurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(UserContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// GetUserID returns the authenticated user's id, or "" when absent.
func GetUserID(c *gin.Context) string {
	user := GetCurrentUser(c)
	if user == nil {
		return ""
	}
	return user.ID
}
