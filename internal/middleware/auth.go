package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lb-platform/core/internal/models"
	"github.com/lb-platform/core/internal/pkg/jwt"
	"github.com/lb-platform/core/internal/pkg/response"
	"gorm.io/gorm"
)

// ContextKeyAdmin is the gin context key holding the authenticated admin.
const ContextKeyAdmin = "admin"

// Auth returns a middleware enforcing bearer-token authentication. A valid
// signature is not enough: the admin row is re-read on every request so a
// deactivated account is rejected even while its token is still within expiry.
func Auth(db *gorm.DB, tokens *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := NormalizeToken(c.GetHeader("Authorization"))
		if token == "" {
			response.Unauthorized(c, "No token provided, authorization denied")
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			if errors.Is(err, jwt.ErrExpired) {
				response.Unauthorized(c, "Token expired")
				return
			}
			response.Unauthorized(c, "Invalid token")
			return
		}

		var admin models.AdminModel
		err = db.WithContext(c.Request.Context()).
			Where("id = ? AND status = ?", claims.AdminID, models.AdminActive).
			First(&admin).Error
		if err != nil {
			response.Unauthorized(c, "Admin not found or inactive")
			return
		}

		c.Set(ContextKeyAdmin, &admin)
		c.Next()
	}
}

// CurrentAdmin extracts the authenticated admin from context. Returns nil on
// unauthenticated requests.
func CurrentAdmin(c *gin.Context) *models.AdminModel {
	v, _ := c.Get(ContextKeyAdmin)
	admin, _ := v.(*models.AdminModel)
	return admin
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
