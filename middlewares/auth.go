package middlewares

import (
	"strings"

	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/entity"
	"github.com/ArredondoGastelumJavier4-2/bakend-flutter/pkg/resp"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ResolveToken maps an Authorization header value to the owning user.
// Expected format: "Token <key>". Returns nil for anything else: a missing
// principal is the error signal, never a panic or error.
func ResolveToken(db *gorm.DB, header string) *entity.User {
	if !strings.HasPrefix(header, "Token ") {
		return nil
	}
	key := strings.TrimSpace(strings.TrimPrefix(header, "Token "))
	if key == "" {
		return nil
	}

	var token entity.ApiToken
	if err := db.Where("key = ?", key).Preload("User").First(&token).Error; err != nil {
		return nil
	}
	// An orphaned key (owner deleted) must not authenticate.
	if token.User.ID == 0 {
		return nil
	}
	return &token.User
}

// TokenAuth checks the token and, when roles are given, enforces them.
func TokenAuth(db *gorm.DB, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := ResolveToken(db, c.GetHeader("Authorization"))
		if user == nil {
			resp.Unauthorized(c, "invalid or missing token")
			c.Abort()
			return
		}

		c.Set("userId", user.ID)
		c.Set("role", user.Role)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if user.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				resp.Forbidden(c, "forbidden")
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
