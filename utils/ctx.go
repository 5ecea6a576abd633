package utils

import "github.com/gin-gonic/gin"

// CurrentUserID reads the principal id the token middleware stored in the
// request context. Zero means no authenticated user.
func CurrentUserID(c *gin.Context) uint {
	v, ok := c.Get("userId")
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}

// CurrentRole reads the principal's role, empty when unauthenticated.
func CurrentRole(c *gin.Context) string {
	v, ok := c.Get("role")
	if !ok {
		return ""
	}
	role, _ := v.(string)
	return role
}
