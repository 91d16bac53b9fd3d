package middleware

import "github.com/gin-gonic/gin"

// usernameKey and roleKey store the authenticated caller's identity in the
// request context once the auth middleware has verified the access token.
const (
	usernameKey = contextKey("username")
	roleKey     = contextKey("role")
)

// GetUsernameFromContext retrieves the authenticated username from the Gin context.
// It returns the username and a boolean indicating if it was found.
func GetUsernameFromContext(c *gin.Context) (string, bool) {
	username, ok := c.Request.Context().Value(usernameKey).(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}

// GetRoleFromContext retrieves the authenticated caller's role from the Gin context.
func GetRoleFromContext(c *gin.Context) (string, bool) {
	role, ok := c.Request.Context().Value(roleKey).(string)
	if !ok || role == "" {
		return "", false
	}
	return role, true
}
