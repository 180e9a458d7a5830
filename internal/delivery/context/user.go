package context

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeyUserID is the echo.Context key for the authenticated user id.
	KeyUserID ContextKey = "user_id"

	// KeyRoles is the echo.Context key for the authenticated user's roles.
	KeyRoles ContextKey = "roles"
)

// SetUser stores the authenticated identity on the echo.Context.
func SetUser(c echo.Context, userID uuid.UUID, roles []string) {
	c.Set(string(KeyUserID), userID)
	c.Set(string(KeyRoles), roles)
}

// GetUserID returns the authenticated user id, if any.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(string(KeyUserID)).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetRoles returns the authenticated user's roles, if any.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(string(KeyRoles)).([]string)

	return roles, ok
}
