package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/help-yourself-test/help-yourself/internal/domain/account"
)

// RequireRoles gates a route to the listed roles. It must run after the
// auth middleware, which stores the role from the access token.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c fiber.Ctx) error {
		role, _ := c.Locals(CtxRoleKey).(string)
		if role == "" {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		if _, ok := allowed[role]; !ok {
			return NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
		}
		return c.Next()
	}
}

// RequireAdmin gates a route to approved admins.
func RequireAdmin() fiber.Handler {
	return RequireRoles(account.RoleAdmin)
}

// RequireJobManager gates job writes to posters and admins.
func RequireJobManager() fiber.Handler {
	return RequireRoles(account.RoleJobPoster, account.RoleAdmin)
}
