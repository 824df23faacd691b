package api

import (
	"net/http"
	"strings"

	echo "github.com/labstack/echo/v5"
)

const (
	ctxTenantKey = "tenant"
	ctxAdminKey  = "admin"
)

// principal is one resolved bearer token.
type principal struct {
	tenant string
	admin  bool
}

// bearerAuth returns middleware that resolves the Authorization header
// against the configured token registry and stores (tenant, admin) on the
// request context. Unknown or missing tokens get 401.
func (s *Server) bearerAuth() echo.MiddlewareFunc {
	registry := make(map[string]principal, len(s.cfg.Server.Tokens))
	for _, tok := range s.cfg.Server.Tokens {
		registry[tok.Token] = principal{tenant: tok.Tenant, admin: tok.Admin}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Missing or invalid Authorization header",
				})
			}
			p, ok := registry[token]
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Missing or invalid Authorization header",
				})
			}
			c.Set(ctxTenantKey, p.tenant)
			c.Set(ctxAdminKey, p.admin)
			return next(c)
		}
	}
}

// tenantFrom returns the authenticated tenant for the request.
func tenantFrom(c *echo.Context) string {
	tenant, _ := c.Get(ctxTenantKey).(string)
	return tenant
}

// isAdmin reports whether the request carries an admin token.
func isAdmin(c *echo.Context) bool {
	admin, _ := c.Get(ctxAdminKey).(bool)
	return admin
}
