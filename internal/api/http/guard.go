package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/videogames-portal/internal/session"
)

// LoginPath is where denied navigations are redirected.
const LoginPath = "/login"

// RouteGuard gates protected views on session presence. The login
// route and the wildcard fallback are never protected.
type RouteGuard struct {
	store session.Store
}

// NewRouteGuard constructs a guard over the given session store.
func NewRouteGuard(store session.Store) *RouteGuard {
	return &RouteGuard{store: store}
}

// CanEnter reports whether navigation into target may complete. True
// iff the session store currently holds a token; the target path does
// not influence the decision beyond being a protected route.
func (g *RouteGuard) CanEnter(target string) bool {
	return session.IsAuthenticated(g.store)
}

// Handle enforces the guard for protected route groups, redirecting
// the pending navigation to the login view when the session is empty.
func (g *RouteGuard) Handle(c *fiber.Ctx) error {
	if !g.CanEnter(c.Path()) {
		return c.Redirect(LoginPath, fiber.StatusFound)
	}
	return c.Next()
}
