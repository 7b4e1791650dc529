package auth

import (
	"github.com/labstack/echo/v4"
)

// publicPaths lists URL paths that bypass authentication: the health check,
// the API root message, and the two credential-issuing endpoints.
var publicPaths = map[string]bool{
	"/health":            true,
	"/api":               true,
	"/api/":              true,
	"/api/auth/register": true,
	"/api/auth/login":    true,
}

// AuthSkipper returns true for requests whose route should skip
// authentication. Matching is on the registered route path, so parameterized
// routes cannot collide with the public set.
func AuthSkipper(c echo.Context) bool {
	return publicPaths[c.Path()]
}

// IsPublicPath reports whether the given path bypasses authentication.
func IsPublicPath(path string) bool {
	return publicPaths[path]
}
