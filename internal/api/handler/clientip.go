package handler

import (
	"net"
	"strings"

	"github.com/labstack/echo/v4"
)

// clientIP extracts the caller's best-known client IP from forwarding
// headers. The user IP is always the first X-Forwarded-For entry; X-Real-IP
// is the usual single-proxy alternative. Falls back to the peer address.
func clientIP(c echo.Context) string {
	if fwd := c.Request().Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	if real := c.Request().Header.Get("X-Real-IP"); real != "" {
		return strings.TrimSpace(real)
	}
	host, _, err := net.SplitHostPort(c.Request().RemoteAddr)
	if err != nil {
		return c.Request().RemoteAddr
	}
	return host
}
