package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/agenciahub/backend/internal/core/domain"
)

// userContextKey is where the auth middleware stores the resolved user.
const userContextKey = "user"

// currentUser extracts the user injected by the auth middleware. Its presence
// proves the middleware ran; a missing user on a protected route is a wiring
// bug, reported as 401 rather than a panic.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(userContextKey).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}

// bearerToken pulls the raw token out of the Authorization header.
func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}
