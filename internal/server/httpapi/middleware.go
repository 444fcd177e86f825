package httpapi

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/taskhub/internal/server/auth"
	"github.com/labstack/echo/v4"
)

// userIDContextKey is where requireAuth stores the authenticated user id
// on the echo context.
const userIDContextKey = "userID"

// requireAuth resolves the Authorization header into an authenticated user
// id, or short-circuits the request with 401. It runs before every todo
// handler; handlers may assume authenticatedUserID returns a valid id.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return c.JSON(http.StatusUnauthorized, msgResponse{Msg: "No token supplied"})
		}

		claims, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, msgResponse{Msg: "Invalid token"})
		}

		c.Set(userIDContextKey, claims.UserID)
		return next(c)
	}
}

func authenticatedUserID(c echo.Context) string {
	id, _ := c.Get(userIDContextKey).(string)
	return id
}
