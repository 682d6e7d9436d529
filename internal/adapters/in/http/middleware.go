package http

import (
	"net/http"
	"strings"

	"kurirkan/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

const claimsContextKey = "claims"

// authMiddleware validates the bearer token and stores the parsed claims on
// the request context.
func (s *Server) authMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "missing bearer token",
			})
		}

		claims, err := s.issuer.Parse(token)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "invalid or expired token",
			})
		}

		ctx.Set(claimsContextKey, claims)
		return next(ctx)
	}
}

// requireAdmin rejects requests whose token lacks the admin flag.
func (s *Server) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		claims := currentClaims(ctx)
		if claims == nil || !claims.IsAdmin {
			return ctx.JSON(http.StatusForbidden, ErrorResponse{
				Code:    http.StatusForbidden,
				Message: "admin access required",
			})
		}
		return next(ctx)
	}
}

func currentClaims(ctx echo.Context) *auth.Claims {
	claims, _ := ctx.Get(claimsContextKey).(*auth.Claims)
	return claims
}
