package http

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"taskboard/internal/infrastructure"
)

const claimsContextKey = "claims"

// Authenticate parses the Authorization header and puts the verified token
// claims on the request context. Verification is purely cryptographic;
// there is no session lookup.
func Authenticate(jwtService *infrastructure.JWTService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			parts := strings.SplitN(c.Request().Header.Get("Authorization"), " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, errorResponse{
					Error: "Authorization header missing or malformed",
				})
			}

			claims, err := jwtService.ParseToken(parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Invalid token"})
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

func claimsFromContext(c echo.Context) *infrastructure.TokenClaims {
	claims, _ := c.Get(claimsContextKey).(*infrastructure.TokenClaims)
	return claims
}

// RequestID tags every request with a correlation id, echoed back in the
// X-Request-Id response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, id)
			return next(c)
		}
	}
}
