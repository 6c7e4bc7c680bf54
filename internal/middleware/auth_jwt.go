package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"app/internal/config"
)

const CtxUserIDKey = "user_id" // int64

// AuthJWT is the bearer-token guard for endpoints that need a logged-in
// user. On success the usuario id is stored in the echo context.
func AuthJWT(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("No autorizado."))
			}

			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, errorJSON("No autorizado."))
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("No autorizado."))
			}

			token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil || token == nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, errorJSON("No autorizado."))
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("No autorizado."))
			}

			userID, err := parseUserID(claims["sub"])
			if err != nil || userID <= 0 {
				return c.JSON(http.StatusUnauthorized, errorJSON("No autorizado."))
			}

			c.Set(CtxUserIDKey, userID)
			return next(c)
		}
	}
}

// UserIDFromContext reads the usuario id stored by AuthJWT.
func UserIDFromContext(c echo.Context) (int64, bool) {
	v := c.Get(CtxUserIDKey)
	id, ok := v.(int64)
	return id, ok
}

func parseUserID(v interface{}) (int64, error) {
	switch s := v.(type) {
	case string:
		return strconv.ParseInt(s, 10, 64)
	case float64:
		return int64(s), nil
	default:
		return 0, errors.New("invalid sub claim")
	}
}

func errorJSON(msg string) map[string]string {
	return map[string]string{"error": msg}
}
