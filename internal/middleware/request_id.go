package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const CtxRequestIDKey = "rid"

// RequestID propagates X-Request-ID, generating one when the client did not
// send it.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get("X-Request-ID")
			if rid == "" {
				rid = uuid.NewString()
			}
			c.Set(CtxRequestIDKey, rid)
			c.Response().Header().Set("X-Request-ID", rid)
			return next(c)
		}
	}
}

// RequestLogger writes one line per request with the request id.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			log.Infof("http rid=%v %s %s status=%d dur=%s",
				c.Get(CtxRequestIDKey), c.Request().Method, c.Request().URL.Path,
				c.Response().Status, time.Since(start))
			return err
		}
	}
}
