package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/middleware"
)

// New assembles the echo instance: API routes, the static storefront and
// the generated boletas.
func New(
	cfg config.Config,
	authH *handler.AuthHandler,
	userH *handler.UserHandler,
	orderH *handler.OrderHandler,
	productH *handler.ProductHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	authH.RegisterRoutes(e)
	userH.RegisterRoutes(e, cfg)
	orderH.RegisterRoutes(e)
	productH.RegisterRoutes(e)

	// Static surfaces: the storefront pages and the receipt documents.
	e.Static("/", cfg.FrontendDir)
	e.Static("/boletas", cfg.ReceiptsDir)

	return e
}
