package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"
)

type UserHandler struct {
	uc *usecase.AuthUsecase
}

func NewUserHandler(uc *usecase.AuthUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.GET("/api/usuarios", h.list)

	g := e.Group("/api/perfil")
	g.Use(middleware.AuthJWT(cfg))
	g.GET("", h.me)
}

// list returns every user ordered by id ascending, passwords stripped.
// No pagination, matching the storefront admin page it feeds.
func (h *UserHandler) list(c echo.Context) error {
	out, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) me(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "No autorizado."})
	}

	out, err := h.uc.Me(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
