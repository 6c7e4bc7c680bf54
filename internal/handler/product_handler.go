package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"app/internal/usecase"
)

// ProductHandler exposes the public menu.
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/productos", h.list)
}

func (h *ProductHandler) list(c echo.Context) error {
	out, err := h.uc.ListMenu(c.Request().Context(), c.QueryParam("categoria"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
