package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"app/internal/usecase"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Error interno."})
}

// OrderHandler exposes the checkout endpoint.
type OrderHandler struct {
	uc *usecase.CheckoutUsecase
}

func NewOrderHandler(uc *usecase.CheckoutUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type OrderCreateResponse struct {
	Message    string `json:"message"`
	OrderID    int64  `json:"orderId"`
	ReceiptURL string `json:"receiptUrl"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/pedidos", h.create)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req usecase.PlaceOrderInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Faltan datos del pedido o productos."})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, OrderCreateResponse{
		Message:    "Pedido y boleta generados con éxito.",
		OrderID:    out.OrderID,
		ReceiptURL: out.ReceiptURL,
	})
}
