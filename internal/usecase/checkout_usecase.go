package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"

	"app/internal/domain/model"
	"app/internal/receipt"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// ReceiptGenerator writes the boleta for a committed order and returns its
// public URL.
type ReceiptGenerator interface {
	Generate(d receipt.Data) (string, error)
}

// CustomerInput is the checkout customer descriptor: either an existing
// usuario id, or enough fields to create one.
type CustomerInput struct {
	UserID  *int64 `json:"usuarioId"`
	Name    string `json:"nombre"`
	Email   string `json:"email"`
	Phone   string `json:"telefono"`
	Address string `json:"direccion"`
	Method  string `json:"metodoEntrega"`
	Branch  string `json:"sucursal"`
	Notes   string `json:"notas"`
}

type CartLineInput struct {
	ProductID int64           `json:"id_producto"`
	Quantity  int64           `json:"cantidad"`
	Price     decimal.Decimal `json:"precio"`
	Name      string          `json:"name"`
}

type PlaceOrderInput struct {
	Customer CustomerInput   `json:"cliente"`
	Lines    []CartLineInput `json:"productos"`
	Total    decimal.Decimal `json:"total"`
}

type PlacedLine struct {
	ProductID int64           `json:"producto_id"`
	Name      string          `json:"nombre"`
	Quantity  int64           `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
}

type PlaceOrderOutput struct {
	OrderID         int64
	UserID          int64
	CustomerCreated bool
	ReceiptURL      string
	Lines           []PlacedLine
}

type CheckoutUsecase struct {
	tx       repo.TransactionManager
	receipts ReceiptGenerator
}

func NewCheckoutUsecase(tx repo.TransactionManager, receipts ReceiptGenerator) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx, receipts: receipts}
}

// PlaceOrder runs the order-submission workflow: resolve or create the
// customer, insert the order header and its lines in one transaction, then
// generate the boleta outside of it. Any failure before commit rolls the
// whole order back; a receipt failure after commit is only logged.
func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (PlaceOrderOutput, error) {
	if len(in.Lines) == 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "Faltan datos del pedido o productos.")
	}

	cust := in.Customer
	if cust.Method == "" {
		cust.Method = string(model.DeliveryMethodDelivery)
	}
	if cust.Method != string(model.DeliveryMethodDelivery) && cust.Method != string(model.DeliveryMethodPickup) {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "Método de entrega inválido.")
	}

	// Entries missing product, quantity or price are skipped, not errored.
	valid := make([]CartLineInput, 0, len(in.Lines))
	for _, l := range in.Lines {
		if l.ProductID <= 0 || l.Quantity <= 0 || !l.Price.IsPositive() {
			continue
		}
		valid = append(valid, l)
	}
	if len(valid) == 0 {
		return PlaceOrderOutput{}, NewHTTPError(http.StatusBadRequest, "Faltan datos del pedido o productos.")
	}

	var out PlaceOrderOutput
	now := time.Now()

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		user, created, err := resolveOrCreateCustomer(ctx, r, &cust)
		if err != nil {
			return err
		}

		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID:          user.ID,
			Date:            now,
			DeliveryMethod:  model.DeliveryMethod(cust.Method),
			DeliveryAddress: cust.Address,
			PickupBranch:    cust.Branch,
			Notes:           cust.Notes,
			Total:           in.Total,
			Status:          model.OrderStatusPending,
		})
		if err != nil {
			return err
		}

		lines := make([]model.OrderLine, 0, len(valid))
		ids := make([]int64, 0, len(valid))
		for _, l := range valid {
			lines = append(lines, model.OrderLine{
				ProductID: l.ProductID,
				Quantity:  l.Quantity,
				UnitPrice: l.Price.Round(2),
			})
			ids = append(ids, l.ProductID)
		}
		if err := r.OrderLines().CreateBulk(ctx, orderID, lines); err != nil {
			return err
		}

		names, err := r.Products().FindNamesByIDs(ctx, ids)
		if err != nil {
			return err
		}

		placed := make([]PlacedLine, 0, len(valid))
		for _, l := range valid {
			name, ok := names[l.ProductID]
			if !ok {
				name = fmt.Sprintf("Producto #%d", l.ProductID)
			}
			placed = append(placed, PlacedLine{
				ProductID: l.ProductID,
				Name:      name,
				Quantity:  l.Quantity,
				UnitPrice: l.Price.Round(2),
			})
		}

		out = PlaceOrderOutput{
			OrderID:         orderID,
			UserID:          user.ID,
			CustomerCreated: created,
			Lines:           placed,
		}
		return nil
	})
	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return PlaceOrderOutput{}, err
		}
		log.Errorf("checkout: transaction failed: %v", err)
		return PlaceOrderOutput{}, NewHTTPError(http.StatusInternalServerError, "Error al procesar el pedido.")
	}

	destination := cust.Address
	if cust.Method == string(model.DeliveryMethodPickup) {
		destination = cust.Branch
	}

	receiptLines := make([]receipt.Line, 0, len(out.Lines))
	for _, l := range out.Lines {
		receiptLines = append(receiptLines, receipt.Line{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}

	// The boleta lives outside the transaction: the order stands even when
	// the write fails.
	url, err := u.receipts.Generate(receipt.Data{
		OrderID:       out.OrderID,
		CustomerName:  cust.Name,
		CustomerPhone: cust.Phone,
		Destination:   destination,
		OrderedAt:     now,
		Lines:         receiptLines,
		Total:         in.Total.Round(2),
	})
	if err != nil {
		log.Errorf("checkout: receipt for order %d failed: %v", out.OrderID, err)
	} else {
		out.ReceiptURL = url
	}

	return out, nil
}

// resolveOrCreateCustomer fills the descriptor from a stored usuario when an
// id is supplied, validates it, and otherwise resolves by phone or creates a
// new row. The returned flag reports whether a row was created.
func resolveOrCreateCustomer(ctx context.Context, r repo.TxRepos, cust *CustomerInput) (*model.User, bool, error) {
	var stored *model.User

	if cust.UserID != nil && *cust.UserID > 0 {
		u, err := r.Users().FindByID(ctx, *cust.UserID)
		if errors.Is(err, repo.ErrNotFound) {
			return nil, false, NewHTTPError(http.StatusBadRequest, "Usuario no encontrado.")
		}
		if err != nil {
			return nil, false, err
		}
		stored = u

		if cust.Name == "" {
			cust.Name = u.Name
		}
		if cust.Phone == "" {
			cust.Phone = u.Phone
		}
		if cust.Email == "" && u.Email != nil {
			cust.Email = *u.Email
		}
		if cust.Address == "" {
			cust.Address = u.Address
		}
	}

	if cust.Name == "" || cust.Phone == "" {
		return nil, false, NewHTTPError(http.StatusBadRequest, "Completa los campos obligatorios.")
	}
	if cust.Method == string(model.DeliveryMethodDelivery) && cust.Address == "" {
		return nil, false, NewHTTPError(http.StatusBadRequest, "La dirección de entrega es obligatoria.")
	}
	if cust.Method == string(model.DeliveryMethodPickup) && cust.Branch == "" {
		return nil, false, NewHTTPError(http.StatusBadRequest, "La sucursal de recojo es obligatoria.")
	}

	if stored != nil {
		return stored, false, nil
	}

	// No id supplied: resolve by phone before creating, so repeat guest
	// checkouts reuse their row instead of tripping the unique constraints.
	existing, err := r.Users().FindByPhone(ctx, cust.Phone)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return nil, false, err
	}

	user := &model.User{
		Name:    cust.Name,
		Phone:   cust.Phone,
		Address: cust.Address,
	}
	if cust.Email != "" {
		user.Email = &cust.Email
	}
	if err := r.Users().Create(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}
