package model

import "github.com/shopspring/decimal"

// OrderLine is one cart entry of an order (detalle_pedido table), created
// inside the same transaction as its order header.
type OrderLine struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64           `gorm:"column:pedido_id;not null;index" json:"pedido_id"`
	ProductID int64           `gorm:"column:producto_id;not null;index" json:"producto_id"`
	Quantity  int64           `gorm:"column:cantidad;not null" json:"cantidad"`
	UnitPrice decimal.Decimal `gorm:"column:precio_unitario;type:numeric(10,2);not null" json:"precio_unitario"`
}

func (OrderLine) TableName() string { return "detalle_pedido" }
