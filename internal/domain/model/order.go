package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

// Pending is the only status this system ever assigns; later stages of the
// order lifecycle are handled outside it.
const OrderStatusPending OrderStatus = "Pending"

type DeliveryMethod string

const (
	DeliveryMethodDelivery DeliveryMethod = "delivery"
	DeliveryMethodPickup   DeliveryMethod = "pickup"
)

// Order is one checkout event (pedidos table). Immutable after creation.
type Order struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          int64           `gorm:"column:usuario_id;not null;index" json:"usuario_id"`
	Date            time.Time       `gorm:"column:fecha;not null" json:"fecha"`
	DeliveryMethod  DeliveryMethod  `gorm:"column:metodo_entrega;type:varchar(20);not null" json:"metodo_entrega"`
	DeliveryAddress string          `gorm:"column:direccion_entrega;type:varchar(255)" json:"direccion_entrega"`
	PickupBranch    string          `gorm:"column:sucursal_recojo;type:varchar(100)" json:"sucursal_recojo"`
	Notes           string          `gorm:"column:notas;type:text" json:"notas"`
	Total           decimal.Decimal `gorm:"column:total;type:numeric(10,2);not null" json:"total"`
	Status          OrderStatus     `gorm:"column:estado;type:varchar(20);not null" json:"estado"`
}

func (Order) TableName() string { return "pedidos" }
