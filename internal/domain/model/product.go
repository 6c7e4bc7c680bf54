package model

import "github.com/shopspring/decimal"

// Product is a menu item (productos table). The checkout workflow only
// reads it, to resolve display names; the catalog is managed elsewhere.
type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"column:nombre;type:varchar(255);not null" json:"nombre"`
	Description string          `gorm:"column:descripcion;type:text" json:"descripcion"`
	Price       decimal.Decimal `gorm:"column:precio;type:numeric(10,2);not null" json:"precio"`
	Category    string          `gorm:"column:categoria;type:varchar(100);index" json:"categoria"`
}

func (Product) TableName() string { return "productos" }
