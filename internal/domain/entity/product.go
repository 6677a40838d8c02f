package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unit unidad de medida de un commodity.
type Unit string

// Unidades soportadas (valores de cable).
const (
	UnitKilogram Unit = "kg"
	UnitGram     Unit = "g"
	UnitTon      Unit = "ton"
	UnitLiter    Unit = "liter"
	UnitPiece    Unit = "piece"
)

// DefaultUnit unidad usada cuando el cliente no envía una.
const DefaultUnit = UnitKilogram

// Units devuelve las unidades soportadas en orden de presentación.
func Units() []Unit {
	return []Unit{UnitKilogram, UnitGram, UnitTon, UnitLiter, UnitPiece}
}

// Valid indica si u es una unidad soportada.
func (u Unit) Valid() bool {
	switch u {
	case UnitKilogram, UnitGram, UnitTon, UnitLiter, UnitPiece:
		return true
	}
	return false
}

// Product representa un commodity del inventario.
// ID y CreatedAt son inmutables; UpdatedAt nunca es anterior a CreatedAt.
type Product struct {
	ID          string
	Name        string
	Quantity    decimal.Decimal
	Unit        Unit
	Price       decimal.Decimal // escalar sin moneda
	Description string
	Category    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Value valor del stock: Price × Quantity.
func (p Product) Value() decimal.Decimal {
	return p.Price.Mul(p.Quantity)
}

// ProductPatch actualización parcial: solo los campos no nil se aplican.
type ProductPatch struct {
	Name        *string
	Quantity    *decimal.Decimal
	Unit        *Unit
	Price       *decimal.Decimal
	Description *string
	Category    *string
}

// Empty indica si el patch no trae ningún campo.
func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Quantity == nil && p.Unit == nil &&
		p.Price == nil && p.Description == nil && p.Category == nil
}

// Apply mezcla los campos presentes sobre product. No toca ID ni timestamps.
func (p ProductPatch) Apply(product *Product) {
	if p.Name != nil {
		product.Name = *p.Name
	}
	if p.Quantity != nil {
		product.Quantity = *p.Quantity
	}
	if p.Unit != nil {
		product.Unit = *p.Unit
	}
	if p.Price != nil {
		product.Price = *p.Price
	}
	if p.Description != nil {
		product.Description = *p.Description
	}
	if p.Category != nil {
		product.Category = *p.Category
	}
}
