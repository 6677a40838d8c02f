package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/commodities-api/internal/domain/entity"
)

// LowStockThreshold un producto con cantidad menor a este umbral cuenta como stock bajo.
var LowStockThreshold = decimal.NewFromInt(100)

// Stats estadísticas agregadas del inventario. Funciones puras de la colección actual.
type Stats struct {
	TotalProducts   int
	TotalValue      decimal.Decimal // Σ price × quantity
	LowStockItems   int
	TotalCategories int // categorías distintas, comparación exacta
}

// ComputeStats calcula las estadísticas sobre products (servicio de dominio).
func ComputeStats(products []entity.Product) Stats {
	stats := Stats{TotalProducts: len(products), TotalValue: decimal.Zero}
	categories := make(map[string]struct{}, len(products))
	for _, p := range products {
		stats.TotalValue = stats.TotalValue.Add(p.Value())
		if p.Quantity.LessThan(LowStockThreshold) {
			stats.LowStockItems++
		}
		categories[p.Category] = struct{}{}
	}
	stats.TotalCategories = len(categories)
	return stats
}

// RankedProduct producto con su valor de stock precalculado.
type RankedProduct struct {
	Product entity.Product
	Value   decimal.Decimal
}

// TopByValue devuelve los n productos de mayor price × quantity en orden descendente.
// Los empates conservan el orden original de products (orden estable).
// n <= 0 devuelve slice vacío; n mayor que len(products) devuelve todos.
func TopByValue(products []entity.Product, n int) []RankedProduct {
	if n <= 0 {
		return []RankedProduct{}
	}
	ranked := make([]RankedProduct, len(products))
	for i, p := range products {
		ranked[i] = RankedProduct{Product: p, Value: p.Value()}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value.GreaterThan(ranked[j].Value)
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
