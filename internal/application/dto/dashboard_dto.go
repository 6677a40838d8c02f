package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Estadísticas del inventario actual más el Top de productos por valor.
type DashboardSummaryDTO struct {
	TotalProducts     int             `json:"totalProducts"`
	TotalValue        decimal.Decimal `json:"totalValue"`
	LowStockItems     int             `json:"lowStockItems"`
	TotalCategories   int             `json:"totalCategories"`
	LowStockThreshold decimal.Decimal `json:"lowStockThreshold"`
	TopProducts       []TopProductDTO `json:"topProducts"`
	GeneratedAt       time.Time       `json:"generatedAt"`
}

// TopProductDTO fila de la tabla "Top Products by Value".
type TopProductDTO struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Quantity   decimal.Decimal `json:"quantity"`
	Unit       string          `json:"unit"`
	Price      decimal.Decimal `json:"price"`
	TotalValue decimal.Decimal `json:"totalValue"`
}
