package analytics

import (
	"context"

	"github.com/jhoicas/commodities-api/internal/application/dto"
)

// ReportGenerator renderiza el resumen del dashboard como documento (PDF).
type ReportGenerator interface {
	GenerateInventoryReport(ctx context.Context, summary *dto.DashboardSummaryDTO, products []dto.ProductResponse) ([]byte, error)
}

// ProductExporter exporta el listado de productos como hoja de cálculo.
type ProductExporter interface {
	ExportProducts(ctx context.Context, products []dto.ProductResponse) ([]byte, error)
}
