// Package analytics contiene los casos de uso de reportes del inventario:
// resumen del dashboard, reporte PDF y exportación XLSX.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/commodities-api/internal/application/dto"
	"github.com/jhoicas/commodities-api/internal/domain/entity"
	"github.com/jhoicas/commodities-api/internal/domain/inventory"
	"github.com/jhoicas/commodities-api/internal/domain/repository"
)

const dashboardTopProducts = 5 // filas de la tabla "Top Products by Value"

// DashboardUseCase genera el resumen del inventario actual.
//
// Fuente de datos: ProductRepository (solo lectura). Los agregados se calculan
// en el dominio (inventory.ComputeStats / inventory.TopByValue) sobre una copia.
type DashboardUseCase struct {
	products repository.ProductRepository
	report   ReportGenerator
	exporter ProductExporter
	now      func() time.Time
}

// NewDashboardUseCase construye el caso de uso. report y exporter pueden ser nil
// si el despliegue no ofrece esos formatos.
func NewDashboardUseCase(products repository.ProductRepository, report ReportGenerator, exporter ProductExporter) *DashboardUseCase {
	return &DashboardUseCase{products: products, report: report, exporter: exporter, now: time.Now}
}

// GetSummary construye el DashboardSummaryDTO: estadísticas + top 5 por valor.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	list, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar productos: %w", err)
	}
	return uc.summarize(list), nil
}

// Report genera el PDF del resumen con el listado completo de productos.
func (uc *DashboardUseCase) Report(ctx context.Context) ([]byte, error) {
	if uc.report == nil {
		return nil, fmt.Errorf("dashboard: generador de reportes no configurado")
	}
	list, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar productos: %w", err)
	}
	doc, err := uc.report.GenerateInventoryReport(ctx, uc.summarize(list), toProductResponses(list))
	if err != nil {
		return nil, fmt.Errorf("dashboard: generar reporte: %w", err)
	}
	return doc, nil
}

// Export genera la hoja XLSX con todos los productos en orden de inserción.
func (uc *DashboardUseCase) Export(ctx context.Context) ([]byte, error) {
	if uc.exporter == nil {
		return nil, fmt.Errorf("dashboard: exportador no configurado")
	}
	list, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar productos: %w", err)
	}
	doc, err := uc.exporter.ExportProducts(ctx, toProductResponses(list))
	if err != nil {
		return nil, fmt.Errorf("dashboard: exportar productos: %w", err)
	}
	return doc, nil
}

func (uc *DashboardUseCase) summarize(list []entity.Product) *dto.DashboardSummaryDTO {
	stats := inventory.ComputeStats(list)
	ranked := inventory.TopByValue(list, dashboardTopProducts)

	top := make([]dto.TopProductDTO, 0, len(ranked))
	for _, r := range ranked {
		top = append(top, dto.TopProductDTO{
			ID:         r.Product.ID,
			Name:       r.Product.Name,
			Category:   r.Product.Category,
			Quantity:   r.Product.Quantity,
			Unit:       string(r.Product.Unit),
			Price:      r.Product.Price,
			TotalValue: r.Value,
		})
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:     stats.TotalProducts,
		TotalValue:        stats.TotalValue,
		LowStockItems:     stats.LowStockItems,
		TotalCategories:   stats.TotalCategories,
		LowStockThreshold: inventory.LowStockThreshold,
		TopProducts:       top,
		GeneratedAt:       uc.now(),
	}
}

func toProductResponses(list []entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, dto.ProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Quantity:    p.Quantity,
			Unit:        string(p.Unit),
			Price:       p.Price,
			Description: p.Description,
			Category:    p.Category,
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		})
	}
	return out
}
