// Package xlsx exporta el inventario como hoja de cálculo (excelize).
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/commodities-api/internal/application/analytics"
	"github.com/jhoicas/commodities-api/internal/application/dto"
)

// SheetName nombre de la hoja generada.
const SheetName = "Products"

// Columnas de la hoja, en orden.
var header = []string{"ID", "Name", "Category", "Quantity", "Unit", "Price", "Value", "Description", "Created At", "Updated At"}

var _ analytics.ProductExporter = (*ProductExporter)(nil)

// ProductExporter implementa analytics.ProductExporter.
type ProductExporter struct{}

// NewProductExporter construye el exportador.
func NewProductExporter() *ProductExporter { return &ProductExporter{} }

// ExportProducts escribe una fila por producto debajo de la cabecera y devuelve el XLSX.
func (e *ProductExporter) ExportProducts(_ context.Context, products []dto.ProductResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx: cabecera: %w", err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}

	for r, p := range products {
		values := []interface{}{
			p.ID,
			p.Name,
			p.Category,
			p.Quantity.InexactFloat64(),
			p.Unit,
			p.Price.InexactFloat64(),
			p.Price.Mul(p.Quantity).InexactFloat64(),
			p.Description,
			p.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
			p.UpdatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return nil, fmt.Errorf("xlsx: fila %d: %w", r+2, err)
			}
		}
	}
	_ = f.SetColWidth(SheetName, "B", "C", 20)
	_ = f.SetColWidth(SheetName, "H", "H", 40)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
