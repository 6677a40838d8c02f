package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/commodities-api/internal/application/dto"
	"github.com/jhoicas/commodities-api/internal/infrastructure/pdf"
)

func TestGenerateInventoryReport_ProducePDF(t *testing.T) {
	summary := &dto.DashboardSummaryDTO{
		TotalProducts:     2,
		TotalValue:        decimal.NewFromInt(700),
		LowStockItems:     1,
		TotalCategories:   1,
		LowStockThreshold: decimal.NewFromInt(100),
		TopProducts: []dto.TopProductDTO{
			{ID: "1", Name: "Wheat", Category: "Grains", Quantity: decimal.NewFromInt(50), Unit: "kg",
				Price: decimal.NewFromInt(10), TotalValue: decimal.NewFromInt(500)},
		},
		GeneratedAt: time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC),
	}
	products := []dto.ProductResponse{
		{ID: "1", Name: "Wheat", Category: "Grains", Quantity: decimal.NewFromInt(50), Unit: "kg", Price: decimal.NewFromInt(10)},
		{ID: "2", Name: "Rice", Category: "Grains", Quantity: decimal.NewFromInt(200), Unit: "kg", Price: decimal.NewFromInt(1)},
	}

	doc, err := pdf.NewReportGenerator("Inventory Report", nil).GenerateInventoryReport(context.Background(), summary, products)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestGenerateInventoryReport_SinResumen_Error(t *testing.T) {
	_, err := pdf.NewReportGenerator("x", nil).GenerateInventoryReport(context.Background(), nil, nil)
	assert.Error(t, err)
}
