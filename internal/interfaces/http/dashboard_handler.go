package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/commodities-api/internal/application/analytics"
	"github.com/jhoicas/commodities-api/pkg/logger"
)

// DashboardHandler maneja el resumen del dashboard y los reportes descargables.
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// GetSummary godoc
// @Summary      Resumen del inventario
// @Description  Total de productos, valor total, stock bajo (< 100), categorías y top 5 por valor.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(summary)
}

// GetReport godoc
// @Summary      Reporte PDF del inventario
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/pdf
// @Success      200
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/dashboard/report [get]
func (h *DashboardHandler) GetReport(c *fiber.Ctx) error {
	doc, err := h.uc.Report(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(attachmentName("inventory-report", "pdf"))
	return c.Send(doc)
}

// ExportProducts godoc
// @Summary      Exportar productos a XLSX
// @Tags         products
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Router       /api/products/export [get]
func (h *DashboardHandler) ExportProducts(c *fiber.Ctx) error {
	doc, err := h.uc.Export(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Attachment(attachmentName("products", "xlsx"))
	return c.Send(doc)
}

func attachmentName(base, ext string) string {
	return base + "-" + time.Now().UTC().Format("20060102") + "." + ext
}
