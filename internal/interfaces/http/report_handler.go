package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/plywood-inventory/internal/application/report"
)

// ReportHandler descarga del reporte de existencias.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// InventoryPDF godoc
// @Summary      Reporte de existencias en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /reports/inventory.pdf [get]
func (h *ReportHandler) InventoryPDF(c *fiber.Ctx) error {
	user := GetUser(c)
	pdfBytes, filename, err := h.uc.Download(c.Context(), user.Name)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(pdfBytes)
}
