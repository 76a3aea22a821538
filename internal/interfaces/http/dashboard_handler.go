package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/analytics"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
)

// DashboardHandler resumen de la pantalla principal (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen del almacén
// @Description  Productos críticos y actividad reciente del diario.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
