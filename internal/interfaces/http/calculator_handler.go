package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/pricing"
)

// CalculatorHandler calculadora de rentabilidad (protegido, sin estado).
type CalculatorHandler struct{}

// NewCalculatorHandler construye el handler.
func NewCalculatorHandler() *CalculatorHandler {
	return &CalculatorHandler{}
}

// Profit godoc
// @Summary      Calcular precio de venta para una ganancia objetivo
// @Tags         calculator
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProfitCalcRequest  true  "cost, shipping, commission_rate, profit_mode, target_profit"
// @Success      200   {object}  dto.ProfitCalcResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/calculator/profit [post]
func (h *CalculatorHandler) Profit(c *fiber.Ctx) error {
	var in dto.ProfitCalcRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := pricing.Calculate(pricing.ProfitInput{
		Cost:           in.Cost,
		Shipping:       in.Shipping,
		CommissionRate: in.CommissionRate,
		ProfitMode:     in.ProfitMode,
		TargetProfit:   in.TargetProfit,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos: revisa comisión y modo de ganancia"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ProfitCalcResponse{
		SalePrice:  out.SalePrice,
		Commission: out.Commission,
		NetProfit:  out.NetProfit,
		MarginPct:  out.MarginPct,
	})
}
